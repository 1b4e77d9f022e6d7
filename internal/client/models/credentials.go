package models

// Credentials is the login form. It lives only in the Session Entry screen
// and is never stored.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Validate reports empty fields.
func (c Credentials) Validate() error {
	return requiredFields(validate.Struct(c))
}
