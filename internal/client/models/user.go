package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ID is a record identifier kept in the form the server used: a JSON number
// or a JSON string. Two IDs are the same record when their String forms match.
type ID struct {
	value   string
	numeric bool
}

// NumericID builds a numeric identifier.
func NumericID(n int64) ID {
	return ID{value: strconv.FormatInt(n, 10), numeric: true}
}

// StringID builds a string identifier.
func StringID(s string) ID {
	return ID{value: s}
}

func (id ID) String() string { return id.value }

func (id ID) IsZero() bool { return id.value == "" }

func (id ID) MarshalJSON() ([]byte, error) {
	if id.numeric {
		return []byte(id.value), nil
	}
	return json.Marshal(id.value)
}

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*id = ID{}
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID{value: s}
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return fmt.Errorf("id must be a number or a string: %w", err)
		}
		*id = ID{value: n.String(), numeric: true}
	}
	return nil
}

// User is one record of the remote collection. Name, Email and Phone are the
// columns the console shows; every other field the server sent is kept in
// Extra and written back unchanged.
type User struct {
	ID    ID
	Name  string
	Email string
	Phone string
	Extra map[string]json.RawMessage
}

var knownUserKeys = []string{"id", "name", "email", "phone"}

func (u *User) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw == nil {
		return fmt.Errorf("user record must be a JSON object")
	}

	var out User
	if v, ok := raw["id"]; ok {
		if err := json.Unmarshal(v, &out.ID); err != nil {
			return err
		}
	}
	for key, dst := range map[string]*string{"name": &out.Name, "email": &out.Email, "phone": &out.Phone} {
		v, ok := raw[key]
		if !ok || bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			continue
		}
		if err := json.Unmarshal(v, dst); err != nil {
			return fmt.Errorf("user field %q: %w", key, err)
		}
	}
	for _, key := range knownUserKeys {
		delete(raw, key)
	}
	if len(raw) > 0 {
		out.Extra = raw
	}

	*u = out
	return nil
}

func (u User) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(u.Extra)+4)
	for k, v := range u.Extra {
		m[k] = v
	}
	if !u.ID.IsZero() {
		m["id"] = u.ID
	}
	m["name"] = u.Name
	m["email"] = u.Email
	m["phone"] = u.Phone
	return json.Marshal(m)
}
