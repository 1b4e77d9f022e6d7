package users

import (
	"encoding/json"
	"maps"
	"strconv"
)

// Record is one user as stored by the demo API: an arbitrary JSON object
// whose "id" is owned by the server.
type Record map[string]any

// ID returns the record's id in its textual form.
func (r Record) ID() string {
	switch v := r["id"].(type) {
	case int64:
		return strconv.FormatInt(v, 10)
	case json.Number:
		return v.String()
	case string:
		return v
	default:
		return ""
	}
}

func (r Record) clone() Record {
	return maps.Clone(r)
}

// isCredentials reports whether r is a login payload: exactly a username and
// a password.
func (r Record) isCredentials() bool {
	if len(r) != 2 {
		return false
	}
	_, u := r["username"]
	_, p := r["password"]
	return u && p
}
