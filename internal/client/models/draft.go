package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"maps"
	"sort"
	"strconv"
)

// RequiredUserFields are the modal form fields that must be filled before a
// save reaches the network.
var RequiredUserFields = []string{"name", "email", "phone"}

// Draft is the partial user record shown in the create/edit modal. Keys are
// JSON field names; values are whatever JSON decoding produced, with numbers
// kept as json.Number so identifiers round-trip exactly.
type Draft map[string]any

// NewDraft returns the empty draft used by "create".
func NewDraft() Draft {
	return Draft{}
}

// DraftFromUser copies u into a fresh draft, including its extra fields.
func DraftFromUser(u User) (Draft, error) {
	b, err := json.Marshal(u)
	if err != nil {
		return nil, fmt.Errorf("encode user: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	d := Draft{}
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("decode user: %w", err)
	}
	return d, nil
}

// Set replaces a single field.
func (d Draft) Set(key, value string) {
	d[key] = value
}

// Get renders a field as text for a form input; absent fields read as "".
func (d Draft) Get(key string) string {
	return stringify(d[key])
}

// ID is the textual identifier of the record being edited, "" for a new one.
func (d Draft) ID() string {
	return stringify(d["id"])
}

// Clone returns a copy that shares no top-level map with d.
func (d Draft) Clone() Draft {
	if d == nil {
		return nil
	}
	return maps.Clone(d)
}

// Keys lists the draft's field names in sorted order.
func (d Draft) Keys() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Validate checks that every required field holds a non-empty value.
func (d Draft) Validate(required ...string) error {
	rules := make(map[string]any, len(required))
	for _, f := range required {
		rules[f] = "required"
	}
	data := make(map[string]any, len(d))
	for k, v := range d {
		if s, ok := v.(string); ok && s == "" {
			continue
		}
		data[k] = v
	}
	return requiredFields(validate.ValidateMap(data, rules))
}

func stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case json.Number:
		return x.String()
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		b, err := json.Marshal(x)
		if err != nil {
			return fmt.Sprint(x)
		}
		return string(b)
	}
}
