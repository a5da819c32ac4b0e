package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var (
	phonePattern   = regexp.MustCompile(`^[+]?[0-9\s\-()]{5,20}$`)
	phoneStripping = regexp.MustCompile(`[^0-9+]`)
)

// PhoneNumber is a validated, normalized phone number. The only way to
// obtain a non-zero instance is NewPhoneNumber, so every instance in the
// system holds a value that already passed validation.
type PhoneNumber struct {
	value string
}

// NewPhoneNumber validates raw input against the accepted phone pattern and
// stores it with every character except digits and '+' stripped.
func NewPhoneNumber(raw string) (PhoneNumber, error) {
	trimmed := strings.TrimSpace(raw)
	if !phonePattern.MatchString(trimmed) {
		return PhoneNumber{}, ErrInvalidPhoneWithMsg(fmt.Sprintf("invalid phone number: %q", raw))
	}
	return PhoneNumber{value: phoneStripping.ReplaceAllString(trimmed, "")}, nil
}

// String returns the normalized form
func (p PhoneNumber) String() string {
	return p.value
}

// IsZero reports whether the phone number is unset
func (p PhoneNumber) IsZero() bool {
	return p.value == ""
}

// Value implements driver.Valuer so the normalized form is what gets stored
func (p PhoneNumber) Value() (driver.Value, error) {
	return p.value, nil
}

// Scan implements sql.Scanner. Stored values were normalized on the way in,
// so they are restored without re-validation.
func (p *PhoneNumber) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		p.value = v
	case []byte:
		p.value = string(v)
	case nil:
		p.value = ""
	default:
		return fmt.Errorf("cannot scan %T into PhoneNumber", src)
	}
	return nil
}

// MarshalJSON renders the phone number as its normalized string form
func (p PhoneNumber) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.value)
}
