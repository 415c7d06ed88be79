package model

import (
	"encoding/json"
	"strconv"
	"strings"
)

// FlexInt decodes a count that the backend reports either as a JSON number
// or as a quoted string (SQL aggregates come back as strings).
type FlexInt int

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}

	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*f = 0
		return nil
	}

	*f = FlexInt(n)
	return nil
}

// FlexFloat decodes a float reported either as a JSON number or a string
type FlexFloat float64

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*f = 0
		return nil
	}

	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*f = 0
		return nil
	}

	*f = FlexFloat(n)
	return nil
}

// FlaggedWords is a list of terms the moderation engine flagged. Malformed
// payloads (anything that is not a JSON array) decode to an empty list so a
// single bad submission cannot fail a whole page.
type FlaggedWords []string

// UnmarshalJSON implements json.Unmarshaler
func (w *FlaggedWords) UnmarshalJSON(data []byte) error {
	var words []string
	if err := json.Unmarshal(data, &words); err != nil {
		*w = FlaggedWords{}
		return nil
	}

	*w = words
	return nil
}
