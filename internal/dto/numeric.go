package dto

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Numeric accepts either a JSON number or a numeric string in request
// bodies. Input that cannot be coerced to a number is kept with
// Valid=false so that grading treats it as incorrect instead of
// rejecting the request.
type Numeric struct {
	Value float64
	Raw   string
	Valid bool
	Set   bool
}

func (n *Numeric) UnmarshalJSON(data []byte) error {
	n.Set = true

	s := strings.TrimSpace(string(data))
	if s == "null" {
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var unquoted string
		if err := json.Unmarshal(data, &unquoted); err != nil {
			return err
		}
		s = strings.TrimSpace(unquoted)
	}
	n.Raw = s

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	n.Value = value
	n.Valid = true
	return nil
}

// String returns the original token for prompts and logs, falling back
// to the parsed value.
func (n Numeric) String() string {
	if n.Raw != "" {
		return n.Raw
	}
	return strconv.FormatFloat(n.Value, 'f', -1, 64)
}
