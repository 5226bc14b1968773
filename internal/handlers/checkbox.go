package handlers

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Checkbox is a boolean form field. HTML checkboxes post "y" or "on" when
// ticked and nothing when not; JSON bodies send a plain boolean.
type Checkbox bool

func (b *Checkbox) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "y", "yes", "on", "true", "t", "1":
		*b = true
	case "", "n", "no", "off", "false", "f", "0":
		*b = false
	default:
		return fmt.Errorf("%q is not a checkbox value", text)
	}
	return nil
}

func (b *Checkbox) UnmarshalJSON(data []byte) error {
	var v bool
	if err := json.Unmarshal(data, &v); err == nil {
		*b = Checkbox(v)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%s is not a checkbox value", data)
	}
	return b.UnmarshalText([]byte(s))
}
