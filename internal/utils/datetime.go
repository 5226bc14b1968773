package utils

import (
	"fmt"
	"time"
)

// Display layouts for show start times.
const (
	FullDateTime   = "Monday January, 2, 2006 at 3:04PM"
	MediumDateTime = "Mon 01, 02, 2006 3:04PM"
)

// FormatDateTime renders an RFC3339 timestamp in the named display format.
// An empty format returns value as is.
func FormatDateTime(value, format string) (string, error) {
	var layout string
	switch format {
	case "":
		return value, nil
	case "full":
		layout = FullDateTime
	case "medium":
		layout = MediumDateTime
	default:
		return "", fmt.Errorf("unknown date format %q", format)
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return "", fmt.Errorf("invalid timestamp %q: %w", value, err)
	}
	return t.Format(layout), nil
}

// ValidDateFormat reports whether format names a display format.
func ValidDateFormat(format string) bool {
	return format == "" || format == "full" || format == "medium"
}
