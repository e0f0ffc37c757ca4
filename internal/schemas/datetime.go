package schemas

import (
	"strings"
	"time"
)

// Layouts accepted for datetime query parameters. Values without an offset
// are read as UTC. A bare date is not a datetime and is rejected.
var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseDateTime parses a query-string datetime.
func ParseDateTime(field, value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			utc := t.UTC()
			return &utc, nil
		}
	}
	return nil, Unprocessable(field, "invalid datetime format")
}
