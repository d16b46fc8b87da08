package request

import (
	"fmt"
	"strings"
	"time"
)

// parseData accepts RFC 3339 timestamps or plain YYYY-MM-DD dates, the two
// shapes the registration forms produce.
func parseData(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected RFC 3339 or YYYY-MM-DD", s)
	}
	return t.UTC(), nil
}

// parseDataOpcional maps nil/empty through unchanged.
func parseDataOpcional(s *string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := parseData(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
