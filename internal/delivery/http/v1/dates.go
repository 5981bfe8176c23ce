package v1

import "time"

const dateOnlyLayout = "2006-01-02"

// parseDate accepts the formats clients of the original API sent:
// a full RFC 3339 timestamp or a bare calendar date.
func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return t, nil
	}

	return time.Parse(dateOnlyLayout, s)
}
