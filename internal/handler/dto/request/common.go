package request

import (
	"strings"
	"time"

	"kantine-order-api/internal/pkg/errs"
)

var errInvalidDate = errs.New("invalid date format, expected YYYY-MM-DD or RFC 3339")

// Date accepts either a bare calendar date or a full RFC 3339 timestamp.
// Clients send dates; the admission engine only looks at the calendar day.
type Date struct {
	time.Time
}

func (d *Date) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "" || raw == "null" {
		return errInvalidDate
	}

	if t, err := time.Parse("2006-01-02", raw); err == nil {
		d.Time = t
		return nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		d.Time = t
		return nil
	}
	return errInvalidDate
}

// DeleteRequest carries the destructive-operation confirmation. Confirm is
// deliberately untyped: only a JSON boolean true confirms, the strings
// "true"/"yes" and the number 1 do not.
type DeleteRequest struct {
	Confirm any `json:"confirm"`
}

func (r DeleteRequest) Confirmed() bool {
	confirmed, ok := r.Confirm.(bool)
	return ok && confirmed
}
