package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// timestampLayouts are accepted when decoding a [Timestamp]. The backend
// emits naive datetimes for some columns.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// Timestamp is a point in time as the KARDASH backend serializes it.
// Values without a zone are read as UTC.
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps t.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}

	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}

	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, raw)
		if err == nil {
			t.Time = parsed
			return nil
		}
	}

	return fmt.Errorf("unsupported timestamp %q", raw)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.UTC().Format(time.RFC3339))
}

// Budget is a job budget. The backend stores a number but some views send
// a free-form string such as "$500-$1000".
type Budget string

func (b *Budget) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*b = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*b = Budget(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("budget must be a string or a number: %w", err)
	}
	*b = Budget(n.String())
	return nil
}

// Float returns the numeric value of the budget, if it has one.
func (b Budget) Float() (float64, bool) {
	f, err := strconv.ParseFloat(string(b), 64)
	return f, err == nil
}
