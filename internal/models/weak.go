package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ID is an upstream identifier. Services disagree on whether ids are
// JSON strings or numbers, so both decode to the same string form.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(strings.TrimSpace(s))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("invalid id %s: %w", string(b), err)
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string { return string(id) }

func (id ID) IsZero() bool { return id == "" }

// Amount is a numeric upstream field. Numbers, numeric strings and null
// are accepted; anything else decodes to 0 instead of failing the record.
type Amount float64

func (a *Amount) UnmarshalJSON(b []byte) error {
	*a = Amount(parseNumber(b))
	return nil
}

func (a Amount) Float() float64 {
	f := float64(a)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func parseNumber(b []byte) float64 {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return 0
	}

	s := string(b)
	if b[0] == '"' {
		if err := json.Unmarshal(b, &s); err != nil {
			return 0
		}
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

var (
	zonedLayouts = []string{
		time.RFC3339Nano,
	}
	wallClockLayouts = []string{
		"2006-01-02T15:04:05.999999999",
		"2006-01-02 15:04:05",
		"2006-01-02T15:04",
		"2006-01-02",
	}
)

const wallClockFormat = "2006-01-02T15:04:05.999999999"

// Timestamp is an upstream point in time. RFC3339 strings, zone-less
// local strings and epoch milliseconds are accepted; unparseable values
// decode to the zero time.
//
// Zone-less strings are wall-clock readings in the salon's own zone. They
// are stored with UTC fields and re-anchored by In.
type Timestamp struct {
	time.Time
	wallClock bool
}

func NewTimestamp(t time.Time) Timestamp { return Timestamp{Time: t} }

// WallClockTimestamp builds a zone-less reading from t's date and clock
// fields.
func WallClockTimestamp(t time.Time) Timestamp {
	return Timestamp{
		Time:      time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC),
		wallClock: true,
	}
}

// WallClock reports whether the value carried no zone upstream.
func (t Timestamp) WallClock() bool { return t.wallClock }

// In returns the instant in loc. Wall-clock readings keep their date and
// clock fields and take loc as their zone.
func (t Timestamp) In(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	if !t.wallClock {
		return t.Time.In(loc)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	*t = Timestamp{}

	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}

	if b[0] != '"' {
		ms := parseNumber(b)
		if ms > 0 {
			t.Time = time.UnixMilli(int64(ms)).UTC()
		}
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return nil
	}
	*t = ParseTimestamp(s)
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	if t.wallClock {
		return json.Marshal(t.Time.Format(wallClockFormat))
	}
	return json.Marshal(t.Time)
}

func (t *Timestamp) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*t = Timestamp{}
	case time.Time:
		*t = Timestamp{Time: v}
	case string:
		*t = ParseTimestamp(v)
	case []byte:
		*t = ParseTimestamp(string(v))
	default:
		return fmt.Errorf("unsupported timestamp type %T", value)
	}
	return nil
}

func (t Timestamp) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return t.Time, nil
}

// ParseTimestamp tries the known upstream layouts in order. Values with
// an offset are absolute; zone-less values are wall-clock readings.
func ParseTimestamp(s string) Timestamp {
	s = strings.TrimSpace(s)
	if s == "" {
		return Timestamp{}
	}
	for _, layout := range zonedLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return Timestamp{Time: ts}
		}
	}
	for _, layout := range wallClockLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return Timestamp{Time: ts, wallClock: true}
		}
	}
	return Timestamp{}
}
