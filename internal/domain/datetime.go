package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// The document store only knows strings, numbers, and nested documents — it
// has no calendar-date or time-of-day type. Date and TimeOfDay carry the
// storage mapping themselves: each marshals to its canonical string form
// ("2006-01-02" / "15:04:05") in both JSON and BSON, and parses it back on
// the way in. Full timestamps (time.Time) are not wrapped; the store handles
// those natively and can index and sort them.
//
// Both types fail closed: a string that does not parse is held verbatim and
// re-serialized byte-identically, so unknown or legacy values round-trip
// through the store without ever raising.

const (
	dateLayout      = "2006-01-02"
	timeOfDayLayout = "15:04:05"
)

// Date is a calendar date with no time-of-day component.
type Date struct {
	t   time.Time
	raw string // original input, set only when parsing failed
}

// NewDate returns the Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate interprets s as an ISO-8601 date ("2006-01-02").
// If s does not parse, the returned Date preserves s verbatim.
func ParseDate(s string) Date {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{raw: s}
	}
	return Date{t: t}
}

// Time returns the date as a time.Time at midnight UTC.
// It is the zero time for unparseable values.
func (d Date) Time() time.Time { return d.t }

// Valid reports whether the Date holds a parsed calendar date rather than a
// preserved raw string.
func (d Date) Valid() bool { return d.raw == "" }

// IsZero reports whether the Date is the zero value (no date, no raw string).
func (d Date) IsZero() bool { return d.raw == "" && d.t.IsZero() }

// String returns the canonical "2006-01-02" form, or the preserved raw
// string for values that failed to parse.
func (d Date) String() string {
	if d.raw != "" {
		return d.raw
	}
	return d.t.Format(dateLayout)
}

// MarshalJSON encodes the date as a JSON string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes a JSON string, preserving unparseable input.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("domain.Date: %w", err)
	}
	*d = ParseDate(s)
	return nil
}

// MarshalBSONValue stores the date as a plain BSON string.
func (d Date) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(d.String())
}

// UnmarshalBSONValue reads a BSON string back into a Date, preserving
// unparseable input.
func (d *Date) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	s, ok := rv.StringValueOK()
	if !ok {
		return fmt.Errorf("domain.Date: expected BSON string, got %s", t)
	}
	*d = ParseDate(s)
	return nil
}

// TimeOfDay is a wall-clock time with no date component.
//
// Clients submit activity times as "HH:MM", which is deliberately not the
// canonical "HH:MM:SS" storage form — such values are preserved verbatim
// rather than normalized, so what a client wrote is exactly what it reads
// back.
type TimeOfDay struct {
	t   time.Time
	raw string // original input, set only when parsing failed
}

// NewTimeOfDay returns the TimeOfDay for the given hour, minute, and second.
func NewTimeOfDay(hour, minute, second int) TimeOfDay {
	return TimeOfDay{t: time.Date(0, time.January, 1, hour, minute, second, 0, time.UTC)}
}

// ParseTimeOfDay interprets s as "15:04:05".
// If s does not parse, the returned TimeOfDay preserves s verbatim.
func ParseTimeOfDay(s string) TimeOfDay {
	t, err := time.Parse(timeOfDayLayout, s)
	if err != nil {
		return TimeOfDay{raw: s}
	}
	return TimeOfDay{t: t}
}

// Valid reports whether the TimeOfDay holds a parsed time rather than a
// preserved raw string.
func (td TimeOfDay) Valid() bool { return td.raw == "" }

// IsZero reports whether the TimeOfDay is the zero value (no time, no raw
// string). A parsed midnight is not zero.
func (td TimeOfDay) IsZero() bool { return td.raw == "" && td.t.IsZero() }

// String returns the canonical "15:04:05" form, or the preserved raw string
// for values that failed to parse.
func (td TimeOfDay) String() string {
	if td.raw != "" {
		return td.raw
	}
	return td.t.Format(timeOfDayLayout)
}

// MarshalJSON encodes the time as a JSON string.
func (td TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(td.String())
}

// UnmarshalJSON decodes a JSON string, preserving unparseable input.
func (td *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("domain.TimeOfDay: %w", err)
	}
	*td = ParseTimeOfDay(s)
	return nil
}

// MarshalBSONValue stores the time as a plain BSON string.
func (td TimeOfDay) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(td.String())
}

// UnmarshalBSONValue reads a BSON string back into a TimeOfDay, preserving
// unparseable input.
func (td *TimeOfDay) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	rv := bson.RawValue{Type: t, Value: data}
	s, ok := rv.StringValueOK()
	if !ok {
		return fmt.Errorf("domain.TimeOfDay: expected BSON string, got %s", t)
	}
	*td = ParseTimeOfDay(s)
	return nil
}
