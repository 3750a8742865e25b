package model

import "time"

// Reserved keys assigned by the server on every portfolio record.
const (
	FieldID        = "id"
	FieldCreatedAt = "createdAt"
	FieldUpdatedAt = "updatedAt"
)

// TimestampLayout is the ISO-8601 UTC layout used for createdAt and updatedAt.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Portfolio is a single record from the data file. Apart from the reserved
// fields the shape is whatever the caller posted.
type Portfolio map[string]any

// ID returns the record's id, or "" if it is missing or not a string.
func (p Portfolio) ID() string {
	id, _ := p[FieldID].(string)
	return id
}

// NewPortfolio merges the caller's fields with the system-assigned ones.
// System fields are applied last so they always win.
func NewPortfolio(fields map[string]any, id string, now time.Time) Portfolio {
	p := make(Portfolio, len(fields)+3)
	for k, v := range fields {
		p[k] = v
	}
	ts := FormatTimestamp(now)
	p[FieldID] = id
	p[FieldCreatedAt] = ts
	p[FieldUpdatedAt] = ts
	return p
}

// FormatTimestamp renders t in TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
