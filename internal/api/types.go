// Package api provides a client for the todo service REST API.
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// Item represents a todo item. Identity and creation time are assigned by the server.
type Item struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt Timestamp `json:"created_at"`
}

// CreateItemRequest represents the request body for creating an item.
type CreateItemRequest struct {
	Title string `json:"title"`
}

// Timestamp is a server timestamp. The service may omit the zone offset, in
// which case the value is read as local time.
type Timestamp struct {
	time.Time
}

// Layouts carrying a zone offset that RFC 3339 does not accept, such as
// "+00" or "+0000", or a space instead of "T".
var offsetLayouts = []string{
	"2006-01-02T15:04:05.999999999-07",
	"2006-01-02T15:04:05.999999999-0700",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999-07",
	"2006-01-02 15:04:05.999999999-0700",
}

// Zone-less layouts, tried last.
var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTimestamp parses an ISO-8601 timestamp with or without a zone offset.
func ParseTimestamp(s string) (Timestamp, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return Timestamp{t}, nil
	}
	for _, layout := range offsetLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Timestamp{t}, nil
		}
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return Timestamp{t}, nil
		}
	}
	return Timestamp{}, fmt.Errorf("invalid timestamp %q", s)
}

// UnmarshalJSON implements json.Unmarshaler. The timestamp is display-only, so
// a value that cannot be read leaves it zero instead of failing the item.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	*t = Timestamp{}
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		slog.Warn("ignoring non-string created_at", "value", string(data))
		return nil
	}
	if s == "" {
		return nil
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		slog.Warn("ignoring unreadable created_at", "err", err)
		return nil
	}
	*t = parsed
	return nil
}

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Format(time.RFC3339Nano))
}

// Display returns the timestamp in the viewer's local zone.
func (t Timestamp) Display() string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format("2006-01-02 15:04")
}
