package api

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{in: "2024-05-01T10:00:00Z", want: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)},
		{in: "2024-05-01T12:00:00+02:00", want: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)},
		{in: "2024-05-01T10:00:00.123456", want: time.Date(2024, 5, 1, 10, 0, 0, 123456000, time.Local)},
		{in: "2024-05-01 12:00:00+02", want: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)},
		{in: "2024-05-01 10:00:00+00", want: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)},
		{in: "2024-05-01T10:00:00.5+0000", want: time.Date(2024, 5, 1, 10, 0, 0, 500000000, time.UTC)},
		{in: "2024-05-01 10:00:00.123-05:00", want: time.Date(2024, 5, 1, 15, 0, 0, 123000000, time.UTC)},
		{in: "2024-05-01 10:00:00", want: time.Date(2024, 5, 1, 10, 0, 0, 0, time.Local)},
		{in: "2024-05-01", want: time.Date(2024, 5, 1, 0, 0, 0, 0, time.Local)},
		{in: "yesterday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTimestamp(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("ParseTimestamp(%q) = %v, want %v", tt.in, got.Time, tt.want)
			}
		})
	}
}

func TestItemDecoding(t *testing.T) {
	var it Item
	data := `{"id":1,"title":"A","completed":true,"created_at":"2024-05-01T10:00:00Z"}`
	if err := json.Unmarshal([]byte(data), &it); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if it.ID != 1 || it.Title != "A" || !it.Completed {
		t.Errorf("unexpected item: %+v", it)
	}

	want := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC).Local().Format("2006-01-02 15:04")
	if it.CreatedAt.Display() != want {
		t.Errorf("expected display %q, got %q", want, it.CreatedAt.Display())
	}

	var missing Item
	if err := json.Unmarshal([]byte(`{"id":2,"title":"B","created_at":null}`), &missing); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !missing.CreatedAt.IsZero() || missing.CreatedAt.Display() != "" {
		t.Errorf("expected zero timestamp, got %v", missing.CreatedAt)
	}
}

func TestItemDecodingToleratesUnreadableTimestamp(t *testing.T) {
	data := `[
		{"id":1,"title":"A","created_at":"2024-05-01 10:00:00+00"},
		{"id":2,"title":"B","completed":true,"created_at":"last tuesday"},
		{"id":3,"title":"C","created_at":1714557600}
	]`

	var items []Item
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		t.Fatalf("one bad created_at must not fail the list: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	if !items[0].CreatedAt.Equal(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected created_at for item 1: %v", items[0].CreatedAt.Time)
	}
	for _, it := range items[1:] {
		if !it.CreatedAt.IsZero() {
			t.Errorf("item %d: expected zero timestamp, got %v", it.ID, it.CreatedAt.Time)
		}
	}
	if items[1].Title != "B" || !items[1].Completed {
		t.Errorf("other fields must still decode: %+v", items[1])
	}
}

func TestAPIErrorHelpers(t *testing.T) {
	err := fmt.Errorf("failed to delete item 2: %w", &APIError{StatusCode: 503, Message: "down"})

	apiErr, ok := IsAPIError(err)
	if !ok {
		t.Fatal("expected APIError to be found through wrapping")
	}
	if !apiErr.IsServerError() || apiErr.IsNotFound() || apiErr.IsBadRequest() {
		t.Errorf("unexpected classification for %d", apiErr.StatusCode)
	}
	if apiErr.Error() != "API error (status 503): down" {
		t.Errorf("unexpected message: %s", apiErr.Error())
	}

	if _, ok := IsAPIError(fmt.Errorf("request failed")); ok {
		t.Error("plain error must not be reported as APIError")
	}
}
