// ABOUTME: Tests for fitlog CLI helper functions.
// ABOUTME: Covers time parsing and output formatting helpers.
package main

import (
	"testing"
	"time"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{
			name:  "date and time",
			input: "2026-08-14 07:00",
			want:  time.Date(2026, 8, 14, 7, 0, 0, 0, time.UTC),
		},
		{
			name:  "date and time with T",
			input: "2026-08-14T07:00",
			want:  time.Date(2026, 8, 14, 7, 0, 0, 0, time.UTC),
		},
		{
			name:  "date only",
			input: "2026-08-14",
			want:  time.Date(2026, 8, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "RFC3339",
			input: "2026-08-14T07:00:00Z",
			want:  time.Date(2026, 8, 14, 7, 0, 0, 0, time.UTC),
		},
		{
			name:    "garbage",
			input:   "yesterday",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseTime(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Error("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseTime(%q) failed: %v", tt.input, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("parseTime(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input  string
		maxLen int
		want   string
	}{
		{"short", 30, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"this string is definitely too long", 20, "this string is de..."},
	}

	for _, tt := range tests {
		if got := truncate(tt.input, tt.maxLen); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
		}
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("run", 8); got != "run     " {
		t.Errorf("padRight(\"run\", 8) = %q", got)
	}
	if got := padRight("weightlifting", 8); got != "weightlifting" {
		t.Errorf("padRight should not truncate, got %q", got)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		minutes int64
		want    string
	}{
		{0, "0m"},
		{45, "45m"},
		{60, "1h 00m"},
		{95, "1h 35m"},
		{600, "10h 00m"},
	}

	for _, tt := range tests {
		if got := formatDuration(tt.minutes); got != tt.want {
			t.Errorf("formatDuration(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}
