package pipeline

import (
	"strings"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func TestBuildReport(t *testing.T) {
	now := time.Date(2026, time.March, 7, 9, 5, 0, 0, time.UTC)

	report := BuildReport("Сводка за неделю.", now)

	assert.Equal(t, true, strings.HasPrefix(report, reportHeader))
	assert.Equal(t, true, strings.Contains(report, "Сводка за неделю."))
	assert.Equal(t, true, strings.Contains(report, "Сформировано 7 марта 2026 г., 09:05"))
}

func TestFormatRuTimestamp(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{
			name: "single digit day",
			at:   time.Date(2026, time.January, 2, 18, 30, 0, 0, time.UTC),
			want: "2 января 2026 г., 18:30",
		},
		{
			name: "minute padded",
			at:   time.Date(2025, time.December, 31, 23, 7, 0, 0, time.UTC),
			want: "31 декабря 2025 г., 23:07",
		},
		{
			name: "hour padded",
			at:   time.Date(2026, time.August, 15, 6, 0, 0, 0, time.UTC),
			want: "15 августа 2026 г., 06:00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatRuTimestamp(tt.at)
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
