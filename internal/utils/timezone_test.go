package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatUTC7(t *testing.T) {
	tests := []struct {
		name   string
		input  time.Time
		layout string
		want   string
	}{
		{
			name:  "utc input shifts seven hours",
			input: time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC),
			want:  "01/03/2024 17:30:00 (UTC+7)",
		},
		{
			name:  "crosses midnight",
			input: time.Date(2024, 12, 31, 20, 0, 0, 0, time.UTC),
			want:  "01/01/2025 03:00:00 (UTC+7)",
		},
		{
			name:  "non-utc input is normalised",
			input: time.Date(2024, 3, 1, 10, 30, 0, 0, time.FixedZone("EST", -5*60*60)),
			want:  "01/03/2024 22:30:00 (UTC+7)",
		},
		{
			name:   "custom layout",
			input:  time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC),
			layout: "2006-01-02 15:04",
			want:   "2024-03-01 17:30 (UTC+7)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatUTC7(tt.input, tt.layout)
			assert.Equal(t, tt.want, got)
			assert.True(t, strings.HasSuffix(got, " (UTC+7)"))
		})
	}
}
