package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMinutesBetween(t *testing.T) {
	start := time.Date(2024, 6, 5, 8, 0, 0, 0, time.Local)

	tests := []struct {
		name     string
		end      time.Time
		expected int
	}{
		{"整点", start.Add(8 * time.Hour), 480},
		{"半分钟向上取", start.Add(90 * time.Second), 2},
		{"不足半分钟舍去", start.Add(89 * time.Second), 1},
		{"零时长", start, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MinutesBetween(start, tt.end))
		})
	}
}

func TestPunchOpen(t *testing.T) {
	p := Punch{StartTime: time.Now()}
	assert.True(t, p.Open())

	end := time.Now()
	p.EndTime = &end
	assert.False(t, p.Open())
}
