package tool

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-06-05")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 5, 0, 0, 0, 0, time.Local), d)

	_, err = ParseDate("2024/06/05")
	assert.Error(t, err)
	_, err = ParseDate("不是日期")
	assert.Error(t, err)
}

func TestCurrentISOWeek(t *testing.T) {
	tests := []struct {
		name  string
		now   time.Time
		start string
		end   string
	}{
		{
			name:  "周三",
			now:   time.Date(2024, 6, 5, 14, 30, 0, 0, time.Local),
			start: "2024-06-03",
			end:   "2024-06-09",
		},
		{
			name:  "周一当天",
			now:   time.Date(2024, 6, 3, 0, 0, 0, 0, time.Local),
			start: "2024-06-03",
			end:   "2024-06-09",
		},
		{
			name:  "周日仍属本周",
			now:   time.Date(2024, 6, 9, 23, 59, 0, 0, time.Local),
			start: "2024-06-03",
			end:   "2024-06-09",
		},
		{
			name:  "跨月",
			now:   time.Date(2024, 7, 1, 8, 0, 0, 0, time.Local),
			start: "2024-07-01",
			end:   "2024-07-07",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := CurrentISOWeek(tt.now)
			assert.Equal(t, tt.start, start.Format(DateLayout))
			assert.Equal(t, tt.end, end.Format(DateLayout))
		})
	}
}

func TestDaysBetween(t *testing.T) {
	start := time.Date(2024, 6, 3, 10, 0, 0, 0, time.Local)
	end := time.Date(2024, 6, 5, 2, 0, 0, 0, time.Local)
	days := DaysBetween(start, end)
	require.Len(t, days, 3)
	assert.Equal(t, "2024-06-03", days[0].Format(DateLayout))
	assert.Equal(t, "2024-06-05", days[2].Format(DateLayout))

	same := DaysBetween(start, start)
	require.Len(t, same, 1)
}
