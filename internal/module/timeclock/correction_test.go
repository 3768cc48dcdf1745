package timeclock

import (
	"childcare-center-backend/internal/global/response"
	"childcare-center-backend/internal/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func minutes(n int) *int { return &n }

func timePtr(t time.Time) *time.Time { return &t }

func strPtr(s string) *string { return &s }

func samplePunch() model.Punch {
	start := time.Date(2024, 6, 5, 8, 0, 0, 0, time.Local)
	end := start.Add(8 * time.Hour)
	return model.Punch{
		ID:           1,
		EmployeeID:   1,
		StartTime:    start,
		EndTime:      &end,
		EntryType:    model.EntryTypeShift,
		TotalMinutes: minutes(480),
	}
}

func TestApplyEditNoFields(t *testing.T) {
	p := samplePunch()
	err := applyEdit(&p, &PunchEditRequest{Reason: "只有原因"}, 99, time.Now())
	require.Error(t, err)
	assert.ErrorIs(t, err, response.ErrInvalidRequest)
	assert.Nil(t, p.AdjustedBy) // 请求被拒绝时不留修正痕迹
}

func TestApplyEditRecomputesTotal(t *testing.T) {
	p := samplePunch()
	now := time.Now()
	newEnd := p.StartTime.Add(6 * time.Hour)

	err := applyEdit(&p, &PunchEditRequest{EndTime: timePtr(newEnd)}, 99, now)
	require.Nil(t, err)
	require.NotNil(t, p.TotalMinutes)
	assert.Equal(t, 360, *p.TotalMinutes)
	require.NotNil(t, p.AdjustedBy)
	assert.Equal(t, uint(99), *p.AdjustedBy)
	require.NotNil(t, p.AdjustedAt)
	assert.True(t, p.AdjustedAt.Equal(now))
	assert.Equal(t, ReasonAdminEdit, p.AdjustReason) // 未填原因时落默认说明
}

func TestApplyEditClearEnd(t *testing.T) {
	p := samplePunch()
	err := applyEdit(&p, &PunchEditRequest{ClearEnd: true, Reason: "漏打下班卡重置"}, 99, time.Now())
	require.Nil(t, err)
	assert.Nil(t, p.EndTime)
	assert.Nil(t, p.TotalMinutes) // 重新置为进行中后总时长必须清空
	assert.Equal(t, "漏打下班卡重置", p.AdjustReason)
}

func TestApplyEditRejectsEndBeforeStart(t *testing.T) {
	p := samplePunch()
	badEnd := p.StartTime.Add(-time.Hour)
	err := applyEdit(&p, &PunchEditRequest{EndTime: timePtr(badEnd)}, 99, time.Now())
	require.Error(t, err)
	assert.ErrorIs(t, err, response.ErrInvalidRequest)
}

func TestApplyEditMoveStart(t *testing.T) {
	p := samplePunch()
	newStart := p.StartTime.Add(30 * time.Minute)
	err := applyEdit(&p, &PunchEditRequest{StartTime: timePtr(newStart), Note: strPtr("迟到补登")}, 99, time.Now())
	require.Nil(t, err)
	require.NotNil(t, p.TotalMinutes)
	assert.Equal(t, 450, *p.TotalMinutes)
	assert.Equal(t, "迟到补登", p.Note)
}

func TestChangesPunch(t *testing.T) {
	assert.False(t, (&PunchEditRequest{}).changesPunch())
	assert.False(t, (&PunchEditRequest{Reason: "x"}).changesPunch())
	assert.True(t, (&PunchEditRequest{ClearEnd: true}).changesPunch())
	assert.True(t, (&PunchEditRequest{Note: strPtr("")}).changesPunch())
}

func TestRecomputeTotal(t *testing.T) {
	p := samplePunch()
	recomputeTotal(&p)
	require.NotNil(t, p.TotalMinutes)
	assert.Equal(t, 480, *p.TotalMinutes)

	p.EndTime = nil
	recomputeTotal(&p)
	assert.Nil(t, p.TotalMinutes)
}
