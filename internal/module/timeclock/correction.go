package timeclock

import (
	"childcare-center-backend/internal/global/response"
	"childcare-center-backend/internal/model"
	"time"
)

// 未填写原因时落库的默认修正说明
const (
	ReasonAdminEdit   = "管理员修正"
	ReasonAdminInsert = "管理员补录"
)

type PunchEditRequest struct {
	StartTime *time.Time `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
	// ClearEnd 显式清空下班时间，把记录重新置为进行中
	// （JSON 里无法区分"未传 end_time"与"end_time 置空"）
	ClearEnd bool    `json:"clear_end"`
	Note     *string `json:"note"`
	Reason   string  `json:"reason"`
}

// changesPunch 是否携带了对记录本身的改动
// 只带 reason 不算：修正痕迹不能凭空产生
func (r *PunchEditRequest) changesPunch() bool {
	return r.StartTime != nil || r.EndTime != nil || r.ClearEnd || r.Note != nil
}

// applyEdit 把修正请求套用到记录上：改字段、盖修正戳、重算时长
// 时长与起止时间在同一次保存内更新，调用方负责放进事务
func applyEdit(p *model.Punch, req *PunchEditRequest, adminID uint, now time.Time) *response.Error {
	if !req.changesPunch() {
		return response.ErrInvalidRequest.WithTips("未提供任何修改字段")
	}

	if req.StartTime != nil {
		p.StartTime = *req.StartTime
	}
	if req.ClearEnd {
		p.EndTime = nil
	} else if req.EndTime != nil {
		p.EndTime = req.EndTime
	}
	if req.Note != nil {
		p.Note = *req.Note
	}

	if p.EndTime != nil && p.EndTime.Before(p.StartTime) {
		return response.ErrInvalidRequest.WithTips("结束时间不能早于开始时间")
	}

	recomputeTotal(p)

	reason := req.Reason
	if reason == "" {
		reason = ReasonAdminEdit
	}
	p.AdjustedBy = &adminID
	p.AdjustedAt = &now
	p.AdjustReason = reason
	return nil
}

// recomputeTotal 按当前起止时间重算总分钟数
// 进行中的记录总时长必须为空
func recomputeTotal(p *model.Punch) {
	if p.EndTime == nil {
		p.TotalMinutes = nil
		return
	}
	minutes := model.MinutesBetween(p.StartTime, *p.EndTime)
	p.TotalMinutes = &minutes
}
