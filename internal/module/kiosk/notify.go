package kiosk

import (
	"childcare-center-backend/config"
	"childcare-center-backend/internal/global/httpclient"
	"time"
)

const (
	eventCheckIn  = "child_check_in"
	eventCheckOut = "child_check_out"
)

type attendanceEvent struct {
	Event     string    `json:"event"`
	ChildID   uint      `json:"child_id"`
	ChildName string    `json:"child_name"`
	ParentID  uint      `json:"parent_id"`
	Time      time.Time `json:"time"`
}

// notifyAttendance 把接送事件异步推给外部 webhook（园方通知系统）
// 失败只记日志，不影响签到本身
func notifyAttendance(evt attendanceEvent) {
	url := config.Get().Kiosk.WebhookURL
	if url == "" {
		return
	}
	go func() {
		resp, err := httpclient.Client.R().
			SetHeader("Content-Type", "application/json").
			SetBody(evt).
			Post(url)
		if err != nil {
			log.Warn("接送事件通知失败", "error", err, "event", evt.Event, "child_id", evt.ChildID)
			return
		}
		if resp.StatusCode() >= 400 {
			log.Warn("接送事件通知被拒绝", "status", resp.StatusCode(), "event", evt.Event, "child_id", evt.ChildID)
		}
	}()
}
