package model

import "time"

const (
	SyncResultRunning = "running"
	SyncResultOK      = "ok"
	SyncResultFailed  = "failed"
)

type SyncRun struct {
	ID            int64
	StartedAt     time.Time
	FinishedAt    *time.Time
	Result        string
	Error         *string
	ItemsReceived int
	ChangesSent   int
}
