package scheduler

const (
	LogMsgTaskScheduled = "Periodic task scheduled"
	LogMsgTickDropped   = "Worker queue full, skipping tick"
)
