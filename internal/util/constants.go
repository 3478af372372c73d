package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

// 购买被拒绝的原因
const (
	ReasonOwned             = "owned"
	ReasonInsufficientCoins = "insufficient_coins"
)

// 学习会话来源
const (
	SourceManual    = "manual"
	SourceStopwatch = "stopwatch"
	SourcePomodoro  = "pomodoro"
)
