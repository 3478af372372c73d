package model

import "time"

// DailyStat 每日专注分钟数
type DailyStat struct {
	Day     string `json:"day"`
	Minutes int    `json:"minutes"`
}

// SubjectStat 科目分布
type SubjectStat struct {
	Subject string `json:"subject"`
	Value   int    `json:"value"`
	Color   string `json:"color"`
}

// StudySession 已结束的一次学习会话，仅保存在进程内存中
// swagger:model StudySession
type StudySession struct {
	ID         string    `json:"id"`
	Subject    string    `json:"subject"`
	Minutes    int       `json:"minutes"`
	XPGained   int       `json:"xpGained"`
	Source     string    `json:"source"` // manual, stopwatch, pomodoro
	FinishedAt time.Time `json:"finishedAt"`
}
