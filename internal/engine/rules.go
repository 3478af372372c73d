// Package engine 奖励与成长规则：学习时长换算经验、等级、金币与角色进化。
// 所有函数都是纯函数，不修改入参，不做任何 I/O。
package engine

const (
	// XPPerMinute 每学习一分钟获得的经验
	XPPerMinute = 1
	// XPPerLevel 升级所需经验 = 等级 × XPPerLevel
	XPPerLevel = 100
	// CoinRewardTask 完成一个待办事项奖励的金币
	CoinRewardTask = 10
	// CoinRewardCompleteAll 完成全部待办的奖励，目前没有任何操作使用，保留
	CoinRewardCompleteAll = 50
	// MaxStageHours 终态角色展示用的目标小时数
	MaxStageHours = 9999
)
