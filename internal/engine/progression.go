package engine

import (
	"fmt"

	"studyquest_backend/internal/model"
)

// SessionResult 一次学习会话带来的变化，供上层生成通知
type SessionResult struct {
	XPGained      int                  `json:"xpGained"`
	LevelsGained  int                  `json:"levelsGained"`
	PreviousLevel int                  `json:"previousLevel"`
	PreviousStage model.CharacterStage `json:"previousStage"`
	Evolved       bool                 `json:"evolved"`
}

// RequiredXPForLevel 当前等级升级所需经验
func RequiredXPForLevel(level int) int {
	return level * XPPerLevel
}

// EvolutionThresholdHours 从 stage 进化到下一阶段所需的累计学习小时数。
// Phoenix 没有下一阶段，返回 false。
func EvolutionThresholdHours(stage model.CharacterStage) (int, bool) {
	switch stage {
	case model.StageEgg:
		return 10, true
	case model.StageChick:
		return 50, true
	case model.StageOwl:
		return 100, true
	case model.StagePhoenix:
		return 0, false
	default:
		return 0, false
	}
}

// ApplyStudySession 结算一次学习会话。minutes 必须为正数，由调用方保证。
func ApplyStudySession(profile model.UserProfile, minutes int, subject string) (model.UserProfile, SessionResult) {
	if minutes <= 0 {
		panic(fmt.Sprintf("engine: study session must be positive, got %d minutes (subject %q)", minutes, subject))
	}

	next := profile.Clone()
	result := SessionResult{
		XPGained:      minutes * XPPerMinute,
		PreviousLevel: profile.Level,
		PreviousStage: profile.CharacterStage,
	}

	xp := profile.CurrentXP + result.XPGained
	level := profile.Level
	required := profile.RequiredXP
	if required <= 0 {
		required = RequiredXPForLevel(level)
	}
	for xp >= required {
		xp -= required
		level++
		required = RequiredXPForLevel(level)
	}
	next.CurrentXP = xp
	next.Level = level
	next.RequiredXP = required
	result.LevelsGained = level - profile.Level

	next.TotalStudyTime = profile.TotalStudyTime + minutes
	next.CharacterStage = evolve(profile.CharacterStage, next.TotalStudyTime/60)
	result.Evolved = next.CharacterStage != profile.CharacterStage

	return next, result
}

// evolve 只和当前阶段比较，每次最多前进一级
func evolve(stage model.CharacterStage, hours int) model.CharacterStage {
	threshold, ok := EvolutionThresholdHours(stage)
	if !ok || hours < threshold {
		return stage
	}
	nextStage, _ := stage.Next()
	return nextStage
}

// XPPercent 经验条百分比，最大 100
func XPPercent(p model.UserProfile) float64 {
	if p.RequiredXP <= 0 {
		return 0
	}
	return min(100, float64(p.CurrentXP)/float64(p.RequiredXP)*100)
}

// StageProgress 角色进化进度
type StageProgress struct {
	Stage        model.CharacterStage `json:"stage"`
	Emoji        string               `json:"emoji"`
	NextName     string               `json:"nextName"`
	NextHours    int                  `json:"nextHours"`
	CurrentHours int                  `json:"currentHours"`
	Percent      float64              `json:"percent"`
}

// NextStageInfo 计算下一阶段名称、目标小时数和进度
func NextStageInfo(p model.UserProfile) StageProgress {
	info := StageProgress{
		Stage:        p.CharacterStage,
		Emoji:        p.CharacterStage.Emoji(),
		CurrentHours: p.TotalStudyTime / 60,
	}
	hours, ok := EvolutionThresholdHours(p.CharacterStage)
	if ok {
		nextStage, _ := p.CharacterStage.Next()
		info.NextName = nextStage.DisplayName()
		info.NextHours = hours
	} else {
		info.NextName = "최고 레벨"
		info.NextHours = MaxStageHours
	}
	info.Percent = min(100, float64(info.CurrentHours)/float64(info.NextHours)*100)
	return info
}
