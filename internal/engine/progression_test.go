package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyquest_backend/internal/model"
)

func newProfile() model.UserProfile {
	return model.UserProfile{
		Nickname:       "학생",
		Level:          1,
		CurrentXP:      0,
		RequiredXP:     100,
		Coins:          50,
		TotalStudyTime: 0,
		Streak:         3,
		CharacterStage: model.StageEgg,
		EquippedItems:  []string{},
		OwnedItems:     []string{},
	}
}

func TestApplyStudySession(t *testing.T) {
	t.Run("single level up", func(t *testing.T) {
		p := newProfile()
		p.CurrentXP = 95
		next, res := ApplyStudySession(p, 10, "수학")
		assert.Equal(t, 2, next.Level)
		assert.Equal(t, 5, next.CurrentXP)
		assert.Equal(t, 200, next.RequiredXP)
		assert.Equal(t, 10, res.XPGained)
		assert.Equal(t, 1, res.LevelsGained)
	})

	t.Run("requirement grows with level", func(t *testing.T) {
		// 250 XP: 升到 2 级消耗 100，剩余 150 不足 2 级所需的 200
		next, res := ApplyStudySession(newProfile(), 250, "영어")
		assert.Equal(t, 2, next.Level)
		assert.Equal(t, 150, next.CurrentXP)
		assert.Equal(t, 200, next.RequiredXP)
		assert.Equal(t, 1, res.LevelsGained)
		assert.Equal(t, 250, next.TotalStudyTime)
	})

	t.Run("multiple level ups", func(t *testing.T) {
		next, res := ApplyStudySession(newProfile(), 350, "영어")
		assert.Equal(t, 3, next.Level)
		assert.Equal(t, 50, next.CurrentXP)
		assert.Equal(t, 300, next.RequiredXP)
		assert.Equal(t, 2, res.LevelsGained)
	})

	t.Run("no level up", func(t *testing.T) {
		next, res := ApplyStudySession(newProfile(), 30, "과학")
		assert.Equal(t, 1, next.Level)
		assert.Equal(t, 30, next.CurrentXP)
		assert.Equal(t, 0, res.LevelsGained)
	})

	t.Run("does not mutate input", func(t *testing.T) {
		p := newProfile()
		p.EquippedItems = []string{"🎩"}
		before := p.Clone()
		next, _ := ApplyStudySession(p, 500, "역사")
		assert.Equal(t, before, p)
		next.EquippedItems[0] = "👑"
		assert.Equal(t, "🎩", p.EquippedItems[0])
	})

	t.Run("subject does not affect math", func(t *testing.T) {
		a, _ := ApplyStudySession(newProfile(), 42, "수학")
		b, _ := ApplyStudySession(newProfile(), 42, "")
		assert.Equal(t, a, b)
	})

	t.Run("rejects non-positive minutes", func(t *testing.T) {
		assert.Panics(t, func() { ApplyStudySession(newProfile(), 0, "수학") })
		assert.Panics(t, func() { ApplyStudySession(newProfile(), -5, "수학") })
	})
}

func TestNormalizationInvariant(t *testing.T) {
	p := newProfile()
	for _, minutes := range []int{1, 7, 99, 100, 101, 250, 1000, 12345, 3, 60} {
		p, _ = ApplyStudySession(p, minutes, "수학")
		require.Less(t, p.CurrentXP, p.RequiredXP)
		require.Equal(t, RequiredXPForLevel(p.Level), p.RequiredXP)
	}
}

func TestEvolution(t *testing.T) {
	t.Run("egg to chick exactly at ten hours", func(t *testing.T) {
		p := newProfile()
		p.TotalStudyTime = 10*60 - 2
		p, res := ApplyStudySession(p, 1, "수학")
		assert.Equal(t, model.StageEgg, p.CharacterStage)
		assert.False(t, res.Evolved)

		p, res = ApplyStudySession(p, 1, "수학")
		assert.Equal(t, model.StageChick, p.CharacterStage)
		assert.True(t, res.Evolved)
		assert.Equal(t, model.StageEgg, res.PreviousStage)
	})

	t.Run("one step per session", func(t *testing.T) {
		p := newProfile()
		p, _ = ApplyStudySession(p, 200*60, "수학")
		assert.Equal(t, model.StageChick, p.CharacterStage)
		p, _ = ApplyStudySession(p, 1, "수학")
		assert.Equal(t, model.StageOwl, p.CharacterStage)
		p, _ = ApplyStudySession(p, 1, "수학")
		assert.Equal(t, model.StagePhoenix, p.CharacterStage)
		p, res := ApplyStudySession(p, 1, "수학")
		assert.Equal(t, model.StagePhoenix, p.CharacterStage)
		assert.False(t, res.Evolved)
	})

	t.Run("never regresses", func(t *testing.T) {
		p := newProfile()
		prev := p.CharacterStage.Rank()
		for i := 0; i < 400; i++ {
			p, _ = ApplyStudySession(p, 37, "수학")
			require.GreaterOrEqual(t, p.CharacterStage.Rank(), prev)
			prev = p.CharacterStage.Rank()
		}
		assert.Equal(t, model.StagePhoenix, p.CharacterStage)
	})
}

func TestNextStageInfo(t *testing.T) {
	p := newProfile()
	p.TotalStudyTime = 5 * 60
	info := NextStageInfo(p)
	assert.Equal(t, "병아리", info.NextName)
	assert.Equal(t, 10, info.NextHours)
	assert.InDelta(t, 50.0, info.Percent, 0.001)

	p.CharacterStage = model.StagePhoenix
	p.TotalStudyTime = 120 * 60
	info = NextStageInfo(p)
	assert.Equal(t, MaxStageHours, info.NextHours)
	assert.Equal(t, "🦅", info.Emoji)

	p.CharacterStage = model.StageChick
	p.TotalStudyTime = 80 * 60
	assert.Equal(t, 100.0, NextStageInfo(p).Percent)
}

func TestXPPercent(t *testing.T) {
	p := newProfile()
	p.CurrentXP = 25
	assert.InDelta(t, 25.0, XPPercent(p), 0.001)
	p.RequiredXP = 0
	assert.Equal(t, 0.0, XPPercent(p))
}
