package service

import (
	"context"
	"testing"

	"studyquest_backend/internal/engine"
	"studyquest_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskServiceComplete(t *testing.T) {
	ctx := context.Background()

	t.Run("awards coins once", func(t *testing.T) {
		f := newFixture(t)
		sub := f.hub.Subscribe()
		defer sub.Close()

		res, err := f.tasks.Complete(ctx, "2")
		require.NoError(t, err)
		assert.True(t, res.Completed)
		assert.Equal(t, engine.CoinRewardTask, res.CoinsAwarded)
		assert.Equal(t, 60, res.Coins)
		assert.True(t, res.Task.IsCompleted)

		res, err = f.tasks.Complete(ctx, "2")
		require.NoError(t, err)
		assert.False(t, res.Completed)
		assert.Equal(t, 0, res.CoinsAwarded)
		assert.Equal(t, 60, f.store.Snapshot().Profile.Coins)

		assert.Equal(t, []model.EventType{model.EventCoinsAwarded}, eventTypes(drain(sub)))
	})

	t.Run("seeded completed task awards nothing", func(t *testing.T) {
		f := newFixture(t)
		res, err := f.tasks.Complete(ctx, "1")
		require.NoError(t, err)
		assert.False(t, res.Completed)
		assert.Equal(t, 50, res.Coins)
	})

	t.Run("unknown task", func(t *testing.T) {
		f := newFixture(t)
		sub := f.hub.Subscribe()
		defer sub.Close()

		res, err := f.tasks.Complete(ctx, "nope")
		require.NoError(t, err)
		require.NotNil(t, res)
		assert.False(t, res.Completed)
		assert.Nil(t, res.Task)
		assert.Equal(t, 0, res.CoinsAwarded)
		assert.Equal(t, 50, res.Coins)
		assert.Equal(t, 50, f.store.Snapshot().Profile.Coins)
		assert.Empty(t, drain(sub))
	})
}

func TestTaskServiceAdd(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	item, err := f.tasks.Add(ctx, model.TaskDraft{Title: "  국어 복습 ", TargetAmount: "p.30-40"})
	require.NoError(t, err)
	assert.Equal(t, "국어 복습", item.Title)
	assert.Equal(t, model.CategorySelf, item.Category)
	assert.Equal(t, testDate, item.Date)
	assert.NotEmpty(t, item.ID)
	assert.Len(t, f.tasks.List(), 4)

	_, err = f.tasks.Add(ctx, model.TaskDraft{Title: "   "})
	assert.ErrorIs(t, err, engine.ErrTaskTitleRequired)
	_, err = f.tasks.Add(ctx, model.TaskDraft{Title: "x", Category: "Gym"})
	assert.ErrorIs(t, err, engine.ErrInvalidCategory)
	assert.Len(t, f.tasks.List(), 4)
}

func TestTaskServiceDeleteAndReschedule(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	removed, err := f.tasks.Delete(ctx, "1")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = f.tasks.Delete(ctx, "1")
	require.NoError(t, err)
	assert.False(t, removed)

	removed, err = f.tasks.Reschedule(ctx, "3")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = f.tasks.Reschedule(ctx, "3")
	require.NoError(t, err)
	assert.False(t, removed)

	tasks := f.tasks.List()
	require.Len(t, tasks, 1)
	assert.Equal(t, "2", tasks[0].ID)
}

func TestTaskServiceProgress(t *testing.T) {
	f := newFixture(t)
	p := f.tasks.Progress()
	assert.Equal(t, 1, p.Completed)
	assert.Equal(t, 3, p.Total)
	assert.InDelta(t, 33.33, p.Percent, 0.01)

	grouped := f.tasks.Grouped()
	assert.Len(t, grouped[model.CategorySchool], 1)
	assert.Len(t, grouped[model.CategoryAcademy], 1)
	assert.Len(t, grouped[model.CategorySelf], 1)
}
