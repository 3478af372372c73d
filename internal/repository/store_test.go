package repository

import (
	"errors"
	"sync"
	"testing"

	"studyquest_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() *Store {
	return NewStore(InitialState("2026-10-17"))
}

func TestStoreUpdate(t *testing.T) {
	t.Run("commits on success", func(t *testing.T) {
		s := newTestStore()
		err := s.Update(func(st *State) error {
			st.Profile.Coins = 999
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 999, s.Snapshot().Profile.Coins)
	})

	t.Run("discards on error", func(t *testing.T) {
		s := newTestStore()
		boom := errors.New("boom")
		err := s.Update(func(st *State) error {
			st.Profile.Coins = 999
			st.Tasks = nil
			st.TimeTable[model.Mon][0] = "X"
			return boom
		})
		assert.ErrorIs(t, err, boom)
		snap := s.Snapshot()
		assert.Equal(t, 50, snap.Profile.Coins)
		assert.Len(t, snap.Tasks, 3)
		assert.Equal(t, "국어", snap.TimeTable[model.Mon][0])
	})

	t.Run("snapshot is detached", func(t *testing.T) {
		s := newTestStore()
		snap := s.Snapshot()
		snap.Tasks[0].Title = "changed"
		snap.Profile.EquippedItems = append(snap.Profile.EquippedItems, "🎩")
		snap.TimeTable[model.Fri][6] = "changed"

		fresh := s.Snapshot()
		assert.Equal(t, "수학 수업", fresh.Tasks[0].Title)
		assert.Empty(t, fresh.Profile.EquippedItems)
		assert.Equal(t, "학급", fresh.TimeTable[model.Fri][6])
	})

	t.Run("concurrent updates are serialised", func(t *testing.T) {
		s := newTestStore()
		var wg sync.WaitGroup
		for i := 0; i < 100; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = s.Update(func(st *State) error {
					st.Profile.Coins++
					return nil
				})
			}()
		}
		wg.Wait()
		assert.Equal(t, 150, s.Snapshot().Profile.Coins)
	})
}

func TestSeed(t *testing.T) {
	st := InitialState("2026-10-17")
	assert.Equal(t, 1, st.Profile.Level)
	assert.Equal(t, 100, st.Profile.RequiredXP)
	assert.Equal(t, model.StageEgg, st.Profile.CharacterStage)

	for _, day := range model.Weekdays {
		assert.Len(t, st.TimeTable[day], model.PeriodsPerDay, day)
	}
	for _, task := range st.Tasks {
		assert.True(t, task.Category.IsValid())
		assert.Equal(t, "2026-10-17", task.Date)
	}
	for _, item := range DefaultCatalog() {
		assert.True(t, item.Type.IsValid())
		assert.Positive(t, item.Price)
	}
}

func TestRepositories(t *testing.T) {
	s := newTestStore()

	tasks := NewTaskRepository(s)
	task, ok := tasks.FindByID("3")
	require.True(t, ok)
	assert.Equal(t, "p.12-15", task.TargetAmount)
	_, ok = tasks.FindByID("missing")
	assert.False(t, ok)

	shop := NewShopRepository(DefaultCatalog())
	item, ok := shop.FindByID("3")
	require.True(t, ok)
	assert.Equal(t, 500, item.Price)
	assert.Len(t, shop.FindAll(), 4)

	assert.Equal(t, "학생", NewUserRepository(s).GetProfile().Nickname)
	assert.Equal(t, "동아리", NewTimetableRepository(s).Get()[model.Tue][6])
}

func TestRecentSessions(t *testing.T) {
	s := newTestStore()
	require.NoError(t, s.Update(func(st *State) error {
		for _, id := range []string{"a", "b", "c"} {
			st.Sessions = append(st.Sessions, model.StudySession{ID: id, Minutes: 10})
		}
		return nil
	}))

	stats := NewStatisticsRepository(s, WeeklyStats(), SubjectStats())
	recent := stats.RecentSessions(2)
	require.Len(t, recent, 2)
	assert.Equal(t, "c", recent[0].ID)
	assert.Equal(t, "b", recent[1].ID)
	assert.Len(t, stats.RecentSessions(0), 3)
	assert.Len(t, stats.Weekly(), 7)
}
