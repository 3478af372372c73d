package service

import (
	"os"
	"testing"
	"time"

	"studyquest_backend/internal/model"
	"studyquest_backend/internal/repository"
	"studyquest_backend/pkg/logger"
	"studyquest_backend/pkg/monitoring"
)

func TestMain(m *testing.M) {
	logger.InitNop()
	monitoring.Init()
	os.Exit(m.Run())
}

const testDate = "2026-10-17"

type fixture struct {
	store       *repository.Store
	hub         *NotificationHub
	progression *ProgressionService
	tasks       *TaskService
	shop        *ShopService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := repository.NewStore(repository.InitialState(testDate))
	hub := NewNotificationHub(64)
	t.Cleanup(hub.Close)

	userRepo := repository.NewUserRepository(store)
	f := &fixture{
		store:       store,
		hub:         hub,
		progression: NewProgressionService(store, userRepo, hub),
		tasks:       NewTaskService(store, repository.NewTaskRepository(store), hub),
		shop:        NewShopService(store, userRepo, repository.NewShopRepository(repository.DefaultCatalog()), hub),
	}
	fixed := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)
	f.progression.now = func() time.Time { return fixed }
	f.tasks.now = func() time.Time { return fixed }
	return f
}

func (f *fixture) setProfile(t *testing.T, fn func(p *model.UserProfile)) {
	t.Helper()
	err := f.store.Update(func(st *repository.State) error {
		fn(&st.Profile)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
}

// drain 读取当前已投递的全部事件
func drain(sub *Subscription) []model.Event {
	var out []model.Event
	for {
		select {
		case evt, ok := <-sub.Events():
			if !ok {
				return out
			}
			out = append(out, evt)
		default:
			return out
		}
	}
}

func eventTypes(events []model.Event) []model.EventType {
	types := make([]model.EventType, 0, len(events))
	for _, e := range events {
		types = append(types, e.Type)
	}
	return types
}
