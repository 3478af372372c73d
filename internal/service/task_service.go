package service

import (
	"context"
	"fmt"
	"time"

	"studyquest_backend/internal/engine"
	"studyquest_backend/internal/model"
	"studyquest_backend/internal/repository"
	"studyquest_backend/internal/util"
	"studyquest_backend/pkg/logger"
	"studyquest_backend/pkg/monitoring"
	"studyquest_backend/pkg/tracing"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

type TaskService struct {
	Store    *repository.Store
	TaskRepo *repository.TaskRepository
	Hub      *NotificationHub
	now      func() time.Time
}

func NewTaskService(store *repository.Store, taskRepo *repository.TaskRepository, hub *NotificationHub) *TaskService {
	return &TaskService{
		Store:    store,
		TaskRepo: taskRepo,
		Hub:      hub,
		now:      time.Now,
	}
}

// CompleteResult Completed 为 false 表示任务此前已完成或不存在，本次没有奖励
type CompleteResult struct {
	Task         *model.TaskItem `json:"task,omitempty"`
	Completed    bool            `json:"completed"`
	CoinsAwarded int             `json:"coinsAwarded"`
	Coins        int             `json:"coins"`
}

type TaskProgress struct {
	Completed int     `json:"completed"`
	Total     int     `json:"total"`
	Percent   float64 `json:"percent"`
}

func (s *TaskService) List() []model.TaskItem {
	return s.TaskRepo.FindAll()
}

func (s *TaskService) Grouped() map[model.Category][]model.TaskItem {
	return engine.TasksByCategory(s.TaskRepo.FindAll())
}

func (s *TaskService) Progress() TaskProgress {
	completed, total, percent := engine.TaskProgress(s.TaskRepo.FindAll())
	return TaskProgress{Completed: completed, Total: total, Percent: percent}
}

func (s *TaskService) Add(ctx context.Context, draft model.TaskDraft) (model.TaskItem, error) {
	var created model.TaskItem
	err := s.Store.Update(func(st *repository.State) error {
		tasks, item, err := engine.AddTask(st.Tasks, draft, uuid.NewString(), s.now().Format(util.DateFormat))
		if err != nil {
			return err
		}
		st.Tasks = tasks
		created = item
		return nil
	})
	if err != nil {
		return model.TaskItem{}, err
	}
	logger.Log.Info("Task added", zap.String("id", created.ID), zap.String("category", string(created.Category)))
	return created, nil
}

// Complete 完成任务并发放金币，同一任务只奖励一次
func (s *TaskService) Complete(ctx context.Context, id string) (*CompleteResult, error) {
	_, span := tracing.Tracer().Start(ctx, "TaskService.Complete")
	defer span.End()
	span.SetAttributes(attribute.String("task.id", id))

	var res CompleteResult
	err := s.Store.Update(func(st *repository.State) error {
		idx := indexOfTask(st.Tasks, id)
		if idx < 0 {
			// 未知任务静默拒绝
			res = CompleteResult{Coins: st.Profile.Coins}
			return nil
		}
		tasks, coins := engine.CompleteTask(st.Tasks, id)
		st.Tasks = tasks
		st.Profile = engine.CreditCoins(st.Profile, coins)

		task := tasks[idx]
		res = CompleteResult{
			Task:         &task,
			Completed:    coins > 0,
			CoinsAwarded: coins,
			Coins:        st.Profile.Coins,
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("complete task %s: %w", id, err)
	}

	if res.Completed {
		monitoring.TasksCompleted.Inc()
		monitoring.CoinBalance.Set(float64(res.Coins))
		logger.Log.Info("Task completed", zap.String("id", id), zap.Int("coinsAwarded", res.CoinsAwarded))
		if s.Hub != nil {
			s.Hub.Publish(model.EventCoinsAwarded, fmt.Sprintf("+%d 코인", res.CoinsAwarded), map[string]any{
				"coins":  res.CoinsAwarded,
				"taskId": id,
			})
		}
	}
	return &res, nil
}

// Delete 删除任务，不存在时同样返回成功
func (s *TaskService) Delete(ctx context.Context, id string) (bool, error) {
	removed := false
	err := s.Store.Update(func(st *repository.State) error {
		before := len(st.Tasks)
		st.Tasks = engine.DeleteTask(st.Tasks, id)
		removed = len(st.Tasks) < before
		return nil
	})
	if err != nil {
		return false, err
	}
	if removed {
		logger.Log.Info("Task deleted", zap.String("id", id))
	}
	return removed, nil
}

// Reschedule 推迟到明天，即从今天的列表中移除，与 Delete 一样幂等
func (s *TaskService) Reschedule(ctx context.Context, id string) (bool, error) {
	removed := false
	err := s.Store.Update(func(st *repository.State) error {
		before := len(st.Tasks)
		st.Tasks = engine.RescheduleTask(st.Tasks, id)
		removed = len(st.Tasks) < before
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("reschedule task %s: %w", id, err)
	}
	if removed {
		logger.Log.Info("Task postponed to tomorrow", zap.String("id", id))
	}
	return removed, nil
}

func indexOfTask(tasks []model.TaskItem, id string) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
