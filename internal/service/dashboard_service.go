package service

import (
	"math"
	"sync/atomic"

	"studyquest_backend/internal/config"
	"studyquest_backend/internal/engine"
	"studyquest_backend/internal/model"
	"studyquest_backend/internal/repository"
)

type DashboardService struct {
	UserRepo    *repository.UserRepository
	TaskService *TaskService
	game        atomic.Pointer[config.GameConfig]
}

func NewDashboardService(userRepo *repository.UserRepository, taskService *TaskService, game config.GameConfig) *DashboardService {
	s := &DashboardService{
		UserRepo:    userRepo,
		TaskService: taskService,
	}
	s.game.Store(&game)
	return s
}

// UpdateGameConfig 配置热更新
func (s *DashboardService) UpdateGameConfig(game config.GameConfig) {
	s.game.Store(&game)
}

type DailyGoal struct {
	GoalMinutes      int `json:"goalMinutes"`
	TodayMinutes     int `json:"todayMinutes"`
	RemainingMinutes int `json:"remainingMinutes"`
	Percent          int `json:"percent"`
}

type DDay struct {
	Name     string `json:"name"`
	DaysLeft int    `json:"daysLeft"`
}

type Dashboard struct {
	Profile      model.UserProfile    `json:"profile"`
	XPPercent    float64              `json:"xpPercent"`
	TaskProgress TaskProgress         `json:"taskProgress"`
	Tasks        []model.TaskItem     `json:"tasks"`
	DailyGoal    DailyGoal            `json:"dailyGoal"`
	DDay         DDay                 `json:"dday"`
	Character    engine.StageProgress `json:"character"`
}

func (s *DashboardService) GetDashboard() *Dashboard {
	profile := s.UserRepo.GetProfile()
	game := s.game.Load()

	// 今日分钟数暂无按天统计，使用配置中的固定值
	goal := DailyGoal{
		GoalMinutes:      game.DailyGoalMinutes,
		TodayMinutes:     game.TodayMinutes,
		RemainingMinutes: max(0, game.DailyGoalMinutes-game.TodayMinutes),
	}
	if goal.GoalMinutes > 0 {
		goal.Percent = int(math.Round(float64(goal.TodayMinutes) / float64(goal.GoalMinutes) * 100))
	}

	return &Dashboard{
		Profile:      profile,
		XPPercent:    engine.XPPercent(profile),
		TaskProgress: s.TaskService.Progress(),
		Tasks:        s.TaskService.List(),
		DailyGoal:    goal,
		DDay:         DDay{Name: game.DDayName, DaysLeft: game.DDayDaysLeft},
		Character:    engine.NextStageInfo(profile),
	}
}
