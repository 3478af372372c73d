package service

import (
	"studyquest_backend/internal/model"
	"studyquest_backend/internal/repository"
)

const recentSessionLimit = 20

type StatisticsService struct {
	StatsRepo *repository.StatisticsRepository
}

func NewStatisticsService(statsRepo *repository.StatisticsRepository) *StatisticsService {
	return &StatisticsService{StatsRepo: statsRepo}
}

type Statistics struct {
	Weekly         []model.DailyStat    `json:"weekly"`
	WeeklyTotal    int                  `json:"weeklyTotal"`
	Subjects       []model.SubjectStat  `json:"subjects"`
	RecentSessions []model.StudySession `json:"recentSessions"`
}

func (s *StatisticsService) GetStatistics() *Statistics {
	weekly := s.StatsRepo.Weekly()
	total := 0
	for _, d := range weekly {
		total += d.Minutes
	}
	return &Statistics{
		Weekly:         weekly,
		WeeklyTotal:    total,
		Subjects:       s.StatsRepo.Subjects(),
		RecentSessions: s.StatsRepo.RecentSessions(recentSessionLimit),
	}
}
