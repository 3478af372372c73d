package repository

import "studyquest_backend/internal/model"

// StatisticsRepository 周统计和科目分布为静态数据，学习记录来自 Store
type StatisticsRepository struct {
	Store    *Store
	weekly   []model.DailyStat
	subjects []model.SubjectStat
}

func NewStatisticsRepository(store *Store, weekly []model.DailyStat, subjects []model.SubjectStat) *StatisticsRepository {
	return &StatisticsRepository{Store: store, weekly: weekly, subjects: subjects}
}

func (r *StatisticsRepository) Weekly() []model.DailyStat {
	return append([]model.DailyStat(nil), r.weekly...)
}

func (r *StatisticsRepository) Subjects() []model.SubjectStat {
	return append([]model.SubjectStat(nil), r.subjects...)
}

// RecentSessions 最近的学习记录，新的在前
func (r *StatisticsRepository) RecentSessions(limit int) []model.StudySession {
	sessions := r.Store.Snapshot().Sessions
	out := make([]model.StudySession, 0, len(sessions))
	for i := len(sessions) - 1; i >= 0; i-- {
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, sessions[i])
	}
	return out
}
