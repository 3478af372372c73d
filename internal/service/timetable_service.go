package service

import (
	"context"
	"fmt"

	"studyquest_backend/internal/engine"
	"studyquest_backend/internal/model"
	"studyquest_backend/internal/repository"
	"studyquest_backend/pkg/logger"

	"go.uber.org/zap"
)

type TimetableService struct {
	Store         *repository.Store
	TimetableRepo *repository.TimetableRepository
}

func NewTimetableService(store *repository.Store, timetableRepo *repository.TimetableRepository) *TimetableService {
	return &TimetableService{Store: store, TimetableRepo: timetableRepo}
}

func (s *TimetableService) Get() model.TimeTable {
	return s.TimetableRepo.Get()
}

// UpdateSlot 覆盖一节课，period 从 0 开始
func (s *TimetableService) UpdateSlot(ctx context.Context, day model.Weekday, period int, subject string) (model.TimeTable, error) {
	var updated model.TimeTable
	err := s.Store.Update(func(st *repository.State) error {
		tt, err := engine.UpdateTimetableSlot(st.TimeTable, day, period, subject)
		if err != nil {
			return err
		}
		st.TimeTable = tt
		updated = tt.Clone()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("update %s period %d: %w", day, period, err)
	}
	logger.Log.Debug("Timetable slot updated",
		zap.String("day", string(day)),
		zap.Int("period", period),
		zap.String("subject", subject),
	)
	return updated, nil
}
