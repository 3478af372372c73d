package repository

import "studyquest_backend/internal/model"

type TimetableRepository struct {
	Store *Store
}

func NewTimetableRepository(store *Store) *TimetableRepository {
	return &TimetableRepository{Store: store}
}

func (r *TimetableRepository) Get() model.TimeTable {
	return r.Store.Snapshot().TimeTable
}
