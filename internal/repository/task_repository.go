package repository

import "studyquest_backend/internal/model"

type TaskRepository struct {
	Store *Store
}

func NewTaskRepository(store *Store) *TaskRepository {
	return &TaskRepository{Store: store}
}

func (r *TaskRepository) FindAll() []model.TaskItem {
	return r.Store.Snapshot().Tasks
}

func (r *TaskRepository) FindByID(id string) (model.TaskItem, bool) {
	for _, t := range r.FindAll() {
		if t.ID == id {
			return t, true
		}
	}
	return model.TaskItem{}, false
}
