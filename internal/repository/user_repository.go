package repository

import "studyquest_backend/internal/model"

type UserRepository struct {
	Store *Store
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{Store: store}
}

func (r *UserRepository) GetProfile() model.UserProfile {
	return r.Store.Snapshot().Profile
}
