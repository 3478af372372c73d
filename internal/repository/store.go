package repository

import (
	"sync"

	"studyquest_backend/internal/model"
)

// State 进程内保存的全部可变状态
type State struct {
	Profile   model.UserProfile
	Tasks     []model.TaskItem
	TimeTable model.TimeTable
	Sessions  []model.StudySession
}

func (s State) clone() State {
	c := State{
		Profile:   s.Profile.Clone(),
		Tasks:     append(make([]model.TaskItem, 0, len(s.Tasks)), s.Tasks...),
		TimeTable: s.TimeTable.Clone(),
		Sessions:  append(make([]model.StudySession, 0, len(s.Sessions)), s.Sessions...),
	}
	return c
}

// Store 单一持有者，所有读改写在同一把锁内完成
type Store struct {
	mu    sync.Mutex
	state State
}

func NewStore(seed State) *Store {
	return &Store{state: seed.clone()}
}

// Update 在副本上执行 fn，fn 返回 nil 时整体替换当前状态，否则丢弃修改
func (s *Store) Update(fn func(*State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft := s.state.clone()
	if err := fn(&draft); err != nil {
		return err
	}
	s.state = draft
	return nil
}

// Snapshot 返回当前状态的深拷贝
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}
