package service

import (
	"context"
	"fmt"
	"strings"
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

type ProgressionService struct {
	Store    *repository.Store
	UserRepo *repository.UserRepository
	Hub      *NotificationHub
	now      func() time.Time
}

func NewProgressionService(store *repository.Store, userRepo *repository.UserRepository, hub *NotificationHub) *ProgressionService {
	return &ProgressionService{
		Store:    store,
		UserRepo: userRepo,
		Hub:      hub,
		now:      time.Now,
	}
}

// SessionOutcome 一次学习会话结算后的结果
type SessionOutcome struct {
	Profile model.UserProfile    `json:"profile"`
	Result  engine.SessionResult `json:"result"`
	Session model.StudySession   `json:"session"`
}

func (s *ProgressionService) GetProfile() model.UserProfile {
	return s.UserRepo.GetProfile()
}

// FinishSession 结算学习时长，source 为 manual/stopwatch/pomodoro
func (s *ProgressionService) FinishSession(ctx context.Context, minutes int, subject, source string) (*SessionOutcome, error) {
	if minutes < 1 {
		return nil, util.ErrSessionTooShort
	}
	subject = strings.TrimSpace(subject)

	_, span := tracing.Tracer().Start(ctx, "ProgressionService.FinishSession")
	defer span.End()
	span.SetAttributes(
		attribute.Int("study.minutes", minutes),
		attribute.String("study.subject", subject),
		attribute.String("study.source", source),
	)

	var outcome SessionOutcome
	err := s.Store.Update(func(st *repository.State) error {
		profile, result := engine.ApplyStudySession(st.Profile, minutes, subject)
		session := model.StudySession{
			ID:         uuid.NewString(),
			Subject:    subject,
			Minutes:    minutes,
			XPGained:   result.XPGained,
			Source:     source,
			FinishedAt: s.now(),
		}
		st.Profile = profile
		st.Sessions = append(st.Sessions, session)

		outcome = SessionOutcome{Profile: profile.Clone(), Result: result, Session: session}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("finish session: %w", err)
	}

	monitoring.StudyMinutes.WithLabelValues(subject, source).Add(float64(minutes))
	monitoring.ProfileLevel.Set(float64(outcome.Profile.Level))

	logger.Log.Info("Study session finished",
		zap.String("subject", subject),
		zap.String("source", source),
		zap.Int("minutes", minutes),
		zap.Int("level", outcome.Profile.Level),
		zap.Int("totalStudyTime", outcome.Profile.TotalStudyTime),
		zap.String("finishedAt", outcome.Session.FinishedAt.Format(util.TimeFormat)),
	)

	s.publishSessionEvents(outcome)
	return &outcome, nil
}

func (s *ProgressionService) publishSessionEvents(o SessionOutcome) {
	if s.Hub == nil {
		return
	}
	s.Hub.Publish(model.EventXPGained, fmt.Sprintf("+%d XP", o.Result.XPGained), map[string]any{
		"xp":      o.Result.XPGained,
		"subject": o.Session.Subject,
		"minutes": o.Session.Minutes,
	})

	if o.Result.LevelsGained > 0 {
		monitoring.LevelUps.Add(float64(o.Result.LevelsGained))
		s.Hub.Publish(model.EventLevelUp, fmt.Sprintf("레벨 업! Lv.%d", o.Profile.Level), map[string]any{
			"level":         o.Profile.Level,
			"previousLevel": o.Result.PreviousLevel,
		})
	}

	if o.Result.Evolved {
		stage := o.Profile.CharacterStage
		monitoring.Evolutions.WithLabelValues(string(stage)).Inc()
		logger.Log.Info("Character evolved",
			zap.String("from", string(o.Result.PreviousStage)),
			zap.String("to", string(stage)),
		)
		s.Hub.Publish(model.EventStageEvolved, fmt.Sprintf("%s %s(으)로 진화했습니다!", stage.Emoji(), stage.DisplayName()), map[string]any{
			"stage":         stage,
			"previousStage": o.Result.PreviousStage,
		})
	}
}
