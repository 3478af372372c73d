package service

import (
	"context"
	"sync"
	"time"

	"studyquest_backend/internal/util"
	"studyquest_backend/pkg/logger"
	"studyquest_backend/pkg/monitoring"

	"go.uber.org/zap"
)

type TimerMode string

const (
	ModeStopwatch TimerMode = "stopwatch"
	ModePomodoro  TimerMode = "pomodoro"
)

func (m TimerMode) IsValid() bool {
	return m == ModeStopwatch || m == ModePomodoro
}

type PomodoroPhase string

const (
	PhaseWork  PomodoroPhase = "work"
	PhaseBreak PomodoroPhase = "break"
)

// TimerSubjects 计时器可选科目
var TimerSubjects = []string{"수학", "영어", "과학", "역사"}

// TimerState 计时器的当前状态，Seconds 在秒表模式下为已用时间，番茄钟模式下为剩余时间
type TimerState struct {
	Mode    TimerMode     `json:"mode"`
	Phase   PomodoroPhase `json:"phase"`
	Running bool          `json:"running"`
	Seconds int           `json:"seconds"`
	Subject string        `json:"subject"`
}

// SessionRecorder 计时结束时上报学习时长
type SessionRecorder interface {
	FinishSession(ctx context.Context, minutes int, subject, source string) (*SessionOutcome, error)
}

// Ticker 便于测试替换 time.Ticker
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type realTicker struct{ t *time.Ticker }

func (r realTicker) C() <-chan time.Time { return r.t.C }
func (r realTicker) Stop()               { r.t.Stop() }

func newSecondTicker() Ticker {
	return realTicker{t: time.NewTicker(time.Second)}
}

type TimerDurations struct {
	Work  time.Duration
	Break time.Duration
}

// FocusTimer 专注计时器，运行期间最多持有一个 goroutine
type FocusTimer struct {
	mu        sync.Mutex
	state     TimerState
	durations TimerDurations
	recorder  SessionRecorder
	newTicker func() Ticker

	cancel context.CancelFunc
	done   chan struct{}
}

func NewFocusTimer(recorder SessionRecorder, durations TimerDurations) *FocusTimer {
	return &FocusTimer{
		state: TimerState{
			Mode:    ModeStopwatch,
			Phase:   PhaseWork,
			Subject: TimerSubjects[0],
		},
		durations: durations,
		recorder:  recorder,
		newTicker: newSecondTicker,
	}
}

func (t *FocusTimer) workSeconds() int  { return int(t.durations.Work / time.Second) }
func (t *FocusTimer) breakSeconds() int { return int(t.durations.Break / time.Second) }

func (t *FocusTimer) State() TimerState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// SetDurations 配置热更新，只影响下一次装填的番茄钟。
// 尚未开始的番茄钟直接换成新的时长
func (t *FocusTimer) SetDurations(d TimerDurations) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fresh := t.freshLocked()
	t.durations = d
	if fresh && t.state.Mode == ModePomodoro {
		t.state.Seconds = t.workSeconds()
	}
}

// freshLocked 计时器停在一个全新的区间上，切换模式不会丢失时间
func (t *FocusTimer) freshLocked() bool {
	if t.state.Running {
		return false
	}
	if t.state.Mode == ModeStopwatch {
		return t.state.Seconds == 0
	}
	return t.state.Phase == PhaseWork && (t.state.Seconds == 0 || t.state.Seconds == t.workSeconds())
}

// SetMode 切换模式并重置时间。运行中或暂停时还有未结算的时间都不允许切换
func (t *FocusTimer) SetMode(mode TimerMode) (TimerState, error) {
	if !mode.IsValid() {
		return TimerState{}, util.ErrInvalidMode
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state.Running {
		return t.state, util.ErrTimerRunning
	}
	if !t.freshLocked() {
		return t.state, util.ErrTimerInProgress
	}
	t.state.Mode = mode
	t.state.Phase = PhaseWork
	t.state.Seconds = 0
	if mode == ModePomodoro {
		t.state.Seconds = t.workSeconds()
	}
	return t.state, nil
}

func (t *FocusTimer) SetSubject(subject string) (TimerState, error) {
	valid := false
	for _, s := range TimerSubjects {
		if s == subject {
			valid = true
			break
		}
	}
	if !valid {
		return TimerState{}, util.ErrInvalidSubject
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state.Running {
		return t.state, util.ErrTimerRunning
	}
	t.state.Subject = subject
	return t.state, nil
}

// Toggle 开始或暂停
func (t *FocusTimer) Toggle(ctx context.Context) TimerState {
	t.mu.Lock()
	if t.state.Running {
		t.state.Running = false
		cancel, done := t.detachLocked()
		state := t.state
		t.mu.Unlock()
		waitLoop(cancel, done)
		return state
	}

	if t.state.Mode == ModePomodoro && t.state.Seconds == 0 {
		t.state.Phase = PhaseWork
		t.state.Seconds = t.workSeconds()
	}
	t.state.Running = true
	prevCancel, prevDone := t.detachLocked()
	loopCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	done := make(chan struct{})
	t.cancel, t.done = cancel, done
	state := t.state
	t.mu.Unlock()

	// 上一轮循环可能已自行退出但还未回收
	waitLoop(prevCancel, prevDone)
	go t.loop(loopCtx, done)
	return state
}

// StopResult 停止时结算的分钟数，0 表示没有记录
type StopResult struct {
	State   TimerState      `json:"state"`
	Minutes int             `json:"minutes"`
	Outcome *SessionOutcome `json:"outcome,omitempty"`
}

// Stop 停止并重置。秒表模式满一分钟时按整分钟结算，番茄钟中途停止不结算
func (t *FocusTimer) Stop(ctx context.Context) (*StopResult, error) {
	t.mu.Lock()
	minutes := 0
	if t.state.Mode == ModeStopwatch && t.state.Seconds >= 60 {
		minutes = t.state.Seconds / 60
	}
	subject := t.state.Subject

	t.state.Running = false
	t.state.Phase = PhaseWork
	t.state.Seconds = 0
	if t.state.Mode == ModePomodoro {
		t.state.Seconds = t.workSeconds()
	}
	cancel, done := t.detachLocked()
	state := t.state
	t.mu.Unlock()

	waitLoop(cancel, done)

	res := &StopResult{State: state, Minutes: minutes}
	if minutes == 0 {
		return res, nil
	}
	outcome, err := t.recorder.FinishSession(ctx, minutes, subject, util.SourceStopwatch)
	if err != nil {
		return nil, err
	}
	res.Outcome = outcome
	return res, nil
}

// Tick 推进一秒，返回计时器是否仍在运行
func (t *FocusTimer) Tick(ctx context.Context) bool {
	t.mu.Lock()
	if !t.state.Running {
		t.mu.Unlock()
		return false
	}
	monitoring.TimerTicks.WithLabelValues(string(t.state.Mode)).Inc()

	if t.state.Mode == ModeStopwatch {
		t.state.Seconds++
		t.mu.Unlock()
		return true
	}

	if t.state.Seconds > 0 {
		t.state.Seconds--
		t.mu.Unlock()
		return true
	}

	// 倒数到 0 后的下一次 tick 切换阶段并停止
	finishedWork := t.state.Phase == PhaseWork
	minutes := t.workSeconds() / 60
	subject := t.state.Subject
	t.state.Running = false
	if finishedWork {
		t.state.Phase = PhaseBreak
		t.state.Seconds = t.breakSeconds()
	} else {
		t.state.Phase = PhaseWork
		t.state.Seconds = t.workSeconds()
	}
	t.mu.Unlock()

	if finishedWork && minutes > 0 {
		if _, err := t.recorder.FinishSession(ctx, minutes, subject, util.SourcePomodoro); err != nil {
			logger.Log.Error("Failed to record pomodoro session", zap.Error(err))
		}
	}
	return false
}

func (t *FocusTimer) loop(ctx context.Context, done chan struct{}) {
	defer close(done)
	ticker := t.newTicker()
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C():
			// 停止请求可能与本次 tick 同时到达
			if ctx.Err() != nil {
				return
			}
			if !t.Tick(ctx) {
				return
			}
		}
	}
}

// Close 停止计时循环，不结算
func (t *FocusTimer) Close() {
	t.mu.Lock()
	t.state.Running = false
	cancel, done := t.detachLocked()
	t.mu.Unlock()
	waitLoop(cancel, done)
}

func (t *FocusTimer) detachLocked() (context.CancelFunc, chan struct{}) {
	cancel, done := t.cancel, t.done
	t.cancel, t.done = nil, nil
	return cancel, done
}

func waitLoop(cancel context.CancelFunc, done chan struct{}) {
	if cancel == nil {
		return
	}
	cancel()
	<-done
}
