package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	apperrors "meeze/backend/internal/errors"
	"meeze/backend/internal/model"
	"meeze/backend/internal/notify"
	"meeze/backend/internal/repository"
)

// TimerService runs the countdown timer lifecycle. Every mutation rewrites
// the whole persisted timer set. Notification scheduling is best-effort:
// a scheduler failure is logged and the timer keeps counting.
type TimerService struct {
	repo      *repository.TimerRepository
	scheduler notify.Scheduler

	Now func() time.Time
}

func NewTimerService(repo *repository.TimerRepository, scheduler notify.Scheduler) *TimerService {
	return &TimerService{
		repo:      repo,
		scheduler: scheduler,
		Now:       time.Now,
	}
}

func (s *TimerService) List(ctx context.Context) ([]model.Timer, *apperrors.APIError) {
	set, err := s.repo.Load(ctx)
	if err != nil {
		return nil, apperrors.Internal("failed to load timers")
	}
	return set.Timers, nil
}

func (s *TimerService) Create(ctx context.Context, name string, durationSeconds int) (*model.Timer, *apperrors.APIError) {
	if name == "" {
		return nil, apperrors.BadRequest("invalid_name", "timer name is required")
	}
	if durationSeconds <= 0 {
		return nil, apperrors.BadRequest("invalid_duration", "duration must be positive seconds")
	}

	set, err := s.repo.Load(ctx)
	if err != nil {
		return nil, apperrors.Internal("failed to load timers")
	}

	timer := model.Timer{
		ID:               uuid.NewString(),
		Name:             name,
		DurationSeconds:  durationSeconds,
		RemainingSeconds: durationSeconds,
	}
	set.Timers = append(set.Timers, timer)

	if err := s.repo.Save(ctx, set); err != nil {
		return nil, apperrors.Internal("failed to save timers")
	}
	return &timer, nil
}

// Start transitions an idle or paused timer to running, recording the
// wall-clock start and scheduling a completion alert for the remaining
// seconds. Starting a running timer is a no-op.
func (s *TimerService) Start(ctx context.Context, id string) (*model.Timer, *apperrors.APIError) {
	return s.mutate(ctx, id, func(t *model.Timer) {
		if t.IsRunning || t.RemainingSeconds == 0 {
			return
		}
		now := s.Now()
		t.IsRunning = true
		t.StartedAt = &now

		notifID, err := s.scheduler.Schedule(ctx, notify.Request{
			Title: "Timer finished",
			Body:  t.Name,
			Data:  map[string]string{"timerId": t.ID},
			After: time.Duration(t.RemainingSeconds) * time.Second,
		})
		if err != nil {
			log.Printf("timer %s: schedule notification: %v", t.ID, err)
			return
		}
		t.NotificationID = notifID
	})
}

// Pause transitions a running timer to paused, clearing the start stamp and
// cancelling any pending alert. Pausing a non-running timer is a no-op.
func (s *TimerService) Pause(ctx context.Context, id string) (*model.Timer, *apperrors.APIError) {
	return s.mutate(ctx, id, func(t *model.Timer) {
		if !t.IsRunning {
			return
		}
		t.IsRunning = false
		t.StartedAt = nil
		s.cancelNotification(ctx, t)
	})
}

// Reset restores a timer to its full duration from any state.
func (s *TimerService) Reset(ctx context.Context, id string) (*model.Timer, *apperrors.APIError) {
	return s.mutate(ctx, id, func(t *model.Timer) {
		t.IsRunning = false
		t.StartedAt = nil
		t.RemainingSeconds = t.DurationSeconds
		s.cancelNotification(ctx, t)
	})
}

func (s *TimerService) Delete(ctx context.Context, id string) *apperrors.APIError {
	set, err := s.repo.Load(ctx)
	if err != nil {
		return apperrors.Internal("failed to load timers")
	}

	found := false
	timers := set.Timers[:0]
	for _, t := range set.Timers {
		if t.ID == id {
			found = true
			s.cancelNotification(ctx, &t)
			continue
		}
		timers = append(timers, t)
	}
	if !found {
		return apperrors.NotFound("timer_not_found", "timer not found")
	}

	set.Timers = timers
	if err := s.repo.Save(ctx, set); err != nil {
		return apperrors.Internal("failed to save timers")
	}
	return nil
}

// Tick decrements every running timer by exactly one second, independent of
// wall-clock drift; Reconcile corrects any drift on resume. Timers reaching
// zero complete and fire their completion side effect.
func (s *TimerService) Tick(ctx context.Context) ([]model.Timer, *apperrors.APIError) {
	set, err := s.repo.Load(ctx)
	if err != nil {
		return nil, apperrors.Internal("failed to load timers")
	}

	changed := false
	for i := range set.Timers {
		t := &set.Timers[i]
		if !t.IsRunning {
			continue
		}
		t.RemainingSeconds--
		changed = true
		if t.RemainingSeconds <= 0 {
			s.complete(ctx, t)
		}
	}

	if changed {
		if err := s.repo.Save(ctx, set); err != nil {
			return nil, apperrors.Internal("failed to save timers")
		}
	}
	return set.Timers, nil
}

// Reconcile accounts for wall-clock time that passed while no tick loop was
// running (app backgrounded or process restarted). Each running timer loses
// the whole seconds elapsed since its start stamp, clamped at zero; still
// running timers get a fresh stamp so a second reconcile with no further
// elapsed time subtracts nothing.
func (s *TimerService) Reconcile(ctx context.Context) ([]model.Timer, *apperrors.APIError) {
	set, err := s.repo.Load(ctx)
	if err != nil {
		return nil, apperrors.Internal("failed to load timers")
	}

	now := s.Now()
	changed := false
	for i := range set.Timers {
		t := &set.Timers[i]
		if !t.IsRunning || t.StartedAt == nil {
			continue
		}
		elapsed := int(now.Sub(*t.StartedAt).Seconds())
		if elapsed <= 0 {
			continue
		}
		t.RemainingSeconds -= elapsed
		changed = true
		if t.RemainingSeconds <= 0 {
			s.complete(ctx, t)
		} else {
			stamp := now
			t.StartedAt = &stamp
		}
	}

	if changed {
		if err := s.repo.Save(ctx, set); err != nil {
			return nil, apperrors.Internal("failed to save timers")
		}
	}
	return set.Timers, nil
}

func (s *TimerService) mutate(ctx context.Context, id string, apply func(*model.Timer)) (*model.Timer, *apperrors.APIError) {
	set, err := s.repo.Load(ctx)
	if err != nil {
		return nil, apperrors.Internal("failed to load timers")
	}

	idx := -1
	for i := range set.Timers {
		if set.Timers[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, apperrors.NotFound("timer_not_found", "timer not found")
	}

	apply(&set.Timers[idx])

	if err := s.repo.Save(ctx, set); err != nil {
		return nil, apperrors.Internal("failed to save timers")
	}
	timer := set.Timers[idx]
	return &timer, nil
}

func (s *TimerService) complete(ctx context.Context, t *model.Timer) {
	t.RemainingSeconds = 0
	t.IsRunning = false
	t.StartedAt = nil
	s.cancelNotification(ctx, t)
	log.Printf("timer %s (%s) completed", t.ID, t.Name)
}

func (s *TimerService) cancelNotification(ctx context.Context, t *model.Timer) {
	if t.NotificationID == "" {
		return
	}
	if err := s.scheduler.Cancel(ctx, t.NotificationID); err != nil {
		log.Printf("timer %s: cancel notification: %v", t.ID, err)
	}
	t.NotificationID = ""
}
