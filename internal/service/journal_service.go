package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	apperrors "meeze/backend/internal/errors"
	"meeze/backend/internal/model"
	"meeze/backend/internal/repository"
	"meeze/backend/internal/timefmt"
)

// JournalService owns the append-only honesty log and task-log book.
type JournalService struct {
	journal *repository.JournalRepository

	Now func() time.Time
}

func NewJournalService(journal *repository.JournalRepository) *JournalService {
	return &JournalService{journal: journal, Now: time.Now}
}

func (s *JournalService) ListHonestyEntries(ctx context.Context) ([]model.HonestyEntry, *apperrors.APIError) {
	log, err := s.journal.LoadHonestyLog(ctx)
	if err != nil {
		return nil, apperrors.Internal("failed to load honesty log")
	}
	return log.Entries, nil
}

func (s *JournalService) AddHonestyEntry(ctx context.Context, date, text string, rating int) (*model.HonestyEntry, *apperrors.APIError) {
	if text == "" {
		return nil, apperrors.BadRequest("invalid_text", "entry text is required")
	}
	if rating < 0 || rating > 10 {
		return nil, apperrors.BadRequest("invalid_rating", "rating must be 0-10")
	}
	if date == "" {
		date = s.Now().Format(timefmt.DateLayout)
	} else if _, err := timefmt.ParseDate(date); err != nil {
		return nil, apperrors.BadRequest("invalid_date", "date must be YYYY-MM-DD")
	}

	log, err := s.journal.LoadHonestyLog(ctx)
	if err != nil {
		return nil, apperrors.Internal("failed to load honesty log")
	}

	entry := model.HonestyEntry{
		ID:        uuid.NewString(),
		Date:      date,
		Text:      text,
		Rating:    rating,
		CreatedAt: s.Now().UTC(),
	}
	log.Entries = append(log.Entries, entry)

	if err := s.journal.SaveHonestyLog(ctx, log); err != nil {
		return nil, apperrors.Internal("failed to save honesty log")
	}
	return &entry, nil
}

func (s *JournalService) ListTaskLogs(ctx context.Context) ([]model.TaskLog, *apperrors.APIError) {
	book, err := s.journal.LoadTaskLogs(ctx)
	if err != nil {
		return nil, apperrors.Internal("failed to load task logs")
	}
	return book.Logs, nil
}

func (s *JournalService) AddTaskLog(ctx context.Context, date, text, taskType string) (*model.TaskLog, *apperrors.APIError) {
	if text == "" {
		return nil, apperrors.BadRequest("invalid_text", "log text is required")
	}
	if date == "" {
		date = s.Now().Format(timefmt.DateLayout)
	} else if _, err := timefmt.ParseDate(date); err != nil {
		return nil, apperrors.BadRequest("invalid_date", "date must be YYYY-MM-DD")
	}

	book, err := s.journal.LoadTaskLogs(ctx)
	if err != nil {
		return nil, apperrors.Internal("failed to load task logs")
	}

	entry := model.TaskLog{
		ID:          uuid.NewString(),
		Date:        date,
		Text:        text,
		Type:        taskType,
		CompletedAt: s.Now().UTC(),
	}
	book.Logs = append(book.Logs, entry)

	if err := s.journal.SaveTaskLogs(ctx, book); err != nil {
		return nil, apperrors.Internal("failed to save task logs")
	}
	return &entry, nil
}

// CountsByDay aggregates completed-task counts per YYYY-MM-DD day.
func (s *JournalService) CountsByDay(ctx context.Context) (map[string]int, *apperrors.APIError) {
	book, err := s.journal.LoadTaskLogs(ctx)
	if err != nil {
		return nil, apperrors.Internal("failed to load task logs")
	}
	counts := make(map[string]int)
	for _, entry := range book.Logs {
		counts[entry.Date]++
	}
	return counts, nil
}
