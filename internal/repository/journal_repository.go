package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"meeze/backend/internal/kv"
	"meeze/backend/internal/model"
)

// JournalRepository persists the append-only honesty log and task-log book.
type JournalRepository struct {
	store *kv.Store
}

func NewJournalRepository(store *kv.Store) *JournalRepository {
	return &JournalRepository{store: store}
}

func (r *JournalRepository) LoadHonestyLog(ctx context.Context) (*model.HonestyLog, error) {
	raw, err := r.store.Get(ctx, kv.HonestyLogKey)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return &model.HonestyLog{Entries: []model.HonestyEntry{}}, nil
	}

	var log model.HonestyLog
	if err := json.Unmarshal(raw, &log); err != nil {
		return nil, fmt.Errorf("decode honesty log: %w", err)
	}
	if log.Entries == nil {
		log.Entries = []model.HonestyEntry{}
	}
	return &log, nil
}

func (r *JournalRepository) SaveHonestyLog(ctx context.Context, log *model.HonestyLog) error {
	return r.store.Set(ctx, kv.HonestyLogKey, log)
}

func (r *JournalRepository) LoadTaskLogs(ctx context.Context) (*model.TaskLogBook, error) {
	raw, err := r.store.Get(ctx, kv.TaskLogsKey)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return &model.TaskLogBook{Logs: []model.TaskLog{}}, nil
	}

	var book model.TaskLogBook
	if err := json.Unmarshal(raw, &book); err != nil {
		return nil, fmt.Errorf("decode task logs: %w", err)
	}
	if book.Logs == nil {
		book.Logs = []model.TaskLog{}
	}
	return &book, nil
}

func (r *JournalRepository) SaveTaskLogs(ctx context.Context, book *model.TaskLogBook) error {
	return r.store.Set(ctx, kv.TaskLogsKey, book)
}
