package service

import (
	"context"

	"github.com/google/uuid"

	apperrors "meeze/backend/internal/errors"
	"meeze/backend/internal/model"
	"meeze/backend/internal/repository"
)

// RoutineService owns the per-context routine checklists.
type RoutineService struct {
	routines *repository.RoutineRepository
}

func NewRoutineService(routines *repository.RoutineRepository) *RoutineService {
	return &RoutineService{routines: routines}
}

func (s *RoutineService) List(ctx context.Context, routineContext string) ([]model.Routine, *apperrors.APIError) {
	if !model.IsValidContext(routineContext) {
		return nil, apperrors.BadRequest("invalid_context", "context must be work or home")
	}
	set, err := s.routines.Load(ctx, routineContext)
	if err != nil {
		return nil, apperrors.Internal("failed to load routines")
	}
	return set.Routines, nil
}

func (s *RoutineService) Create(ctx context.Context, routineContext, name string, items []string) (*model.Routine, *apperrors.APIError) {
	if !model.IsValidContext(routineContext) {
		return nil, apperrors.BadRequest("invalid_context", "context must be work or home")
	}
	if name == "" {
		return nil, apperrors.BadRequest("invalid_name", "routine name is required")
	}

	set, err := s.routines.Load(ctx, routineContext)
	if err != nil {
		return nil, apperrors.Internal("failed to load routines")
	}

	routine := model.Routine{
		ID:    uuid.NewString(),
		Name:  name,
		Items: make([]model.RoutineItem, 0, len(items)),
	}
	for _, text := range items {
		if text == "" {
			continue
		}
		routine.Items = append(routine.Items, model.RoutineItem{
			ID:   uuid.NewString(),
			Text: text,
		})
	}
	set.Routines = append(set.Routines, routine)

	if err := s.routines.Save(ctx, routineContext, set); err != nil {
		return nil, apperrors.Internal("failed to save routines")
	}
	return &routine, nil
}

// Update replaces one routine wholesale; the client sends the routine back
// with item completion toggles applied.
func (s *RoutineService) Update(ctx context.Context, routineContext string, routine model.Routine) (*model.Routine, *apperrors.APIError) {
	if routine.Name == "" {
		return nil, apperrors.BadRequest("invalid_name", "routine name is required")
	}

	set, err := s.routines.Load(ctx, routineContext)
	if err != nil {
		return nil, apperrors.Internal("failed to load routines")
	}

	idx := -1
	for i := range set.Routines {
		if set.Routines[i].ID == routine.ID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, apperrors.NotFound("routine_not_found", "routine not found")
	}
	if routine.Items == nil {
		routine.Items = []model.RoutineItem{}
	}
	set.Routines[idx] = routine

	if err := s.routines.Save(ctx, routineContext, set); err != nil {
		return nil, apperrors.Internal("failed to save routines")
	}
	return &routine, nil
}
