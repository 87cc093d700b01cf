package workout

import (
	"context"

	"github.com/claude/liftlog/internal/models"
)

// CreateExercise validates and stores a new exercise with an empty
// record frontier, then adds its name to the exercise index.
func (s *Service) CreateExercise(ctx context.Context, p models.ExercisePayload) (*models.Exercise, error) {
	ex, err := normalizeExercise(p)
	if err != nil {
		return nil, err
	}
	if _, ok, err := s.store.Get(ctx, exerciseKey(ex.Name)); err != nil {
		return nil, Errf(CodeInternal, "read %s: %v", exerciseKey(ex.Name), err)
	} else if ok {
		return nil, Errf(CodeExerciseExists, "exercise %q already exists", ex.Name)
	}

	if err := s.saveJSON(ctx, exerciseKey(ex.Name), ex); err != nil {
		return nil, err
	}
	names, err := s.loadNameIndex(ctx, exerciseIndex)
	if err != nil {
		return nil, err
	}
	names, _ = insertUnique(names, ex.Name)
	if err := s.saveJSON(ctx, exerciseIndex, names); err != nil {
		return nil, err
	}

	s.log.Info("exercise created", "name", ex.Name)
	return &ex, nil
}

// ListExercises returns every exercise named by the exercise index.
// Index entries whose primary record is missing are skipped.
func (s *Service) ListExercises(ctx context.Context) ([]models.Exercise, error) {
	names, err := s.loadNameIndex(ctx, exerciseIndex)
	if err != nil {
		return nil, err
	}
	exercises := make([]models.Exercise, 0, len(names))
	for _, name := range names {
		var ex models.Exercise
		ok, err := s.loadJSON(ctx, exerciseKey(name), &ex)
		if err != nil {
			return nil, err
		}
		if !ok {
			s.log.Warn("exercise index entry has no record", "name", name)
			continue
		}
		exercises = append(exercises, ex)
	}
	return exercises, nil
}

// DeleteExercise removes an exercise and its index entry. Deletion is
// refused while any template block still references the exercise, and
// a refused deletion modifies nothing.
func (s *Service) DeleteExercise(ctx context.Context, name string) error {
	if _, ok, err := s.store.Get(ctx, exerciseKey(name)); err != nil {
		return Errf(CodeInternal, "read %s: %v", exerciseKey(name), err)
	} else if !ok {
		return Errf(CodeExerciseNotFound, "exercise %q does not exist", name)
	}

	templates, err := s.loadNameIndex(ctx, templateIndex)
	if err != nil {
		return err
	}
	for _, tplName := range templates {
		var tpl models.WorkoutTemplate
		ok, err := s.loadJSON(ctx, templateKey(tplName), &tpl)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		for _, blk := range tpl.ExerciseBlocks {
			if blk.ExerciseName == name {
				return Errf(CodeExerciseInUse, "exercise %q is referenced by template %q", name, tplName)
			}
		}
	}

	if err := s.store.Delete(ctx, exerciseKey(name)); err != nil {
		return Errf(CodeInternal, "delete %s: %v", exerciseKey(name), err)
	}
	names, err := s.loadNameIndex(ctx, exerciseIndex)
	if err != nil {
		return err
	}
	if err := s.saveJSON(ctx, exerciseIndex, removeByValue(names, name)); err != nil {
		return err
	}

	s.log.Info("exercise deleted", "name", name)
	return nil
}

// GetRecords returns the exercise with its stored record frontier.
func (s *Service) GetRecords(ctx context.Context, name string) (*models.Exercise, error) {
	var ex models.Exercise
	ok, err := s.loadJSON(ctx, exerciseKey(name), &ex)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, Errf(CodeExerciseNotFound, "exercise %q does not exist", name)
	}
	return &ex, nil
}

// PutRecords replaces the exercise's frontier verbatim with the
// supplied records. No dominance pruning happens here: this is the
// escape hatch for correcting bad derived state, and what is put is
// exactly what a later GetRecords returns.
func (s *Service) PutRecords(ctx context.Context, name string, p models.RecordsPayload) (*models.Exercise, error) {
	records, err := normalizeRecords(p)
	if err != nil {
		return nil, err
	}
	var ex models.Exercise
	ok, err := s.loadJSON(ctx, exerciseKey(name), &ex)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, Errf(CodeExerciseNotFound, "exercise %q does not exist", name)
	}

	ex.Records = records
	if err := s.saveJSON(ctx, exerciseKey(name), ex); err != nil {
		return nil, err
	}
	s.log.Info("records overwritten", "exercise", name, "count", len(records))
	return &ex, nil
}
