package workout

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/claude/liftlog/internal/models"
)

// normalizeExercise checks a createExercise payload and returns the
// canonical entity with an empty record frontier.
func normalizeExercise(p models.ExercisePayload) (models.Exercise, error) {
	name := strings.TrimSpace(p.Name)
	display := strings.TrimSpace(p.DisplayName)
	if name == "" {
		return models.Exercise{}, Errf(CodeBadRequest, "name must not be blank")
	}
	if display == "" {
		return models.Exercise{}, Errf(CodeBadRequest, "display_name must not be blank")
	}
	return models.Exercise{Name: name, DisplayName: display, Records: []models.Record{}}, nil
}

// normalizeRecords checks a putRecords payload. Structural checks only:
// the stored frontier is replaced verbatim, without dominance pruning,
// so bad derived state can be corrected by hand.
func normalizeRecords(p models.RecordsPayload) ([]models.Record, error) {
	records := make([]models.Record, 0, len(p.Records))
	for i, r := range p.Records {
		if !isFinite(r.Weight) {
			return nil, Errf(CodeBadRequest, "records[%d]: weight must be a finite number", i)
		}
		reps, err := coerceReps(r.Reps)
		if err != nil {
			return nil, Errf(CodeBadRequest, "records[%d]: %v", i, err)
		}
		records = append(records, models.Record{Weight: r.Weight, Reps: reps})
	}
	return records, nil
}

// normalizeTemplate checks a createTemplate payload against the set of
// known exercise names. Referential integrity is enforced here only;
// it is not re-checked after creation.
func normalizeTemplate(p models.TemplatePayload, known map[string]bool) (models.WorkoutTemplate, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return models.WorkoutTemplate{}, Errf(CodeBadRequest, "name must not be blank")
	}
	blocks := make([]models.ExerciseBlock, 0, len(p.ExerciseBlocks))
	for i, b := range p.ExerciseBlocks {
		blk, err := normalizeTemplateBlock(b, known)
		if err != nil {
			return models.WorkoutTemplate{}, Errf(CodeBadRequest, "exercise_blocks[%d]: %v", i, err)
		}
		blocks = append(blocks, blk)
	}
	return models.WorkoutTemplate{Name: name, ExerciseBlocks: blocks}, nil
}

func normalizeTemplateBlock(b models.TemplateBlockPayload, known map[string]bool) (models.ExerciseBlock, error) {
	name := strings.TrimSpace(b.ExerciseName)
	if name == "" {
		return models.ExerciseBlock{}, fmt.Errorf("exercise_name must not be blank")
	}
	if !known[name] {
		return models.ExerciseBlock{}, fmt.Errorf("unknown exercise %q", name)
	}
	if b.Sets < 1 {
		return models.ExerciseBlock{}, fmt.Errorf("sets must be at least 1")
	}
	if !b.Amrap && b.MinReps > b.MaxReps {
		return models.ExerciseBlock{}, fmt.Errorf("min_reps %d exceeds max_reps %d", b.MinReps, b.MaxReps)
	}
	return models.ExerciseBlock{
		ExerciseName: name,
		Sets:         b.Sets,
		MinReps:      b.MinReps,
		MaxReps:      b.MaxReps,
		Amrap:        b.Amrap,
		Notes:        b.Notes,
	}, nil
}

// normalizeSessionBlocks checks the logged blocks of a registerSession
// payload. Exercise names are not checked for existence: sessions may
// reference exercises created later or never, and the frontier update
// skips unknown ones.
func normalizeSessionBlocks(blocks []models.SessionBlockPayload) ([]models.LoggedBlock, error) {
	out := make([]models.LoggedBlock, 0, len(blocks))
	for i, b := range blocks {
		name := strings.TrimSpace(b.ExerciseName)
		if name == "" {
			return nil, Errf(CodeBadRequest, "exercise_blocks[%d]: exercise_name must not be blank", i)
		}
		sets := make([]models.LoggedSet, 0, len(b.Sets))
		for j, st := range b.Sets {
			if !isFinite(st.Weight) {
				return nil, Errf(CodeBadRequest, "exercise_blocks[%d].sets[%d]: weight must be a finite number", i, j)
			}
			reps, err := coerceReps(st.Reps)
			if err != nil {
				return nil, Errf(CodeBadRequest, "exercise_blocks[%d].sets[%d]: %v", i, j, err)
			}
			sets = append(sets, models.LoggedSet{Weight: st.Weight, Reps: reps, WarmUp: st.WarmUp, Notes: st.Notes})
		}
		out = append(out, models.LoggedBlock{ExerciseName: name, Sets: sets, RPEReserve: b.RPEReserve})
	}
	return out, nil
}

// normalizeDate checks a session date and returns it in canonical
// zero-padded YYYY-MM-DD form.
func normalizeDate(s string) (string, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return "", Errf(CodeInvalidDate, "date %q is not a valid YYYY-MM-DD date", s)
	}
	return t.Format("2006-01-02"), nil
}

// coerceReps converts a JSON number to a rep count, rejecting values
// that are not whole or are negative. Weight keeps full float precision;
// reps does not get silently truncated.
func coerceReps(v float64) (int, error) {
	if !isFinite(v) || v != math.Trunc(v) {
		return 0, fmt.Errorf("reps %v is not a whole number", v)
	}
	if v < 0 {
		return 0, fmt.Errorf("reps %v is negative", v)
	}
	return int(v), nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
