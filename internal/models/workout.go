package models

// Record is a single personal-best entry: a weight lifted for a number of
// reps. An exercise's records form the frontier of non-dominated pairs.
type Record struct {
	Weight float64 `json:"weight"`
	Reps   int     `json:"reps"`
}

// Exercise is a named movement with its personal-record frontier.
type Exercise struct {
	Name        string   `json:"name"`
	DisplayName string   `json:"display_name"`
	Records     []Record `json:"records"`
}

// ExerciseBlock is one planned slot in a workout template.
type ExerciseBlock struct {
	ExerciseName string `json:"exercise_name"`
	Sets         int    `json:"sets"`
	MinReps      int    `json:"min_reps"`
	MaxReps      int    `json:"max_reps"`
	Amrap        bool   `json:"amrap"`
	Notes        string `json:"notes,omitempty"`
}

// WorkoutTemplate is an ordered plan of exercise blocks. Templates are
// immutable after creation; the only mutation is deletion.
type WorkoutTemplate struct {
	Name           string          `json:"name"`
	ExerciseBlocks []ExerciseBlock `json:"exercise_blocks"`
}

// LoggedSet is one performed set within a session. Warm-up sets stay in
// the session body but are not personal-best candidates.
type LoggedSet struct {
	Weight float64 `json:"weight"`
	Reps   int     `json:"reps"`
	WarmUp bool    `json:"warm_up,omitempty"`
	Notes  string  `json:"notes,omitempty"`
}

// LoggedBlock groups the sets performed for one exercise in a session.
// RPEReserve is the reps held back from failure across the block.
type LoggedBlock struct {
	ExerciseName string      `json:"exercise_name"`
	Sets         []LoggedSet `json:"sets"`
	RPEReserve   int         `json:"rpe_reserve"`
}

// WorkoutSession is an append-only log entry for one performed workout.
// ID embeds the creation timestamp plus a random suffix; Date is a
// zero-padded YYYY-MM-DD string and CreatedAt an RFC 3339 UTC timestamp,
// so both sort correctly as plain strings.
type WorkoutSession struct {
	ID             string        `json:"id"`
	TemplateName   string        `json:"template_name"`
	Date           string        `json:"date"`
	CreatedAt      string        `json:"created_at"`
	Notes          string        `json:"notes,omitempty"`
	ExerciseBlocks []LoggedBlock `json:"exercise_blocks"`
}

// SessionPointer is one entry in a template's session index: just enough
// to locate and order the full session document.
type SessionPointer struct {
	SessionID string `json:"session_id"`
	Date      string `json:"date"`
	CreatedAt string `json:"created_at"`
}

// SessionPage is a paginated slice of a template's session history.
// Total always reflects the full index length, independent of Limit/Offset.
type SessionPage struct {
	TemplateName string           `json:"template_name"`
	Total        int              `json:"total"`
	Limit        int              `json:"limit"`
	Offset       int              `json:"offset"`
	Sessions     []WorkoutSession `json:"sessions"`
}
