package models

// Payload types are the loosely-typed request bodies accepted at the API
// boundary. Numeric rep fields arrive as float64 so that lossy values
// ("8.5 reps") can be detected and rejected during normalization instead
// of being truncated silently.

// ExercisePayload is the body of a createExercise request.
type ExercisePayload struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
}

// RecordPayload is one caller-supplied record in a putRecords request.
type RecordPayload struct {
	Weight float64 `json:"weight"`
	Reps   float64 `json:"reps"`
}

// RecordsPayload is the body of a putRecords request. The stored frontier
// is replaced verbatim with these records after structural validation.
type RecordsPayload struct {
	Records []RecordPayload `json:"records"`
}

// TemplateBlockPayload is one exercise block in a createTemplate request.
type TemplateBlockPayload struct {
	ExerciseName string `json:"exercise_name"`
	Sets         int    `json:"sets"`
	MinReps      int    `json:"min_reps"`
	MaxReps      int    `json:"max_reps"`
	Amrap        bool   `json:"amrap"`
	Notes        string `json:"notes"`
}

// TemplatePayload is the body of a createTemplate request.
type TemplatePayload struct {
	Name           string                 `json:"name"`
	ExerciseBlocks []TemplateBlockPayload `json:"exercise_blocks"`
}

// SessionSetPayload is one performed set in a registerSession request.
type SessionSetPayload struct {
	Weight float64 `json:"weight"`
	Reps   float64 `json:"reps"`
	WarmUp bool    `json:"warm_up"`
	Notes  string  `json:"notes"`
}

// SessionBlockPayload groups the sets for one exercise in a
// registerSession request.
type SessionBlockPayload struct {
	ExerciseName string              `json:"exercise_name"`
	Sets         []SessionSetPayload `json:"sets"`
	RPEReserve   int                 `json:"rpe_reserve"`
}

// SessionPayload is the body of a registerSession request.
type SessionPayload struct {
	TemplateName   string                `json:"template_name"`
	Date           string                `json:"date"`
	Notes          string                `json:"notes"`
	ExerciseBlocks []SessionBlockPayload `json:"exercise_blocks"`
}
