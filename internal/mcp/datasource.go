package mcp

import (
	"context"

	"github.com/claude/liftlog/internal/models"
	"github.com/claude/liftlog/internal/workout"
)

// DataSource abstracts the data layer for MCP tools. Both
// *workout.Service (local store) and *HTTPClient (remote via REST API)
// satisfy this interface.
type DataSource interface {
	ListExercises(ctx context.Context) ([]models.Exercise, error)
	GetRecords(ctx context.Context, name string) (*models.Exercise, error)
	ListTemplates(ctx context.Context) ([]string, error)
	GetTemplate(ctx context.Context, name string) (*models.WorkoutTemplate, error)
	ListTemplateSessions(ctx context.Context, templateName string, limit, offset int) (*models.SessionPage, error)
	LatestForTemplate(ctx context.Context, templateName string) (*models.WorkoutSession, error)
	GetSession(ctx context.Context, id string) (*models.WorkoutSession, error)
}

// Compile-time check: *workout.Service satisfies DataSource.
var _ DataSource = (*workout.Service)(nil)
