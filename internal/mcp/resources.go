package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/claude/liftlog/internal/models"
	"github.com/claude/liftlog/internal/workout"
)

func (h *handlers) personalRecords(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	exercises, err := h.ds.ListExercises(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(exercises)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func (h *handlers) recentSessions(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	names, err := h.ds.ListTemplates(ctx)
	if err != nil {
		return nil, err
	}

	sessions := make([]models.WorkoutSession, 0, len(names))
	for _, name := range names {
		sess, err := h.ds.LatestForTemplate(ctx, name)
		if err != nil {
			if workout.CodeOf(err) == workout.CodeNoSessions {
				continue
			}
			h.log.Warn("recent_sessions: latest lookup failed", "template", name, "error", err)
			continue
		}
		sessions = append(sessions, *sess)
	}

	data, err := json.Marshal(sessions)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
