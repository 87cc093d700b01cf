package mcp

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
)

// parsePageParam parses an optional numeric tool argument, falling back
// to def when the argument is absent.
func parsePageParam(s string, def int) (int, error) {
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer", s)
	}
	return n, nil
}

// --- Tool definitions ---

var toolListExercises = mcp.NewTool("list_exercises",
	mcp.WithDescription("List every exercise with its display name and personal-record frontier. Records are (weight, reps) pairs where no record is beaten by another on both axes."),
)

var toolGetExerciseRecords = mcp.NewTool("get_exercise_records",
	mcp.WithDescription("Get one exercise's personal-record frontier."),
	mcp.WithString("exercise", mcp.Required(), mcp.Description("Exercise name (e.g. bench_press)")),
)

var toolListTemplates = mcp.NewTool("list_templates",
	mcp.WithDescription("List the names of all workout templates."),
)

var toolGetTemplate = mcp.NewTool("get_template",
	mcp.WithDescription("Get a workout template: its ordered exercise blocks with set counts and rep ranges."),
	mcp.WithString("template", mcp.Required(), mcp.Description("Template name (e.g. push_day)")),
)

var toolListTemplateSessions = mcp.NewTool("list_template_sessions",
	mcp.WithDescription("Page through a template's logged sessions, most recent first. The response's total field is the full history length regardless of paging."),
	mcp.WithString("template", mcp.Required(), mcp.Description("Template name")),
	mcp.WithString("limit", mcp.Description("Sessions per page. Defaults to 10.")),
	mcp.WithString("offset", mcp.Description("Sessions to skip. Defaults to 0.")),
)

var toolGetLatestSession = mcp.NewTool("get_latest_session",
	mcp.WithDescription("Get the most recent logged session for a template."),
	mcp.WithString("template", mcp.Required(), mcp.Description("Template name")),
)

var toolGetSession = mcp.NewTool("get_session",
	mcp.WithDescription("Get a logged session by its id, including every set performed."),
	mcp.WithString("id", mcp.Required(), mcp.Description("Session id")),
)

// --- Tool handlers ---

func (h *handlers) listExercises(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exercises, err := h.ds.ListExercises(ctx)
	if err != nil {
		h.log.Error("mcp list_exercises", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(exercises)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getExerciseRecords(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("exercise")
	if err != nil {
		return mcp.NewToolResultError("exercise parameter is required"), nil
	}

	ex, err := h.ds.GetRecords(ctx, name)
	if err != nil {
		h.log.Error("mcp get_exercise_records", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(ex)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listTemplates(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	names, err := h.ds.ListTemplates(ctx)
	if err != nil {
		h.log.Error("mcp list_templates", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(names)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getTemplate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("template")
	if err != nil {
		return mcp.NewToolResultError("template parameter is required"), nil
	}

	tpl, err := h.ds.GetTemplate(ctx, name)
	if err != nil {
		h.log.Error("mcp get_template", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(tpl)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listTemplateSessions(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("template")
	if err != nil {
		return mcp.NewToolResultError("template parameter is required"), nil
	}

	limit, err := parsePageParam(req.GetString("limit", ""), 10)
	if err != nil {
		return mcp.NewToolResultError("invalid limit: " + err.Error()), nil
	}
	offset, err := parsePageParam(req.GetString("offset", ""), 0)
	if err != nil {
		return mcp.NewToolResultError("invalid offset: " + err.Error()), nil
	}

	page, err := h.ds.ListTemplateSessions(ctx, name, limit, offset)
	if err != nil {
		h.log.Error("mcp list_template_sessions", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(page)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getLatestSession(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("template")
	if err != nil {
		return mcp.NewToolResultError("template parameter is required"), nil
	}

	sess, err := h.ds.LatestForTemplate(ctx, name)
	if err != nil {
		h.log.Error("mcp get_latest_session", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(sess)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getSession(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id parameter is required"), nil
	}

	sess, err := h.ds.GetSession(ctx, id)
	if err != nil {
		h.log.Error("mcp get_session", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(sess)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
