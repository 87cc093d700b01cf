package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("LiftLog", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("LiftLog workout data server. Query exercises with their personal-record frontiers, workout templates, and logged session history. Records are (weight, reps) pairs; the frontier keeps only non-dominated pairs."),
	)

	h := &handlers{ds: ds, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolListExercises, Handler: h.listExercises},
		server.ServerTool{Tool: toolGetExerciseRecords, Handler: h.getExerciseRecords},
		server.ServerTool{Tool: toolListTemplates, Handler: h.listTemplates},
		server.ServerTool{Tool: toolGetTemplate, Handler: h.getTemplate},
		server.ServerTool{Tool: toolListTemplateSessions, Handler: h.listTemplateSessions},
		server.ServerTool{Tool: toolGetLatestSession, Handler: h.getLatestSession},
		server.ServerTool{Tool: toolGetSession, Handler: h.getSession},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resPersonalRecords, Handler: h.personalRecords},
		server.ServerResource{Resource: resRecentSessions, Handler: h.recentSessions},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds  DataSource
	log *slog.Logger
}

// --- Resource definitions ---

var resPersonalRecords = mcp.NewResource(
	"liftlog://personal_records",
	"Personal Records",
	mcp.WithResourceDescription("Every exercise with its current personal-record frontier of (weight, reps) pairs"),
	mcp.WithMIMEType("application/json"),
)

var resRecentSessions = mcp.NewResource(
	"liftlog://recent_sessions",
	"Recent Sessions",
	mcp.WithResourceDescription("The most recent logged session of every workout template"),
	mcp.WithMIMEType("application/json"),
)
