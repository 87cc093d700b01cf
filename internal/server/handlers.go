package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/claude/liftlog/internal/importer"
	"github.com/claude/liftlog/internal/models"
	"github.com/claude/liftlog/internal/workout"
)

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCreateExercise(w http.ResponseWriter, r *http.Request) {
	var payload models.ExercisePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, string(workout.CodeBadRequest), "invalid JSON: "+err.Error())
		return
	}
	ex, err := s.svc.CreateExercise(r.Context(), payload)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, ex)
}

type exerciseSummary struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
}

func (s *Server) handleListExercises(w http.ResponseWriter, r *http.Request) {
	exercises, err := s.svc.ListExercises(r.Context())
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	summaries := make([]exerciseSummary, 0, len(exercises))
	for _, ex := range exercises {
		summaries = append(summaries, exerciseSummary{Name: ex.Name, DisplayName: ex.DisplayName})
	}
	writeJSON(w, http.StatusOK, map[string]any{"exercises": summaries})
}

func (s *Server) handleDeleteExercise(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.DeleteExercise(r.Context(), chi.URLParam(r, "name")); err != nil {
		s.writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetRecords(w http.ResponseWriter, r *http.Request) {
	ex, err := s.svc.GetRecords(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"exercise": ex.Name, "records": ex.Records})
}

func (s *Server) handlePutRecords(w http.ResponseWriter, r *http.Request) {
	var payload models.RecordsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, string(workout.CodeBadRequest), "invalid JSON: "+err.Error())
		return
	}
	ex, err := s.svc.PutRecords(r.Context(), chi.URLParam(r, "name"), payload)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"exercise": ex.Name, "records": ex.Records})
}

func (s *Server) handleCreateTemplate(w http.ResponseWriter, r *http.Request) {
	var payload models.TemplatePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, string(workout.CodeBadRequest), "invalid JSON: "+err.Error())
		return
	}
	tpl, err := s.svc.CreateTemplate(r.Context(), payload)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, tpl)
}

func (s *Server) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	names, err := s.svc.ListTemplates(r.Context())
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"templates": names})
}

func (s *Server) handleGetTemplate(w http.ResponseWriter, r *http.Request) {
	tpl, err := s.svc.GetTemplate(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tpl)
}

func (s *Server) handleDeleteTemplate(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.DeleteTemplate(r.Context(), chi.URLParam(r, "name")); err != nil {
		s.writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListTemplateSessions(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := parsePagination(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, string(workout.CodeBadRequest), err.Error())
		return
	}
	page, err := s.svc.ListTemplateSessions(r.Context(), chi.URLParam(r, "name"), limit, offset)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (s *Server) handleLatestSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.svc.LatestForTemplate(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

func (s *Server) handleRegisterSession(w http.ResponseWriter, r *http.Request) {
	var payload models.SessionPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, string(workout.CodeBadRequest), "invalid JSON: "+err.Error())
		return
	}
	sess, err := s.svc.RegisterSession(r.Context(), payload)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sess)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.svc.GetSession(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess)
}

func (s *Server) handleAlphaImport(w http.ResponseWriter, r *http.Request) {
	dryRun := r.URL.Query().Get("dry_run") == "true"
	imp := importer.New(s.svc, s.log, dryRun)
	stats, err := imp.Import(r.Context(), r.Body)
	if err != nil {
		s.log.Error("alpha import error", "error", err)
		writeError(w, http.StatusBadRequest, string(workout.CodeBadRequest), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorBody{Error: errorDetail{Code: code, Message: message}})
}

// writeServiceError maps a workout error code onto an HTTP status and
// renders the error envelope.
func (s *Server) writeServiceError(w http.ResponseWriter, err error) {
	code := workout.CodeOf(err)
	status := statusForCode(code)
	if status == http.StatusInternalServerError {
		s.log.Error("internal error", "error", err)
	}
	writeError(w, status, string(code), errorMessage(err))
}

func statusForCode(code workout.Code) int {
	switch code {
	case workout.CodeBadRequest, workout.CodeInvalidDate:
		return http.StatusBadRequest
	case workout.CodeExerciseNotFound, workout.CodeTemplateNotFound,
		workout.CodeSessionNotFound, workout.CodeNoSessions:
		return http.StatusNotFound
	case workout.CodeExerciseExists, workout.CodeTemplateExists, workout.CodeExerciseInUse:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// errorMessage strips the code prefix a workout.Error renders into its
// Error() string, keeping the envelope's message human-sized.
func errorMessage(err error) string {
	var we *workout.Error
	if errors.As(err, &we) {
		return we.Message
	}
	return err.Error()
}

func parsePagination(r *http.Request) (limit, offset int, err error) {
	limit = workout.DefaultPageLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err = strconv.Atoi(v)
		if err != nil {
			return 0, 0, fmt.Errorf("limit %q is not an integer", v)
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		offset, err = strconv.Atoi(v)
		if err != nil {
			return 0, 0, fmt.Errorf("offset %q is not an integer", v)
		}
	}
	return limit, offset, nil
}
