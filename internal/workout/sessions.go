package workout

import (
	"context"
	"strings"
	"time"

	"github.com/claude/liftlog/internal/models"
)

// RegisterSession runs the session write sequence: validate, persist
// the session, insert its index pointer, then fold each block's sets
// into the exercise frontiers. Failures before the first write abort
// with zero side effects. Failures after it leave the session durably
// persisted and surface INTERNAL_ERROR without rollback: the index or
// some frontiers may lag, and the session body is the source of truth
// for reconciliation.
func (s *Service) RegisterSession(ctx context.Context, p models.SessionPayload) (*models.WorkoutSession, error) {
	templateName := strings.TrimSpace(p.TemplateName)
	if templateName == "" {
		return nil, Errf(CodeBadRequest, "template_name must not be blank")
	}
	if _, ok, err := s.store.Get(ctx, templateKey(templateName)); err != nil {
		return nil, Errf(CodeInternal, "read %s: %v", templateKey(templateName), err)
	} else if !ok {
		return nil, Errf(CodeTemplateNotFound, "template %q does not exist", templateName)
	}

	date, err := normalizeDate(p.Date)
	if err != nil {
		return nil, err
	}
	blocks, err := normalizeSessionBlocks(p.ExerciseBlocks)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	session := models.WorkoutSession{
		ID:             s.newID(now),
		TemplateName:   templateName,
		Date:           date,
		CreatedAt:      now.Format(time.RFC3339),
		Notes:          p.Notes,
		ExerciseBlocks: blocks,
	}

	if err := s.saveJSON(ctx, sessionKey(session.ID), session); err != nil {
		return nil, err
	}

	ptrs, err := s.loadSessionIndex(ctx, templateName)
	if err != nil {
		return nil, err
	}
	ptrs = insertPointer(ptrs, models.SessionPointer{
		SessionID: session.ID,
		Date:      session.Date,
		CreatedAt: session.CreatedAt,
	})
	if err := s.saveJSON(ctx, sessionIndexKey(templateName), ptrs); err != nil {
		return nil, err
	}

	if err := s.updateFrontiers(ctx, blocks); err != nil {
		return nil, err
	}

	s.log.Info("session registered", "id", session.ID, "template", templateName, "date", session.Date)
	return &session, nil
}

// updateFrontiers folds every working set into its exercise's record
// frontier: one read and one write per exercise, not per set. Warm-up
// sets are skipped, as are blocks naming an exercise that does not
// exist (the session body already holds them).
func (s *Service) updateFrontiers(ctx context.Context, blocks []models.LoggedBlock) error {
	for _, blk := range blocks {
		var ex models.Exercise
		ok, err := s.loadJSON(ctx, exerciseKey(blk.ExerciseName), &ex)
		if err != nil {
			return err
		}
		if !ok {
			s.log.Warn("logged block names unknown exercise, frontier not updated", "exercise", blk.ExerciseName)
			continue
		}

		folded := false
		for _, set := range blk.Sets {
			if set.WarmUp {
				continue
			}
			ex.Records = mergeRecord(ex.Records, models.Record{Weight: set.Weight, Reps: set.Reps})
			folded = true
		}
		if !folded {
			continue
		}
		if err := s.saveJSON(ctx, exerciseKey(blk.ExerciseName), ex); err != nil {
			return err
		}
	}
	return nil
}

// ListTemplateSessions pages through a template's session history,
// newest first. Total always reflects the full index length regardless
// of limit and offset. History outlives template deletion:
// TEMPLATE_NOT_FOUND is returned only when the template is absent and
// no sessions were ever registered against it.
func (s *Service) ListTemplateSessions(ctx context.Context, templateName string, limit, offset int) (*models.SessionPage, error) {
	if limit < 0 {
		limit = 0
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	if offset < 0 {
		offset = 0
	}

	ptrs, err := s.loadSessionIndex(ctx, templateName)
	if err != nil {
		return nil, err
	}
	if len(ptrs) == 0 {
		if _, ok, err := s.store.Get(ctx, templateKey(templateName)); err != nil {
			return nil, Errf(CodeInternal, "read %s: %v", templateKey(templateName), err)
		} else if !ok {
			return nil, Errf(CodeTemplateNotFound, "template %q does not exist", templateName)
		}
	}

	page := &models.SessionPage{
		TemplateName: templateName,
		Total:        len(ptrs),
		Limit:        limit,
		Offset:       offset,
		Sessions:     []models.WorkoutSession{},
	}

	start := offset
	if start > len(ptrs) {
		start = len(ptrs)
	}
	end := start + limit
	if end > len(ptrs) {
		end = len(ptrs)
	}
	for _, ptr := range ptrs[start:end] {
		var sess models.WorkoutSession
		ok, err := s.loadJSON(ctx, sessionKey(ptr.SessionID), &sess)
		if err != nil {
			return nil, err
		}
		if !ok {
			s.log.Warn("session index points at missing session", "template", templateName, "id", ptr.SessionID)
			continue
		}
		page.Sessions = append(page.Sessions, sess)
	}
	return page, nil
}

// LatestForTemplate returns the most recently dated session registered
// against the template.
func (s *Service) LatestForTemplate(ctx context.Context, templateName string) (*models.WorkoutSession, error) {
	ptrs, err := s.loadSessionIndex(ctx, templateName)
	if err != nil {
		return nil, err
	}
	if len(ptrs) == 0 {
		return nil, Errf(CodeNoSessions, "no sessions registered for template %q", templateName)
	}

	var sess models.WorkoutSession
	ok, err := s.loadJSON(ctx, sessionKey(ptrs[0].SessionID), &sess)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, Errf(CodeInternal, "session index for %q points at missing session %s", templateName, ptrs[0].SessionID)
	}
	return &sess, nil
}

// GetSession returns one session by id.
func (s *Service) GetSession(ctx context.Context, id string) (*models.WorkoutSession, error) {
	var sess models.WorkoutSession
	ok, err := s.loadJSON(ctx, sessionKey(id), &sess)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, Errf(CodeSessionNotFound, "session %q does not exist", id)
	}
	return &sess, nil
}
