package workout

import (
	"context"

	"github.com/claude/liftlog/internal/models"
)

// CreateTemplate validates a template against the known exercises and
// stores it, then adds its name to the template index. Templates are
// immutable once created; the only mutation is deletion.
func (s *Service) CreateTemplate(ctx context.Context, p models.TemplatePayload) (*models.WorkoutTemplate, error) {
	names, err := s.loadNameIndex(ctx, exerciseIndex)
	if err != nil {
		return nil, err
	}
	known := make(map[string]bool, len(names))
	for _, n := range names {
		known[n] = true
	}

	tpl, err := normalizeTemplate(p, known)
	if err != nil {
		return nil, err
	}
	if _, ok, err := s.store.Get(ctx, templateKey(tpl.Name)); err != nil {
		return nil, Errf(CodeInternal, "read %s: %v", templateKey(tpl.Name), err)
	} else if ok {
		return nil, Errf(CodeTemplateExists, "template %q already exists", tpl.Name)
	}

	if err := s.saveJSON(ctx, templateKey(tpl.Name), tpl); err != nil {
		return nil, err
	}
	tplNames, err := s.loadNameIndex(ctx, templateIndex)
	if err != nil {
		return nil, err
	}
	tplNames, _ = insertUnique(tplNames, tpl.Name)
	if err := s.saveJSON(ctx, templateIndex, tplNames); err != nil {
		return nil, err
	}

	s.log.Info("template created", "name", tpl.Name, "blocks", len(tpl.ExerciseBlocks))
	return &tpl, nil
}

// ListTemplates returns the template-name index.
func (s *Service) ListTemplates(ctx context.Context) ([]string, error) {
	names, err := s.loadNameIndex(ctx, templateIndex)
	if err != nil {
		return nil, err
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

// GetTemplate returns one template by name.
func (s *Service) GetTemplate(ctx context.Context, name string) (*models.WorkoutTemplate, error) {
	var tpl models.WorkoutTemplate
	ok, err := s.loadJSON(ctx, templateKey(name), &tpl)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, Errf(CodeTemplateNotFound, "template %q does not exist", name)
	}
	return &tpl, nil
}

// DeleteTemplate removes a template and its index entry. The template's
// session history and its session index stay: sessions outlive the
// template they were registered against.
func (s *Service) DeleteTemplate(ctx context.Context, name string) error {
	if _, ok, err := s.store.Get(ctx, templateKey(name)); err != nil {
		return Errf(CodeInternal, "read %s: %v", templateKey(name), err)
	} else if !ok {
		return Errf(CodeTemplateNotFound, "template %q does not exist", name)
	}

	if err := s.store.Delete(ctx, templateKey(name)); err != nil {
		return Errf(CodeInternal, "delete %s: %v", templateKey(name), err)
	}
	names, err := s.loadNameIndex(ctx, templateIndex)
	if err != nil {
		return err
	}
	if err := s.saveJSON(ctx, templateIndex, removeByValue(names, name)); err != nil {
		return err
	}

	s.log.Info("template deleted", "name", name)
	return nil
}
