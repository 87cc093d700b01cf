// Package importer turns Alpha Progression CSV exports into exercises,
// workout templates, and registered sessions. It can write through a
// local workout.Service or, via Client, POST the raw export to a
// remote server's import endpoint.
package importer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"github.com/claude/liftlog/internal/ingest/alpha"
	"github.com/claude/liftlog/internal/models"
	"github.com/claude/liftlog/internal/workout"
)

// Stats tracks what an import run did (or, in dry-run mode, would do).
type Stats struct {
	SessionsParsed     int  `json:"sessions_parsed"`
	SessionsRegistered int  `json:"sessions_registered"`
	SessionsSkipped    int  `json:"sessions_skipped"`
	ExercisesCreated   int  `json:"exercises_created"`
	TemplatesCreated   int  `json:"templates_created"`
	SetsImported       int  `json:"sets_imported"`
	DryRun             bool `json:"dry_run"`
}

// Importer feeds parsed sessions through the workout service.
type Importer struct {
	svc    *workout.Service
	log    *slog.Logger
	dryRun bool
	stats  Stats
}

// New creates an Importer. With dryRun set, Import reports counts
// without writing anything.
func New(svc *workout.Service, log *slog.Logger, dryRun bool) *Importer {
	return &Importer{svc: svc, log: log, dryRun: dryRun}
}

// Import parses an Alpha Progression CSV export and registers its
// sessions oldest-first, creating any exercises and templates they
// reference. A session whose template already has a session on the
// same date is skipped, so re-importing an overlapping export is safe.
func (imp *Importer) Import(ctx context.Context, r io.Reader) (*Stats, error) {
	imp.stats = Stats{DryRun: imp.dryRun}

	sessions, err := alpha.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing export: %w", err)
	}
	imp.stats.SessionsParsed = len(sessions)

	// Oldest first, so personal records fold in the order they were set.
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].Start.Before(sessions[j].Start)
	})

	exercises, err := imp.knownExercises(ctx)
	if err != nil {
		return nil, err
	}
	templates, err := imp.knownTemplates(ctx)
	if err != nil {
		return nil, err
	}
	dates := make(map[string]map[string]bool)

	for _, s := range sessions {
		if err := imp.importSession(ctx, s, exercises, templates, dates); err != nil {
			return &imp.stats, err
		}
	}

	imp.log.Info("import complete",
		"sessions_parsed", imp.stats.SessionsParsed,
		"sessions_registered", imp.stats.SessionsRegistered,
		"sessions_skipped", imp.stats.SessionsSkipped,
		"exercises_created", imp.stats.ExercisesCreated,
		"templates_created", imp.stats.TemplatesCreated,
		"sets_imported", imp.stats.SetsImported,
		"dry_run", imp.dryRun)
	return &imp.stats, nil
}

func (imp *Importer) importSession(ctx context.Context, s alpha.Session, exercises, templates map[string]bool, dates map[string]map[string]bool) error {
	templateName := templateNameFor(s.Routine)
	date := s.Start.Format("2006-01-02")

	seen, ok := dates[templateName]
	if !ok {
		var err error
		seen, err = imp.registeredDates(ctx, templateName)
		if err != nil {
			return err
		}
		dates[templateName] = seen
	}
	if seen[date] {
		imp.log.Info("session already registered, skipping", "template", templateName, "date", date)
		imp.stats.SessionsSkipped++
		return nil
	}

	// Exercises first: template blocks and session blocks may only
	// reference names that exist.
	for _, ex := range s.Exercises {
		name := slugify(ex.Name)
		if exercises[name] {
			continue
		}
		if !imp.dryRun {
			payload := models.ExercisePayload{Name: name, DisplayName: ex.Name}
			if _, err := imp.svc.CreateExercise(ctx, payload); err != nil {
				return fmt.Errorf("creating exercise %s: %w", name, err)
			}
		}
		exercises[name] = true
		imp.stats.ExercisesCreated++
	}

	// First occurrence of a routine fixes the template's block layout.
	if !templates[templateName] {
		if !imp.dryRun {
			if _, err := imp.svc.CreateTemplate(ctx, templatePayload(templateName, s)); err != nil {
				return fmt.Errorf("creating template %s: %w", templateName, err)
			}
		}
		templates[templateName] = true
		imp.stats.TemplatesCreated++
	}

	payload := sessionPayload(templateName, date, s)
	if !imp.dryRun {
		if _, err := imp.svc.RegisterSession(ctx, payload); err != nil {
			return fmt.Errorf("registering session %s on %s: %w", templateName, date, err)
		}
	}
	seen[date] = true
	imp.stats.SessionsRegistered++
	for _, blk := range payload.ExerciseBlocks {
		imp.stats.SetsImported += len(blk.Sets)
	}
	return nil
}

// knownExercises returns the names already in the store so repeated
// imports do not recount them.
func (imp *Importer) knownExercises(ctx context.Context) (map[string]bool, error) {
	list, err := imp.svc.ListExercises(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing exercises: %w", err)
	}
	known := make(map[string]bool, len(list))
	for _, ex := range list {
		known[ex.Name] = true
	}
	return known, nil
}

func (imp *Importer) knownTemplates(ctx context.Context) (map[string]bool, error) {
	list, err := imp.svc.ListTemplates(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}
	known := make(map[string]bool, len(list))
	for _, name := range list {
		known[name] = true
	}
	return known, nil
}

// registeredDates returns the dates that already carry a session for
// the template. A template that does not exist yet has none.
func (imp *Importer) registeredDates(ctx context.Context, templateName string) (map[string]bool, error) {
	page, err := imp.svc.ListTemplateSessions(ctx, templateName, workout.MaxPageLimit, 0)
	if err != nil {
		if workout.CodeOf(err) == workout.CodeTemplateNotFound {
			return map[string]bool{}, nil
		}
		return nil, fmt.Errorf("listing sessions for %s: %w", templateName, err)
	}
	seen := make(map[string]bool, len(page.Sessions))
	for _, sess := range page.Sessions {
		seen[sess.Date] = true
	}
	return seen, nil
}

// templatePayload derives a template from a session: one block per
// exercise, sized by its working sets, with the export's rep target as
// both ends of the rep range and the equipment kept as a note.
func templatePayload(name string, s alpha.Session) models.TemplatePayload {
	blocks := make([]models.TemplateBlockPayload, 0, len(s.Exercises))
	for _, ex := range s.Exercises {
		working := 0
		for _, st := range ex.Sets {
			if !st.WarmUp {
				working++
			}
		}
		if working == 0 {
			working = 1
		}
		blocks = append(blocks, models.TemplateBlockPayload{
			ExerciseName: slugify(ex.Name),
			Sets:         working,
			MinReps:      ex.TargetReps,
			MaxReps:      ex.TargetReps,
			Notes:        ex.Equipment,
		})
	}
	return models.TemplatePayload{Name: name, ExerciseBlocks: blocks}
}

// sessionPayload converts a parsed session. Warm-up sets are kept in
// the body with their flag set, so registration leaves them out of the
// personal-record fold.
func sessionPayload(templateName, date string, s alpha.Session) models.SessionPayload {
	blocks := make([]models.SessionBlockPayload, 0, len(s.Exercises))
	for _, ex := range s.Exercises {
		sets := make([]models.SessionSetPayload, 0, len(ex.Sets))
		for _, st := range ex.Sets {
			sets = append(sets, models.SessionSetPayload{
				Weight: st.WeightKg,
				Reps:   float64(st.Reps),
				WarmUp: st.WarmUp,
			})
		}
		blocks = append(blocks, models.SessionBlockPayload{
			ExerciseName: slugify(ex.Name),
			Sets:         sets,
			RPEReserve:   blockReserve(ex.Sets),
		})
	}
	return models.SessionPayload{
		TemplateName:   templateName,
		Date:           date,
		Notes:          fmt.Sprintf("Imported from Alpha Progression (%s)", s.Duration),
		ExerciseBlocks: blocks,
	}
}

// blockReserve is the lowest reps-in-reserve across the working sets,
// truncated to a whole number. Warm-ups do not count.
func blockReserve(sets []alpha.Set) int {
	lowest := -1.0
	for _, st := range sets {
		if st.WarmUp {
			continue
		}
		if lowest < 0 || st.RIR < lowest {
			lowest = st.RIR
		}
	}
	if lowest < 0 {
		return 0
	}
	return int(lowest)
}

var (
	nonAlnumRe = regexp.MustCompile(`[^a-z0-9]+`)
	weekPartRe = regexp.MustCompile(`(?i)^week \d+$`)
)

// slugify lowercases a display name and collapses everything that is
// not a letter or digit into single underscores.
func slugify(s string) string {
	s = nonAlnumRe.ReplaceAllString(strings.ToLower(s), "_")
	return strings.Trim(s, "_")
}

// templateNameFor derives a stable template name from a routine label.
// Alpha Progression stamps the training week into the session name
// ("Legs · Day 2 · Week 4 · PPL"), so the week segment is dropped to
// keep every week of the same routine on one template.
func templateNameFor(routine string) string {
	parts := strings.Split(routine, " · ")
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if weekPartRe.MatchString(strings.TrimSpace(p)) {
			continue
		}
		kept = append(kept, p)
	}
	return slugify(strings.Join(kept, " "))
}
