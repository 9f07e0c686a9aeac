package session

import (
	"context"

	"go.uber.org/zap"

	"github.com/expokit/standplan/internal/enrich"
)

// Notice texts shown after an enrichment run.
const (
	noticeSuggestionApplied = "AI suggestions applied successfully."
	noticeSuggestionFailed  = "AI generation failed."
)

// AILoading reports whether an enrichment request is in flight.
func (s *Session) AILoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.aiLoading
}

// GenerateSuggestion requests AI copy for the stand's draft and, on
// completion, merges the suggestion into the draft's description,
// pros, and cons. At most one request is in flight at a time; calls
// made while loading are ignored. The returned channel closes once
// the completion has been applied or discarded.
//
// Each request carries a generation token. Editing the draft's
// identity fields or navigating away bumps the generation, so a
// completion for a superseded request is discarded instead of
// clobbering newer state.
func (s *Session) GenerateSuggestion(ctx context.Context, standID string) <-chan struct{} {
	done := make(chan struct{})

	s.mu.Lock()
	if s.aiLoading {
		s.mu.Unlock()
		s.log.Debug("suggestion request ignored: already loading", zap.String("stand_id", standID))
		close(done)
		return done
	}
	s.aiLoading = true
	s.generation++
	token := s.generation
	s.mu.Unlock()

	draft := s.editor.Draft(standID)
	input := enrich.Input{
		CompanyName:        draft.CompanyName,
		ProductRef:         draft.ProductRef,
		CurrentDescription: draft.Description,
	}

	go func() {
		defer close(done)
		suggestion, err := s.enricher.Generate(ctx, input)
		s.applySuggestion(standID, token, suggestion, err)
	}()
	return done
}

// UpdateDraftCompanyName writes the draft's company name and
// invalidates any pending enrichment, since the suggestion was built
// for the old identity.
func (s *Session) UpdateDraftCompanyName(standID, name string) {
	s.editor.SetCompanyName(standID, name)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.invalidateGenerationLocked()
}

// UpdateDraftProductRef writes the draft's product reference and
// invalidates any pending enrichment.
func (s *Session) UpdateDraftProductRef(standID, ref string) {
	s.editor.SetProductRef(standID, ref)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.invalidateGenerationLocked()
}

func (s *Session) applySuggestion(standID string, token uint64, suggestion *enrich.Suggestion, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token != s.generation {
		// A newer request or an invalidating edit superseded this
		// run; its aiLoading flag was already cleared.
		s.log.Debug("stale suggestion discarded",
			zap.String("stand_id", standID),
			zap.Uint64("token", token),
			zap.Uint64("generation", s.generation))
		return
	}
	s.aiLoading = false

	if err != nil {
		s.log.Debug("suggestion failed", zap.String("stand_id", standID), zap.Error(err))
		s.setNoticeLocked(noticeSuggestionFailed)
		return
	}

	s.editor.ApplySuggestion(standID, suggestion.Description, suggestion.Pros, suggestion.Cons)
	s.setNoticeLocked(noticeSuggestionApplied)
}

// invalidateGenerationLocked marks any in-flight enrichment stale.
// Callers hold s.mu.
func (s *Session) invalidateGenerationLocked() {
	if s.aiLoading {
		s.aiLoading = false
	}
	s.generation++
}
