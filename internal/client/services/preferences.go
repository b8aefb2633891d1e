// Package services contains the application services of the Ágora client:
// language preferences, diary composition, cycle tracking, the monthly pain
// record and the subscription purchase flow. Services sit between the CLI
// and the REST gateway and hold whatever small amount of logic does not
// belong to either.
package services

import (
	"context"
	"fmt"

	"github.com/agoramujeres/agora-client/internal/client/i18n"
	"github.com/agoramujeres/agora-client/internal/client/repositories/metadata"
	"github.com/agoramujeres/agora-client/internal/client/session"
	"github.com/agoramujeres/agora-client/internal/common"
)

// PreferenceService persists the user's display language across runs.
//
// Contract:
//   - Load: resolve the stored language, or fall back to the configured
//     default and finally the system locale. Never fails; always returns a
//     supported code.
//   - SetLanguage: validate, persist and apply the new language.
type PreferenceService interface {
	Load(ctx context.Context, configured string) string
	SetLanguage(ctx context.Context, code string) error
}

type preferenceService struct {
	repo metadata.Repository
	sess *session.Container
}

func NewPreferenceService(repo metadata.Repository, sess *session.Container) PreferenceService {
	return &preferenceService{repo: repo, sess: sess}
}

// Load resolves the language in order: stored preference, configured
// default, system locale. Unrecognized stored values are ignored rather
// than surfaced; the preference store is advisory.
func (s *preferenceService) Load(ctx context.Context, configured string) string {
	if raw, err := s.repo.Get(ctx, common.LanguageKey); err == nil && raw != nil {
		if lang, err := i18n.Normalize(string(raw)); err == nil {
			return lang
		}
	}
	if configured != "" {
		if lang, err := i18n.Normalize(configured); err == nil {
			return lang
		}
	}
	return i18n.SystemDefault()
}

// SetLanguage validates the code, stores it and updates the session so the
// change takes effect immediately.
func (s *preferenceService) SetLanguage(ctx context.Context, code string) error {
	lang, err := i18n.Normalize(code)
	if err != nil {
		return err
	}
	if err := s.repo.Set(ctx, common.LanguageKey, []byte(lang)); err != nil {
		return fmt.Errorf("saving language: %w", err)
	}
	s.sess.SetLanguage(lang)
	return nil
}
