package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	appErrors "github.com/qlhs-edu/dashboard-bff/pkg/errors"
	"github.com/qlhs-edu/dashboard-bff/pkg/i18n"
)

// LanguagePreference is the stored display-language choice.
type LanguagePreference struct {
	Locale i18n.Locale `json:"locale"`
}

// PreferenceService persists per-teacher display preferences. The language
// survives sessions, so it is stored without expiry.
type PreferenceService struct {
	repo          CacheRepository
	defaultLocale i18n.Locale
	logger        *zap.Logger
}

// NewPreferenceService constructs a PreferenceService.
func NewPreferenceService(repo CacheRepository, defaultLocale string, logger *zap.Logger) *PreferenceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PreferenceService{
		repo:          repo,
		defaultLocale: i18n.Normalize(defaultLocale),
		logger:        logger,
	}
}

func languageKey(teacherID string) string {
	return fmt.Sprintf("preferences:%s:language", teacherID)
}

// Language returns the teacher's stored locale, falling back to the default.
func (s *PreferenceService) Language(ctx context.Context, teacherID string) i18n.Locale {
	if s.repo == nil || teacherID == "" {
		return s.defaultLocale
	}
	var pref LanguagePreference
	if err := s.repo.Get(ctx, languageKey(teacherID), &pref); err != nil {
		if !errors.Is(err, appErrors.ErrCacheMiss) {
			s.logger.Warn("language preference read failed", zap.Error(err))
		}
		return s.defaultLocale
	}
	return i18n.Normalize(string(pref.Locale))
}

// SetLanguage stores the teacher's locale. Unknown codes collapse to the
// default, matching the read path.
func (s *PreferenceService) SetLanguage(ctx context.Context, teacherID, locale string) (i18n.Locale, error) {
	if teacherID == "" {
		return s.defaultLocale, appErrors.Clone(appErrors.ErrUnauthorized, "missing teacher identity")
	}
	normalized := i18n.Normalize(locale)
	if s.repo == nil {
		return normalized, nil
	}
	if err := s.repo.Set(ctx, languageKey(teacherID), LanguagePreference{Locale: normalized}, 0); err != nil {
		return normalized, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store language preference")
	}
	return normalized, nil
}
