package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/qlhs-edu/dashboard-bff/pkg/errors"
	"github.com/qlhs-edu/dashboard-bff/pkg/i18n"
)

type memoryCacheRepo struct {
	values map[string][]byte
}

func newMemoryCacheRepo() *memoryCacheRepo {
	return &memoryCacheRepo{values: map[string][]byte{}}
}

func (m *memoryCacheRepo) Get(_ context.Context, key string, dest interface{}) error {
	raw, ok := m.values[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (m *memoryCacheRepo) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.values[key] = raw
	return nil
}

func (m *memoryCacheRepo) DeleteByPattern(context.Context, string) error {
	m.values = map[string][]byte{}
	return nil
}

func TestPreferenceLanguageDefault(t *testing.T) {
	svc := NewPreferenceService(newMemoryCacheRepo(), "vi", nil)

	assert.Equal(t, i18n.LocaleVI, svc.Language(context.Background(), "T01"))
}

func TestPreferenceLanguageRoundTrip(t *testing.T) {
	svc := NewPreferenceService(newMemoryCacheRepo(), "vi", nil)

	locale, err := svc.SetLanguage(context.Background(), "T01", "en")
	require.NoError(t, err)
	assert.Equal(t, i18n.LocaleEN, locale)

	assert.Equal(t, i18n.LocaleEN, svc.Language(context.Background(), "T01"))
	// Other teachers keep the default.
	assert.Equal(t, i18n.LocaleVI, svc.Language(context.Background(), "T02"))
}

func TestPreferenceLanguageUnknownCollapsesToDefault(t *testing.T) {
	svc := NewPreferenceService(newMemoryCacheRepo(), "vi", nil)

	locale, err := svc.SetLanguage(context.Background(), "T01", "fr")
	require.NoError(t, err)
	assert.Equal(t, i18n.LocaleVI, locale)
}

func TestPreferenceLanguageRequiresTeacher(t *testing.T) {
	svc := NewPreferenceService(newMemoryCacheRepo(), "vi", nil)

	_, err := svc.SetLanguage(context.Background(), "", "en")

	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)
}
