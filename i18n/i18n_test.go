package i18n

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_DottedKeyLookup(t *testing.T) {
	assert.Equal(t, "Secure Access", Resolve(LocaleEn, "passkeyModal.title", nil))
	assert.Equal(t, "Switch language", Resolve(LocaleEn, "languageToggle.ariaLabel", nil))
	assert.Equal(t, "English", Resolve(LocaleEn, "languageToggle.languageName.en", nil))
	assert.Equal(t, "Portfolio", Resolve(LocaleEn, "portfolio", nil))
}

func TestResolve_BothLocalesCarryTheSameKeys(t *testing.T) {
	en := Resolve(LocaleEn, "passkeyModal.errorMessage", nil)
	ar := Resolve(LocaleAr, "passkeyModal.errorMessage", nil)

	assert.NotEqual(t, "passkeyModal.errorMessage", en)
	assert.NotEqual(t, "passkeyModal.errorMessage", ar)
	assert.NotEqual(t, en, ar)
}

func TestResolve_MissingKeyEchoesTheKey(t *testing.T) {
	assert.Equal(t, "no.such.key", Resolve(LocaleEn, "no.such.key", nil))
	assert.Equal(t, "portfolio.deeper", Resolve(LocaleEn, "portfolio.deeper", nil),
		"descending into a leaf echoes the key")
	assert.Equal(t, "passkeyModal", Resolve(LocaleEn, "passkeyModal", nil),
		"a nested table is not a string and echoes the key")
}

func TestResolve_Interpolation(t *testing.T) {
	got := Resolve(LocaleEn, "projectAddedDescription", map[string]string{"title": "My Shop"})
	assert.Equal(t, "My Shop has been added to your portfolio.", got)
}

func TestResolve_MissingVarLeavesPlaceholder(t *testing.T) {
	got := Resolve(LocaleEn, "projectAddedDescription", nil)
	assert.Contains(t, got, "{{title}}")
}

func TestResolve_UnknownLocaleFallsBackToEnglish(t *testing.T) {
	assert.Equal(t, "Portfolio", Resolve(Locale("fr"), "portfolio", nil))
}

func TestParseLocale(t *testing.T) {
	assert.Equal(t, LocaleAr, ParseLocale("ar"))
	assert.Equal(t, LocaleAr, ParseLocale(" AR "))
	assert.Equal(t, LocaleEn, ParseLocale("en"))
	assert.Equal(t, DefaultLocale, ParseLocale(""))
	assert.Equal(t, DefaultLocale, ParseLocale("de"))
}

func TestDir(t *testing.T) {
	assert.Equal(t, "ltr", Dir(LocaleEn))
	assert.Equal(t, "rtl", Dir(LocaleAr))
}

func TestProvider_DefaultsToEnglish(t *testing.T) {
	provider := NewProvider(nil, zerolog.Nop())

	assert.Equal(t, LocaleEn, provider.Locale())
	assert.Equal(t, "ltr", provider.Dir())
}

func TestProvider_PersistsAcrossRestarts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locale")

	first := NewProvider(NewFileStorage(path), zerolog.Nop())
	first.SetLocale(LocaleAr)
	assert.Equal(t, LocaleAr, first.Locale())
	assert.Equal(t, "rtl", first.Dir())

	second := NewProvider(NewFileStorage(path), zerolog.Nop())
	assert.Equal(t, LocaleAr, second.Locale(), "persisted choice survives a restart")
}

func TestProvider_IgnoresCorruptPersistedLocale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "locale")
	require.NoError(t, os.WriteFile(path, []byte("klingon\n"), 0o644))

	provider := NewProvider(NewFileStorage(path), zerolog.Nop())
	assert.Equal(t, DefaultLocale, provider.Locale())
}

func TestProvider_PersistenceFailureStillSwitchesInMemory(t *testing.T) {
	// A directory path makes every write fail.
	provider := NewProvider(NewFileStorage(t.TempDir()), zerolog.Nop())

	provider.SetLocale(LocaleAr)
	assert.Equal(t, LocaleAr, provider.Locale())
}

func TestProvider_T(t *testing.T) {
	provider := NewProvider(nil, zerolog.Nop())
	assert.Equal(t, "Portfolio", provider.T("portfolio", nil))

	provider.SetLocale(LocaleAr)
	assert.NotEqual(t, "Portfolio", provider.T("portfolio", nil))
	assert.NotEqual(t, "portfolio", provider.T("portfolio", nil))
}
