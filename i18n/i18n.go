// Package i18n resolves UI strings for the two supported locales and
// owns the process-wide locale setting. Unresolvable keys return the
// key itself verbatim; lookups never panic and never return empty.
package i18n

import (
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

type Locale string

const (
	LocaleEn Locale = "en"
	LocaleAr Locale = "ar"
)

// DefaultLocale applies when nothing is persisted and no request
// preference is given.
const DefaultLocale = LocaleEn

// Locales lists the supported locales.
var Locales = []Locale{LocaleEn, LocaleAr}

// LanguageNames maps each locale to its self-name.
var LanguageNames = map[Locale]string{
	LocaleEn: "English",
	LocaleAr: "العربية",
}

// ParseLocale returns the locale named by s, or DefaultLocale for
// anything unrecognized.
func ParseLocale(s string) Locale {
	switch Locale(strings.ToLower(strings.TrimSpace(s))) {
	case LocaleAr:
		return LocaleAr
	case LocaleEn:
		return LocaleEn
	default:
		return DefaultLocale
	}
}

// Dir returns the text directionality for a locale.
func Dir(locale Locale) string {
	if locale == LocaleAr {
		return "rtl"
	}
	return "ltr"
}

// Resolve looks up a dotted key in the given locale's table and
// interpolates {{name}} placeholders from vars. A missing key, or a
// key resolving to a nested table rather than a string, yields the key
// itself.
func Resolve(locale Locale, key string, vars map[string]string) string {
	table, ok := translations[locale]
	if !ok {
		table = translations[DefaultLocale]
	}

	var value any = table
	for _, part := range strings.Split(key, ".") {
		node, ok := value.(map[string]any)
		if !ok {
			return key
		}
		value = node[part]
	}

	result, ok := value.(string)
	if !ok {
		return key
	}

	for name, replacement := range vars {
		result = strings.ReplaceAll(result, "{{"+name+"}}", replacement)
	}
	return result
}

// Provider holds the process-wide locale, persisted across restarts.
// It is injected as a dependency rather than reached through a module
// global; mutation is a single discrete event (the user toggle), so a
// plain mutex covers the reads from every component.
type Provider struct {
	mu      sync.RWMutex
	locale  Locale
	storage Storage
	logger  zerolog.Logger
}

func NewProvider(storage Storage, logger zerolog.Logger) *Provider {
	p := &Provider{
		locale:  DefaultLocale,
		storage: storage,
		logger:  logger.With().Str("component", "i18n").Logger(),
	}

	if storage != nil {
		saved, err := storage.Load()
		if err != nil {
			p.logger.Warn().Err(err).Msg("could not load persisted locale")
		} else if saved != "" {
			p.locale = ParseLocale(saved)
		}
	}
	return p
}

// Locale returns the current process-wide locale.
func (p *Provider) Locale() Locale {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.locale
}

// Dir returns the directionality of the current locale.
func (p *Provider) Dir() string {
	return Dir(p.Locale())
}

// SetLocale switches the locale and persists the choice. Persistence
// failures are logged, not surfaced: the in-memory switch still takes
// effect for the session.
func (p *Provider) SetLocale(locale Locale) {
	locale = ParseLocale(string(locale))

	p.mu.Lock()
	p.locale = locale
	p.mu.Unlock()

	if p.storage != nil {
		if err := p.storage.Save(string(locale)); err != nil {
			p.logger.Warn().Err(err).Str("locale", string(locale)).Msg("could not persist locale")
		}
	}
}

// T resolves a key in the current locale.
func (p *Provider) T(key string, vars map[string]string) string {
	return Resolve(p.Locale(), key, vars)
}
