package api

import (
	"context"

	"github.com/MaVoid-Team/MaVoid-Portfolio/admin"
	"github.com/MaVoid-Team/MaVoid-Portfolio/i18n"
)

type keyType string

const (
	intentKey keyType = "adminIntent"
)

// ctxWithIntent records the unlocked admin intent on the context.
func ctxWithIntent(ctx context.Context, intent admin.Intent) context.Context {
	return context.WithValue(ctx, intentKey, intent)
}

// ctxIntent retrieves the unlocked admin intent, empty when ungated.
func ctxIntent(ctx context.Context) admin.Intent {
	if intent, ok := ctx.Value(intentKey).(admin.Intent); ok {
		return intent
	}
	return ""
}

// requestLocale resolves the locale for one request: the `lang` query
// parameter wins, then the Accept-Language header, then the persisted
// process-wide default.
func requestLocale(queryLang, acceptLanguage string, provider *i18n.Provider) i18n.Locale {
	if queryLang != "" {
		return i18n.ParseLocale(queryLang)
	}
	if len(acceptLanguage) >= 2 {
		switch acceptLanguage[:2] {
		case "ar":
			return i18n.LocaleAr
		case "en":
			return i18n.LocaleEn
		}
	}
	return provider.Locale()
}
