package controllers

import (
	"net/http"
	"strings"

	"github.com/begzodnazarov/mebelhub-backend/pkg/enums"
)

var supportedLocales = map[string]bool{
	enums.LocaleUz.String(): true,
	enums.LocaleRu.String(): true,
}

// localeFromRequest resolves the display language: ?lang= wins, then the
// first supported Accept-Language entry, then uzbek.
func localeFromRequest(r *http.Request) string {
	if lang := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("lang"))); supportedLocales[lang] {
		return lang
	}
	for _, part := range strings.Split(r.Header.Get("Accept-Language"), ",") {
		tag := strings.ToLower(strings.TrimSpace(strings.SplitN(part, ";", 2)[0]))
		if idx := strings.Index(tag, "-"); idx > 0 {
			tag = tag[:idx]
		}
		if supportedLocales[tag] {
			return tag
		}
	}
	return enums.LocaleUz.String()
}
