package format

import (
	"embed"

	"github.com/goccy/go-json"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// newBundle loads the embedded message catalogs. Korean is the default
// language: the personnel records and the regulation this system
// implements are Korean, and English is the translation.
func newBundle() *i18n.Bundle {
	bundle := i18n.NewBundle(language.Korean)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	for _, name := range []string{"locales/active.ko.json", "locales/active.en.json"} {
		// Embedded catalogs are part of the build; a failure here is a
		// programming error, not a runtime condition.
		if _, err := bundle.LoadMessageFileFS(localeFS, name); err != nil {
			panic(err)
		}
	}
	return bundle
}
