// Package i18n provides the user-facing strings of the shortener client.
// Translations live in embedded YAML files, one per language, and are
// loaded with go-i18n. Russian is the default language.
package i18n

import (
	"embed"
	"io/fs"
	"sync"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// DefaultLanguage is used when Init has not been called.
const DefaultLanguage = "ru"

//go:embed locales/*.yaml
var localeFS embed.FS

var (
	mu        sync.RWMutex
	localizer *goi18n.Localizer
)

// Init loads the embedded translations and selects lang. Unknown languages
// fall back to Russian.
func Init(lang string) {
	bundle := goi18n.NewBundle(language.Russian)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, _ := localeFS.ReadFile("locales/" + f.Name())
		bundle.MustParseMessageFileBytes(data, f.Name())
	}

	mu.Lock()
	localizer = goi18n.NewLocalizer(bundle, lang, DefaultLanguage)
	mu.Unlock()
}

// T translates messageID. A missing translation returns the ID itself.
func T(messageID string) string {
	mu.RLock()
	l := localizer
	mu.RUnlock()

	if l == nil {
		Init(DefaultLanguage)
		mu.RLock()
		l = localizer
		mu.RUnlock()
	}

	msg, err := l.Localize(&goi18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		return messageID
	}
	return msg
}

// Languages lists the languages with an embedded translation file.
func Languages() []string {
	return []string{"ru", "en"}
}
