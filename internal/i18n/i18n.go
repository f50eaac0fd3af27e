// Package i18n resolves user-facing strings for a requested language.
// There is no module-level current language: callers thread the language
// through explicitly, which keeps translation output testable.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
)

type Language string

const (
	English    Language = "en"
	German     Language = "de"
	Spanish    Language = "es"
	French     Language = "fr"
	Italian    Language = "it"
	Portuguese Language = "pt"
)

// Supported lists the selectable languages in display order.
func Supported() []Language {
	return []Language{English, German, Spanish, French, Italian, Portuguese}
}

var matcher = language.NewMatcher([]language.Tag{
	language.English, // fallback
	language.German,
	language.Spanish,
	language.French,
	language.Italian,
	language.Portuguese,
})

// Parse maps an arbitrary language code ("de", "de-AT", garbage) onto a
// supported language, defaulting to English.
func Parse(code string) Language {
	if code == "" {
		return English
	}
	tag, err := language.Parse(code)
	if err != nil {
		return English
	}
	_, index, _ := matcher.Match(tag)
	return Supported()[index]
}

// Name returns the language's self-description for the language picker.
func (l Language) Name() string {
	switch l {
	case German:
		return "Deutsch"
	case Spanish:
		return "Español"
	case French:
		return "Français"
	case Italian:
		return "Italiano"
	case Portuguese:
		return "Português"
	default:
		return "English"
	}
}

// Key is one of the known translation keys declared in tables.go.
type Key string

// T resolves key for lang, falling back to English and then to the raw
// key when a table has no entry.
func T(key Key, lang Language) string {
	if table, ok := translations[lang]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	if s, ok := translations[English][key]; ok {
		return s
	}
	return string(key)
}

// Tf resolves a format-string key and interpolates args.
func Tf(key Key, lang Language, args ...any) string {
	return fmt.Sprintf(T(key, lang), args...)
}
