// Package language tracks the supported deck languages and resolves the
// device's preferred one.
package language

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

const (
	// English is the default language; decks and the UI fall back to it.
	English = "English"
	// Russian deck language.
	Russian = "Русский"
	// Spanish deck language.
	Spanish = "Español"
)

// Default is the language used whenever nothing better is known.
const Default = English

// Supported returns the supported deck languages in display order.
func Supported() []string {
	return []string{English, Russian, Spanish}
}

// IsSupported reports whether name is one of the supported languages.
func IsSupported(name string) bool {
	for _, l := range Supported() {
		if l == name {
			return true
		}
	}
	return false
}

// Normalize maps any input to a supported language, falling back to the
// default. Unknown input is not an error.
func Normalize(name string) string {
	if IsSupported(name) {
		return name
	}
	return Default
}

// supportedTags parallels Supported(); the first entry doubles as the
// matcher fallback.
var supportedTags = []language.Tag{
	language.English,
	language.Russian,
	language.Spanish,
}

var matcher = language.NewMatcher(supportedTags)

// Detect resolves the device's preferred supported language from the
// usual locale environment variables (LANGUAGE, LC_ALL, LC_MESSAGES,
// LANG), falling back to the default when nothing matches.
func Detect() string {
	return detect(os.Getenv("LANGUAGE"), os.Getenv("LC_ALL"), os.Getenv("LC_MESSAGES"), os.Getenv("LANG"))
}

func detect(locales ...string) string {
	var tags []language.Tag
	for _, raw := range locales {
		for _, item := range strings.Split(raw, ":") {
			// Strip the encoding suffix, e.g. "ru_RU.UTF-8" -> "ru_RU".
			if i := strings.IndexAny(item, ".@"); i >= 0 {
				item = item[:i]
			}
			item = strings.TrimSpace(item)
			if item == "" || item == "C" || item == "POSIX" {
				continue
			}
			if tag, err := language.Parse(item); err == nil {
				tags = append(tags, tag)
			}
		}
	}
	if len(tags) == 0 {
		return Default
	}
	_, index, conf := matcher.Match(tags...)
	if conf == language.No || index < 0 || index >= len(supportedTags) {
		return Default
	}
	return Supported()[index]
}
