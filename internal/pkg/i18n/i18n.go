package i18n

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

type Translations map[string]string

var (
	locales  = make(map[string]Translations)
	fallback = "en"
	mu       sync.RWMutex
)

// LoadTranslations reads <localePath>/<locale>/notifications.yaml for every
// locale directory. Directories without the file are skipped.
func LoadTranslations(localePath string) error {
	mu.Lock()
	defer mu.Unlock()

	entries, err := os.ReadDir(localePath)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		locale := entry.Name()
		filePath := filepath.Join(localePath, locale, "notifications.yaml")

		data, err := os.ReadFile(filePath)
		if err != nil {
			continue
		}

		var file struct {
			Notifications Translations `yaml:"NOTIFICATIONS"`
		}
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("failed to parse %s: %w", filePath, err)
		}

		locales[locale] = file.Notifications
	}

	return nil
}

// SetFallback sets the locale consulted when a key is missing in the
// requested one.
func SetFallback(locale string) {
	mu.Lock()
	defer mu.Unlock()
	fallback = locale
}

func HasLocale(locale string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := locales[locale]
	return ok
}

func Translate(locale, key string) string {
	mu.RLock()
	defer mu.RUnlock()

	if trans, ok := locales[locale]; ok {
		if val, ok := trans[key]; ok {
			return val
		}
	}

	if locale != fallback {
		if trans, ok := locales[fallback]; ok {
			if val, ok := trans[key]; ok {
				return val
			}
		}
	}

	return key
}

// Format translates key and substitutes {name} placeholders from params.
func Format(locale, key string, params map[string]string) string {
	text := Translate(locale, key)
	if len(params) == 0 {
		return text
	}
	pairs := make([]string, 0, len(params)*2)
	for k, v := range params {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(text)
}
