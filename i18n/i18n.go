package i18n

import (
	"fmt"
	"sync"
)

// Language represents supported languages
type Language string

const (
	English Language = "English"
	Chinese Language = "简体中文"
)

// Translator provides translation functionality
type Translator struct {
	language     Language
	translations map[Language]map[string]string
	mu           sync.RWMutex
}

var (
	defaultTranslator *Translator
	once              sync.Once
)

// GetTranslator returns the singleton translator instance
func GetTranslator() *Translator {
	once.Do(func() {
		defaultTranslator = NewTranslator(English)
	})
	return defaultTranslator
}

// NewTranslator creates a translator with the built-in message tables
func NewTranslator(lang Language) *Translator {
	return &Translator{
		language: lang,
		translations: map[Language]map[string]string{
			English: englishTranslations,
			Chinese: chineseTranslations,
		},
	}
}

// SetLanguage sets the current language
func (t *Translator) SetLanguage(lang Language) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.language = lang
}

// GetLanguage returns the current language
func (t *Translator) GetLanguage() Language {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.language
}

// T translates a key with optional parameters. Missing keys fall back to
// English, then to the key itself.
func (t *Translator) T(key string, params ...interface{}) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	msg, ok := t.translations[t.language][key]
	if !ok {
		msg, ok = t.translations[English][key]
	}
	if !ok {
		return key
	}
	if len(params) > 0 {
		return fmt.Sprintf(msg, params...)
	}
	return msg
}

// T translates with the default translator
func T(key string, params ...interface{}) string {
	return GetTranslator().T(key, params...)
}

// SetLanguage sets the default translator's language
func SetLanguage(lang Language) {
	GetTranslator().SetLanguage(lang)
}
