// Package i18n holds the closed set of supported display languages and the
// localized strings the client surfaces itself (the backend localizes its
// own replies).
package i18n

import (
	"fmt"
	"os"
	"strings"

	"github.com/agoramujeres/agora-client/internal/common"
)

const (
	LangES = "es"
	LangEN = "en"
)

// Fallback is used when the system locale is not in the supported set.
const Fallback = LangES

var supported = map[string]struct{}{
	LangES: {},
	LangEN: {},
}

// Supported lists the supported language codes.
func Supported() []string { return []string{LangES, LangEN} }

// Normalize lowercases a locale code, strips any region subtag ("en-US" →
// "en") and rejects codes outside the supported set.
func Normalize(code string) (string, error) {
	c := strings.ToLower(strings.TrimSpace(code))
	for _, sep := range []string{"-", "_", "."} {
		if i := strings.Index(c, sep); i > 0 {
			c = c[:i]
		}
	}
	if _, ok := supported[c]; !ok {
		return "", fmt.Errorf("%w: %q", common.ErrUnsupportedLanguage, code)
	}
	return c, nil
}

// SystemDefault derives the language from the process locale environment,
// falling back to Fallback when the locale is unset or unsupported.
func SystemDefault() string {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(key); v != "" {
			if code, err := Normalize(v); err == nil {
				return code
			}
			break
		}
	}
	return Fallback
}

var messages = map[string]map[string]string{
	LangES: {
		"companion_intro": "Hola, soy Aurora. Estoy aquí para escucharte y acompañarte. ¿Cómo puedo ayudarte hoy?",
		"chat_error":      "Lo siento, ha ocurrido un error. ¿Puedes intentarlo de nuevo?",
		"generic_error":   "Ha ocurrido un error",
		"trial_ended":     "Tu período de prueba ha terminado. Para continuar usando Ágora, activa tu suscripción.",
	},
	LangEN: {
		"companion_intro": "Hi, I'm Aurora. I'm here to listen and accompany you. How can I help you today?",
		"chat_error":      "Sorry, something went wrong. Can you try again?",
		"generic_error":   "An error occurred",
		"trial_ended":     "Your trial period has ended. To continue using Ágora, activate your subscription.",
	},
}

// T returns the localized string for key, falling back to the Fallback
// language and finally to the key itself so a missing entry is visible
// rather than silent.
func T(lang, key string) string {
	if m, ok := messages[lang]; ok {
		if s, ok := m[key]; ok {
			return s
		}
	}
	if s, ok := messages[Fallback][key]; ok {
		return s
	}
	return key
}
