package i18n

import "strings"

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "field").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var dictionaries = map[string]map[string]string{
	"en": {
		"expected_mapping":        "expected a mapping",
		"expected_sequence":       "expected a sequence",
		"type_mismatch":           "expected {expected}, got {actual}",
		"literal_mismatch":        "expected {expected}, got {actual}",
		"missing_field":           "missing required field {field}",
		"custom_failed":           "value failed validation",
		"unknown_parameter_group": "unknown parameter group {name}",
		"unknown_key":             "unknown key {field}",
		"too_deep":                "nesting deeper than {max}",
		"source_unreadable":       "source could not be read",
	},
	"nb": {
		"expected_mapping":        "forventet en tabell",
		"expected_sequence":       "forventet en liste",
		"type_mismatch":           "forventet {expected}, fikk {actual}",
		"literal_mismatch":        "forventet {expected}, fikk {actual}",
		"missing_field":           "mangler obligatorisk felt {field}",
		"custom_failed":           "verdien er ugyldig",
		"unknown_parameter_group": "ukjent parametergruppe {name}",
		"unknown_key":             "ukjent nøkkel {field}",
		"too_deep":                "nøstet dypere enn {max}",
		"source_unreadable":       "kilden kunne ikke leses",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	msg, ok := dictionaries[t.lang][code]
	if !ok {
		return code
	}
	for k, v := range data {
		msg = strings.ReplaceAll(msg, "{"+k+"}", v)
	}
	return msg
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"nb").
// Unknown languages fall back to English.
func SetLanguage(lang string) {
	if _, ok := dictionaries[lang]; !ok {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
