// Package i18n supplies the default failure messages used by primitive
// struct constructors when the caller does not provide a label.
package i18n

// Kind constants name the checks that have built-in messages.
const (
	KindString   = "string"
	KindNumber   = "number"
	KindInteger  = "integer"
	KindBoolean  = "boolean"
	KindDate     = "date"
	KindFunction = "function"
	KindObject   = "object"
	KindArray    = "array"
)

// Translator retrieves localized default messages for failed checks.
type Translator interface {
	Message(kind string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(kind string) string {
	switch t.lang {
	case "ja":
		switch kind {
		case KindString:
			return "文字列が必要です"
		case KindNumber:
			return "有限の数値が必要です"
		case KindInteger:
			return "整数が必要です"
		case KindBoolean:
			return "真偽値が必要です"
		case KindDate:
			return "日時が必要です"
		case KindFunction:
			return "関数が必要です"
		case KindObject:
			return "オブジェクトが必要です"
		case KindArray:
			return "配列が必要です"
		}
	default: // "en"
		switch kind {
		case KindString:
			return "expected a string"
		case KindNumber:
			return "expected a finite number"
		case KindInteger:
			return "expected an integer"
		case KindBoolean:
			return "expected a boolean"
		case KindDate:
			return "expected a date"
		case KindFunction:
			return "expected a function"
		case KindObject:
			return "expected an object"
		case KindArray:
			return "expected an array"
		}
	}
	return kind
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
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

// T fetches the default message for the given kind using the current
// Translator.
func T(kind string) string { return currentTranslator.Message(kind) }
