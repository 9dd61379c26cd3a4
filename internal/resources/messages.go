// Package resources holds the user-facing messages raised by model
// validation, translated per locale.
package resources

import (
	"sync/atomic"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Key identifies a message in the catalog.
type Key string

const (
	// GenericOneEntry: a generic type needs at least one parameter.
	GenericOneEntry Key = "GENERIC_ONE_ENTRY"
	// GenericNotNull: generic parameters cannot be nil.
	GenericNotNull Key = "GENERIC_NOT_NULL"
	// GenericParametersCountMatch: parameter count differs from the definition's arity.
	GenericParametersCountMatch Key = "GENERIC_PARAMETERS_COUNT_MATCH"
	// URIAbsolute: a URI argument must be absolute.
	URIAbsolute Key = "URI_ABSOLUTE"
	// FieldsNotNull: entity fields cannot contain nil.
	FieldsNotNull Key = "FIELDS_NOT_NULL"
	// ItemsNotNull: lookup items cannot contain nil.
	ItemsNotNull Key = "ITEMS_NOT_NULL"
)

// Translations maps a key to its format string per language. Format verbs
// follow fmt; arguments are parameter names.
type Translations map[Key]map[language.Tag]string

var defaultTranslations = Translations{
	GenericOneEntry: {
		language.English: "%s must contain at least one entry.",
		language.German:  "%s muss mindestens einen Eintrag enthalten.",
	},
	GenericNotNull: {
		language.English: "%s cannot contain a nil entry.",
		language.German:  "%s darf keinen leeren Eintrag enthalten.",
	},
	GenericParametersCountMatch: {
		language.English: "The number of entries in %s must match the number of generic arguments declared by %s.",
		language.German:  "Die Anzahl der Einträge in %s muss der Anzahl der von %s deklarierten generischen Argumente entsprechen.",
	},
	URIAbsolute: {
		language.English: "%s must be an absolute URI.",
		language.German:  "%s muss ein absoluter URI sein.",
	},
	FieldsNotNull: {
		language.English: "%s cannot contain a nil field.",
		language.German:  "%s darf kein leeres Feld enthalten.",
	},
	ItemsNotNull: {
		language.English: "%s cannot contain a nil item.",
		language.German:  "%s darf kein leeres Element enthalten.",
	},
}

var (
	messages = newCatalog(defaultTranslations)
	locale   atomic.Value
)

func init() {
	locale.Store(language.English)
}

func newCatalog(t Translations) catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, byLang := range t {
		for tag, text := range byLang {
			if err := b.SetString(tag, string(key), text); err != nil {
				panic(err)
			}
		}
	}
	return b
}

// Supported lists the languages with translations.
func Supported() []language.Tag {
	return []language.Tag{language.English, language.German}
}

// IsSupported reports whether tag matches one of the supported languages.
func IsSupported(tag language.Tag) bool {
	_, _, conf := language.NewMatcher(Supported()).Match(tag)
	return conf != language.No
}

// SetLocale selects the language used by Format. Unsupported tags are matched
// to the closest supported one.
func SetLocale(tag language.Tag) {
	matched, _, _ := language.NewMatcher(Supported()).Match(tag)
	base, _ := matched.Base()
	locale.Store(language.Make(base.String()))
}

// Locale returns the selected language.
func Locale() language.Tag {
	return locale.Load().(language.Tag)
}

// Format renders key in the selected locale.
func Format(key Key, args ...any) string {
	return FormatIn(Locale(), key, args...)
}

// FormatIn renders key in the given language.
func FormatIn(tag language.Tag, key Key, args ...any) string {
	return message.NewPrinter(tag, message.Catalog(messages)).Sprintf(string(key), args...)
}
