package validation

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// MessageKey names a localized validation message.
type MessageKey string

const (
	MsgEmailRequired          MessageKey = "email.required"
	MsgEmailMissingAt         MessageKey = "email.missing_at"
	MsgEmailInvalidFormat     MessageKey = "email.invalid_format"
	MsgPasswordTooShort       MessageKey = "password.too_short"
	MsgPasswordTooLong        MessageKey = "password.too_long"
	MsgPasswordMissingUpper   MessageKey = "password.missing_upper"
	MsgPasswordMissingDigit   MessageKey = "password.missing_digit"
	MsgPasswordMissingSpecial MessageKey = "password.missing_special"
	MsgNameTooShort           MessageKey = "name.too_short"
	MsgEmailInvalid           MessageKey = "email.invalid"
	MsgRegisterPasswordShort  MessageKey = "register.password.too_short"
	MsgConfirmRequired        MessageKey = "confirm.required"
	MsgConfirmMismatch        MessageKey = "confirm.mismatch"
)

// DefaultLanguage is used when a requested language has no translations.
var DefaultLanguage = language.Spanish

var translations = map[language.Tag]map[MessageKey]string{
	language.Spanish: {
		MsgEmailRequired:          "El email es obligatorio",
		MsgEmailMissingAt:         `El email debe contener el símbolo "@"`,
		MsgEmailInvalidFormat:     "El formato del email es inválido (ej: usuario@dominio.com)",
		MsgPasswordTooShort:       "La contraseña debe tener al menos 4 caracteres",
		MsgPasswordTooLong:        "La contraseña no puede tener más de 12 caracteres",
		MsgPasswordMissingUpper:   "Debe tener al menos una mayúscula",
		MsgPasswordMissingDigit:   "Debe tener al menos un número",
		MsgPasswordMissingSpecial: "Debe tener un carácter especial",
		MsgNameTooShort:           "El nombre debe tener al menos 3 caracteres.",
		MsgEmailInvalid:           "Debe ser un correo electrónico válido.",
		MsgRegisterPasswordShort:  "La contraseña debe tener al menos 6 caracteres.",
		MsgConfirmRequired:        "Debes confirmar tu contraseña.",
		MsgConfirmMismatch:        "Las contraseñas no coinciden.",
	},
	language.English: {
		MsgEmailRequired:          "Email is required",
		MsgEmailMissingAt:         `Email must contain the "@" symbol`,
		MsgEmailInvalidFormat:     "Invalid email format (e.g. user@domain.com)",
		MsgPasswordTooShort:       "Password must be at least 4 characters",
		MsgPasswordTooLong:        "Password cannot be longer than 12 characters",
		MsgPasswordMissingUpper:   "Must contain at least one uppercase letter",
		MsgPasswordMissingDigit:   "Must contain at least one number",
		MsgPasswordMissingSpecial: "Must contain a special character",
		MsgNameTooShort:           "Name must be at least 3 characters.",
		MsgEmailInvalid:           "Must be a valid email address.",
		MsgRegisterPasswordShort:  "Password must be at least 6 characters.",
		MsgConfirmRequired:        "You must confirm your password.",
		MsgConfirmMismatch:        "Passwords do not match.",
	},
}

var messages = buildCatalog()

var matcher = language.NewMatcher([]language.Tag{language.Spanish, language.English})

func buildCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(DefaultLanguage))
	for tag, entries := range translations {
		for key, text := range entries {
			// Messages carry no format verbs; SetString cannot fail for them.
			_ = b.SetString(tag, string(key), text)
		}
	}
	return b
}

// Catalog resolves message keys to text in one language.
type Catalog struct {
	tag     language.Tag
	printer *message.Printer
}

// NewCatalog returns a catalog for the closest supported language to tag.
func NewCatalog(tag language.Tag) *Catalog {
	_, index, confidence := matcher.Match(tag)
	resolved := DefaultLanguage
	if confidence != language.No && index == 1 {
		resolved = language.English
	}
	return &Catalog{
		tag:     resolved,
		printer: message.NewPrinter(resolved, message.Catalog(messages)),
	}
}

// Language returns the language messages are rendered in.
func (c *Catalog) Language() language.Tag {
	return c.tag
}

// Text returns the localized text for key.
func (c *Catalog) Text(key MessageKey) string {
	return c.printer.Sprintf(string(key))
}
