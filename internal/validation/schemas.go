package validation

import (
	"fmt"
	"regexp"
)

// Field names shared by the login and registration forms.
const (
	FieldName            = "name"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
)

// FormKind identifies one of the application's forms.
type FormKind string

const (
	FormLogin        FormKind = "login"
	FormRegistration FormKind = "registration"
)

const (
	CodeRequired       RuleCode = "required"
	CodeMissingAt      RuleCode = "missing_at"
	CodeInvalidFormat  RuleCode = "invalid_format"
	CodeTooShort       RuleCode = "too_short"
	CodeTooLong        RuleCode = "too_long"
	CodeMissingUpper   RuleCode = "missing_upper"
	CodeMissingDigit   RuleCode = "missing_digit"
	CodeMissingSpecial RuleCode = "missing_special"
	CodeInvalidEmail   RuleCode = "invalid_email"
	CodeMismatch       RuleCode = "mismatch"
)

// PasswordSpecialChars is the set of characters accepted as "special" in
// login passwords.
const PasswordSpecialChars = `!@#$%^&*(),.?":{}|<>`

// emailChar excludes "@" and every Unicode space, including \v, NBSP,
// U+2028 and the BOM, which RE2's \s leaves out.
const emailChar = `[^\s\v\p{Z}\x{FEFF}@]`

// loginEmailPattern requires a literal dot between the domain and a
// suffix of at least two characters.
var loginEmailPattern = regexp.MustCompile(`^` + emailChar + `+@` + emailChar + `+\.` + emailChar + `{2,}$`)

// NewLoginSchema builds the login form rules with messages from catalog.
func NewLoginSchema(catalog *Catalog) *FormSchema {
	return &FormSchema{
		Name:   string(FormLogin),
		Fields: []string{FieldEmail, FieldPassword},
		Rules: []FieldRule{
			{Field: FieldEmail, Code: CodeRequired, Check: MinLength(1), Message: catalog.Text(MsgEmailRequired)},
			{Field: FieldEmail, Code: CodeMissingAt, Check: Contains("@"), Message: catalog.Text(MsgEmailMissingAt)},
			{Field: FieldEmail, Code: CodeInvalidFormat, Check: Matches(loginEmailPattern), Message: catalog.Text(MsgEmailInvalidFormat)},

			{Field: FieldPassword, Code: CodeTooShort, Check: MinLength(4), Message: catalog.Text(MsgPasswordTooShort)},
			{Field: FieldPassword, Code: CodeTooLong, Check: MaxLength(12), Message: catalog.Text(MsgPasswordTooLong)},
			{Field: FieldPassword, Code: CodeMissingUpper, Check: HasUpper(), Message: catalog.Text(MsgPasswordMissingUpper)},
			{Field: FieldPassword, Code: CodeMissingDigit, Check: HasDigit(), Message: catalog.Text(MsgPasswordMissingDigit)},
			{Field: FieldPassword, Code: CodeMissingSpecial, Check: HasAnyOf(PasswordSpecialChars), Message: catalog.Text(MsgPasswordMissingSpecial)},
		},
	}
}

// NewRegistrationSchema builds the registration form rules, including the
// password confirmation check reported against confirmPassword.
func NewRegistrationSchema(catalog *Catalog) *FormSchema {
	return &FormSchema{
		Name:   string(FormRegistration),
		Fields: []string{FieldName, FieldEmail, FieldPassword, FieldConfirmPassword},
		Rules: []FieldRule{
			{Field: FieldName, Code: CodeTooShort, Check: MinLength(3), Message: catalog.Text(MsgNameTooShort)},
			{Field: FieldEmail, Code: CodeInvalidEmail, Check: IsEmail(), Message: catalog.Text(MsgEmailInvalid)},
			{Field: FieldPassword, Code: CodeTooShort, Check: MinLength(6), Message: catalog.Text(MsgRegisterPasswordShort)},
			{Field: FieldConfirmPassword, Code: CodeTooShort, Check: MinLength(6), Message: catalog.Text(MsgConfirmRequired)},
		},
		CrossRules: []CrossFieldRule{
			{
				Field:   FieldConfirmPassword,
				Code:    CodeMismatch,
				Check:   FieldsEqual(FieldPassword, FieldConfirmPassword),
				Message: catalog.Text(MsgConfirmMismatch),
			},
		},
	}
}

// SchemaFor returns the schema for kind.
func SchemaFor(kind FormKind, catalog *Catalog) (*FormSchema, error) {
	switch kind {
	case FormLogin:
		return NewLoginSchema(catalog), nil
	case FormRegistration:
		return NewRegistrationSchema(catalog), nil
	default:
		return nil, fmt.Errorf("unknown form: %s", kind)
	}
}
