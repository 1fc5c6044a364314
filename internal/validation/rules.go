package validation

import (
	"regexp"
	"strings"
	"unicode/utf16"

	"github.com/go-playground/validator/v10"
)

// fieldValidator backs the email shape check; it is safe for concurrent use.
var fieldValidator = validator.New()

// MinLength passes when value has at least n UTF-16 code units, so a
// character outside the Basic Multilingual Plane counts twice.
func MinLength(n int) Predicate {
	return func(value string) bool {
		return textLength(value) >= n
	}
}

// MaxLength passes when value has at most n UTF-16 code units.
func MaxLength(n int) Predicate {
	return func(value string) bool {
		return textLength(value) <= n
	}
}

func textLength(value string) int {
	return len(utf16.Encode([]rune(value)))
}

func Contains(sub string) Predicate {
	return func(value string) bool {
		return strings.Contains(value, sub)
	}
}

func Matches(re *regexp.Regexp) Predicate {
	return re.MatchString
}

// HasUpper passes when value contains an ASCII uppercase letter.
func HasUpper() Predicate {
	return func(value string) bool {
		for _, char := range value {
			if char >= 'A' && char <= 'Z' {
				return true
			}
		}
		return false
	}
}

// HasDigit passes when value contains an ASCII digit.
func HasDigit() Predicate {
	return func(value string) bool {
		for _, char := range value {
			if char >= '0' && char <= '9' {
				return true
			}
		}
		return false
	}
}

// HasAnyOf passes when value contains at least one character of set.
func HasAnyOf(set string) Predicate {
	return func(value string) bool {
		return strings.ContainsAny(value, set)
	}
}

// emailShape narrows the validator's RFC 5322 check to plain addresses:
// unquoted local part and a dotted domain ending in a label of two or more
// letters.
var emailShape = regexp.MustCompile(`(?i)^[a-z0-9_'+\-.]*[a-z0-9_+\-]@([a-z0-9][a-z0-9\-]*\.)+[a-z]{2,}$`)

// IsEmail passes for a syntactically valid address with a dotted domain.
func IsEmail() Predicate {
	return func(value string) bool {
		if strings.HasPrefix(value, ".") || strings.Contains(value, "..") {
			return false
		}
		return emailShape.MatchString(value) && fieldValidator.Var(value, "email") == nil
	}
}

// FieldsEqual passes when both fields hold exactly the same text.
func FieldsEqual(a, b string) func(Values) bool {
	return func(values Values) bool {
		return values.Get(a) == values.Get(b)
	}
}
