package service

import (
	"errors"
	"regexp"
)

// ErrInvalidPhone is returned when a caller number still contains
// non-digit characters after normalization.
var ErrInvalidPhone = errors.New("<anrufer> must not contain non-digit characters except a leading +")

var (
	// phoneNoisePattern strips the German country calling prefix plus
	// any plus, hyphen and whitespace characters anywhere in the value.
	phoneNoisePattern = regexp.MustCompile(`(\+49)|[+\-\s]`)

	nonDigitPattern = regexp.MustCompile(`\D`)
)

// NormalizePhone reduces a user supplied phone number to its digits-only
// canonical form, used verbatim as the substring search term.
func NormalizePhone(number string) (string, error) {
	normalized := phoneNoisePattern.ReplaceAllString(number, "")

	if nonDigitPattern.MatchString(normalized) {
		return "", ErrInvalidPhone
	}

	return normalized, nil
}
