package core

import (
	"strings"
	"unicode"
)

const (
	ibanMinLength = 15
	ibanMaxLength = 34
	ibanMaxTotal  = 999_999_999
	ibanModulus   = 97
)

// IsValidIBAN reports whether raw is an IBAN with a correct mod-97 check.
// Whitespace is ignored and letters are case-insensitive.
func IsValidIBAN(raw string) bool {
	iban := normalizeIBAN(raw)
	if len(iban) < ibanMinLength || len(iban) > ibanMaxLength {
		return false
	}

	rearranged := iban[4:] + iban[:4]

	var total int64
	for _, r := range rearranged {
		value, ok := ibanCharValue(r)
		if !ok {
			return false
		}

		if value > 9 {
			total = total*100 + value
		} else {
			total = total*10 + value
		}

		if total > ibanMaxTotal {
			total %= ibanModulus
		}
	}

	return total%ibanModulus == 1
}

func normalizeIBAN(raw string) string {
	return strings.ToUpper(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw))
}

func ibanCharValue(r rune) (int64, bool) {
	switch {
	case r >= '0' && r <= '9':
		return int64(r - '0'), true
	case r >= 'A' && r <= 'Z':
		return int64(r-'A') + 10, true
	default:
		return 0, false
	}
}
