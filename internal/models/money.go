package models

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Cents is a fixed-point money amount in hundredths of the account currency.
// All money arithmetic in the engine happens on this type; float64 is only
// used at the display boundary.
type Cents int64

// MaxExpenseAmount is the largest amount a single expense may carry (999999.99).
const MaxExpenseAmount Cents = 99999999

// ParseCents converts a decimal string to Cents with half-up rounding on the
// third decimal place. Both dot and comma decimal separators are accepted.
// Only strictly positive amounts parse successfully.
//
// Examples:
//
//	ParseCents("12.34")  -> 1234
//	ParseCents("12,34")  -> 1234
//	ParseCents("12.344") -> 1234 (rounds down)
//	ParseCents("12.345") -> 1235 (rounds up)
func ParseCents(s string) (Cents, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, NewValidationError("amount", "must not be empty")
	}
	s = strings.ReplaceAll(s, ",", ".")
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return 0, NewValidationError("amount", "must be a plain positive decimal")
	}

	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, NewValidationError("amount", "malformed decimal")
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" {
		intPart = "0"
	}
	for _, r := range intPart + fracPart {
		if !unicode.IsDigit(r) {
			return 0, NewValidationError("amount", "malformed decimal")
		}
	}

	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, NewValidationError("amount", "malformed decimal")
	}
	const maxSafe = (1<<63 - 1) / 100
	if iv > maxSafe {
		return 0, NewValidationError("amount", "amount too large")
	}

	// First two fractional digits, half-up rounding on the third.
	var frac int64
	if len(fracPart) > 0 {
		frac = int64(fracPart[0]-'0') * 10
		if len(fracPart) > 1 {
			frac += int64(fracPart[1] - '0')
			if len(fracPart) > 2 && fracPart[2] >= '5' {
				frac++
			}
		}
	}

	cents := iv*100 + frac
	if cents <= 0 {
		return 0, NewValidationError("amount", "must be positive")
	}
	return Cents(cents), nil
}

// String formats the amount as a plain decimal with two fractional digits.
func (c Cents) String() string {
	sign := ""
	v := int64(c)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// Float64 returns the amount as a float for display purposes only.
func (c Cents) Float64() float64 {
	return float64(c) / 100.0
}

// MarshalJSON emits the amount as a decimal string so JSON consumers never
// see a binary float representation of money.
func (c Cents) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.String() + `"`), nil
}

// UnmarshalJSON accepts either a decimal string ("12.34") or a raw integer
// cent count for backward compatibility with older snapshots.
func (c *Cents) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		parsed, err := ParseCents(s[1 : len(s)-1])
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid cents value %s", s)
	}
	*c = Cents(v)
	return nil
}
