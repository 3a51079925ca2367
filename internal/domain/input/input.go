// Package input parses the wire representations used by request structs
// (decimal strings, RFC 3339 timestamps, enumerations) into domain values.
package input

import (
	"fmt"
	"net/mail"
	"slices"
	"strings"
	"time"

	"github.com/rpggio/tradeledger/internal/apperr"
	"github.com/shopspring/decimal"
)

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Required rejects blank strings.
func Required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return apperr.Invalid(field, "is required")
	}
	return nil
}

// RequiredIfSet rejects a provided but blank string.
func RequiredIfSet(field string, value *string) error {
	if value == nil {
		return nil
	}
	return Required(field, *value)
}

// Decimal parses a fixed-point amount such as "12.50".
func Decimal(field, raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, apperr.Invalid(field, fmt.Sprintf("%q is not a decimal number", raw))
	}
	return d, nil
}

// OptionalDecimal parses raw when present.
func OptionalDecimal(field string, raw *string) (*decimal.Decimal, error) {
	if raw == nil {
		return nil, nil
	}
	d, err := Decimal(field, *raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// NullDecimal parses raw into a nullable column value.
func NullDecimal(field string, raw *string) (decimal.NullDecimal, error) {
	d, err := OptionalDecimal(field, raw)
	if err != nil || d == nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NewNullDecimal(*d), nil
}

// DecimalOr parses raw, returning fallback when it is absent.
func DecimalOr(field string, raw *string, fallback decimal.Decimal) (decimal.Decimal, error) {
	d, err := OptionalDecimal(field, raw)
	if err != nil {
		return decimal.Zero, err
	}
	if d == nil {
		return fallback, nil
	}
	return *d, nil
}

// Time parses an RFC 3339 timestamp (or a bare date) into UTC.
func Time(field, raw string) (time.Time, error) {
	value := strings.TrimSpace(raw)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, apperr.Invalid(field, fmt.Sprintf("%q is not an RFC 3339 timestamp", raw))
}

// OptionalTime parses raw when present.
func OptionalTime(field string, raw *string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}
	t, err := Time(field, *raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Email validates an optional address.
func Email(field string, raw *string) error {
	if raw == nil {
		return nil
	}
	addr, err := mail.ParseAddress(*raw)
	if err != nil || addr.Address != *raw {
		return apperr.Invalid(field, fmt.Sprintf("%q is not a valid email address", *raw))
	}
	return nil
}

// OneOf validates an optional enumeration value.
func OneOf[T ~string](field string, value *T, allowed []T) error {
	if value == nil {
		return nil
	}
	if !slices.Contains(allowed, *value) {
		return apperr.Invalid(field, fmt.Sprintf("%q is not one of %v", *value, allowed))
	}
	return nil
}

// Values returns allowed enumeration members as schema values.
func Values[T ~string](allowed []T) []any {
	out := make([]any, len(allowed))
	for i, v := range allowed {
		out[i] = string(v)
	}
	return out
}
