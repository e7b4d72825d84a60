package template

import (
	"errors"
	"fmt"
)

// Variant - один из трёх фиксированных макетов резюме. Набор закрыт:
// варианты отличаются только оформлением, не содержимым.
type Variant string

const (
	VariantModern     Variant = "modern"
	VariantClassic    Variant = "classic"
	VariantMinimalist Variant = "minimalist"
)

var ErrUnknownVariant = errors.New("unknown template variant")

// Variants возвращает все поддерживаемые макеты в порядке показа.
func Variants() []Variant {
	return []Variant{VariantModern, VariantClassic, VariantMinimalist}
}

// ParseVariant проверяет селектор макета. Пустая строка означает макет
// по умолчанию (modern).
func ParseVariant(s string) (Variant, error) {
	switch Variant(s) {
	case VariantModern, VariantClassic, VariantMinimalist:
		return Variant(s), nil
	case "":
		return VariantModern, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownVariant)
	}
}
