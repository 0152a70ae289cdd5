package cli

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// FormatCurrency renders an amount in Brazilian Real format:
// R$ 1.234,56. Negative amounts carry a leading minus sign.
func FormatCurrency(amount float64) string {
	neg := amount < 0
	abs := math.Abs(amount)

	// Round to cents before splitting, so 19.999 renders as R$ 20,00.
	cents := int64(math.Round(abs * 100))
	whole := cents / 100
	frac := cents % 100

	digits := fmt.Sprintf("%d", whole)
	var grouped strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(d)
	}

	sign := ""
	if neg && cents != 0 {
		sign = "-"
	}
	return fmt.Sprintf("%sR$ %s,%02d", sign, grouped.String(), frac)
}

// FormatDate renders a date as dd/mm/yyyy.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// FormatPercent renders a percentage with one decimal place.
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}
