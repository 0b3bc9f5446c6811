package cli

import (
	"fmt"
	"strings"
)

// FormatAmount renders a currency amount with two decimal places and
// thousands separators, e.g. 1234.5 -> "$1,234.50".
func FormatAmount(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	s := fmt.Sprintf("%.2f", amount)
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	sign := ""
	if negative {
		sign = "-"
	}
	return fmt.Sprintf("%s$%s.%s", sign, b.String(), fracPart)
}
