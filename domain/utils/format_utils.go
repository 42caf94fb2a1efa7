package utils

import (
	"fmt"
	"strings"
)

// FormatTokens formats a token amount with thousand separators and the T suffix
func FormatTokens(amount int64) string {
	return FormatAmount(amount) + " T"
}

// FormatAmount formats a number with thousand separators
func FormatAmount(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	str := fmt.Sprintf("%d", amount)
	n := len(str)
	if n <= 3 {
		return sign + str
	}

	var result strings.Builder
	for i, digit := range str {
		if i > 0 && (n-i)%3 == 0 {
			result.WriteRune(',')
		}
		result.WriteRune(digit)
	}
	return sign + result.String()
}
