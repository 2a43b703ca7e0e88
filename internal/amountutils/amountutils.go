// Package amountutils provides parsing and formatting for monetary amounts.
// All amounts are exact decimals; binary floats are never used.
package amountutils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a string representation of an amount into a decimal
// value. It handles formats like "1,234.56", "1.234,56", "$12.50" and
// "1'234.56".
func ParseAmount(amountStr string) (decimal.Decimal, error) {
	standardized := StandardizeAmount(amountStr)
	if standardized == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}

	amount, err := decimal.NewFromString(standardized)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to parse amount '%s': %w", amountStr, err)
	}

	return amount, nil
}

// StandardizeAmount converts various amount string formats to a form that
// decimal.NewFromString accepts. Handles patterns like "$1,234.56",
// "CHF 1'234.56", "€1.234,56" and "1 234,56".
func StandardizeAmount(amountStr string) string {
	re := regexp.MustCompile(`[€$£¥CHF\s]`)
	amountStr = re.ReplaceAllString(amountStr, "")

	if strings.Contains(amountStr, ",") && strings.Contains(amountStr, ".") {
		if strings.LastIndex(amountStr, ".") < strings.LastIndex(amountStr, ",") {
			// European format (1.234,56)
			amountStr = strings.ReplaceAll(amountStr, ".", "")
			amountStr = strings.ReplaceAll(amountStr, ",", ".")
		} else {
			// Anglo format (1,234.56)
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	} else if strings.Contains(amountStr, ",") {
		// Comma only: decimal separator when the last group is short,
		// thousand separator otherwise
		parts := strings.Split(amountStr, ",")
		if len(parts) > 1 && len(parts[len(parts)-1]) <= 2 {
			amountStr = strings.ReplaceAll(amountStr, ",", ".")
		} else {
			amountStr = strings.ReplaceAll(amountStr, ",", "")
		}
	}

	// Apostrophes used as thousand separators (1'234.56)
	amountStr = strings.ReplaceAll(amountStr, "'", "")

	return amountStr
}

// FormatAmount formats a decimal amount with two decimal places for display.
// Stored and exported values keep full precision; this is display only.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// FormatAmountGrouped formats an amount with two decimal places and comma
// thousands separators, e.g. "1,234.56". Grouping works on the exact
// decimal string; the value never passes through a binary float.
func FormatAmountGrouped(amount decimal.Decimal) string {
	s := amount.StringFixed(2)

	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}
	intPart := s[:len(s)-3]
	fracPart := s[len(s)-3:]

	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}

	grouped := b.String() + fracPart
	if negative {
		return "-" + grouped
	}
	return grouped
}

// IsPositive checks if an amount is strictly greater than zero
func IsPositive(amount decimal.Decimal) bool {
	return amount.GreaterThan(decimal.Zero)
}

// IsNegative checks if an amount is negative
func IsNegative(amount decimal.Decimal) bool {
	return amount.LessThan(decimal.Zero)
}

// IsZero checks if an amount is zero
func IsZero(amount decimal.Decimal) bool {
	return amount.Equal(decimal.Zero)
}
