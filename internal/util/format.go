package util

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	decimalValue  = 100
	thousandValue = 1000
	// Above this the amount in cents no longer fits an int64 comfortably.
	maxCentsPrice = 1e15
)

func FormatMoney(value int64, thousand, decimal string) string {
	var result string
	var isNegative bool

	if value < 0 {
		value *= -1
		isNegative = true
	}

	// apply the decimal separator
	result = fmt.Sprintf("%s%02d%s", decimal, value%decimalValue, result)
	value /= decimalValue

	// for each 3 dígits put a dot "."
	for value >= thousandValue {
		result = fmt.Sprintf("%s%03d%s", thousand, value%thousandValue, result)
		value /= thousandValue
	}

	if isNegative {
		return fmt.Sprintf("-%d%s", value, result)
	}

	return fmt.Sprintf("%d%s", value, result)
}

// FormatPrice renders a listing price with "," as thousands separator. Whole
// amounts drop the decimals. Prices that are not a number render as "n/a".
// Amounts too large to count in cents render with every significant digit.
func FormatPrice(price float64) string {
	switch {
	case math.IsNaN(price):
		return "n/a"
	case math.IsInf(price, 1):
		return "∞"
	case math.IsInf(price, -1):
		return "-∞"
	}

	if math.Abs(price) >= maxCentsPrice {
		raw := strconv.FormatFloat(price, 'f', -1, 64)
		whole, fraction, found := strings.Cut(raw, ".")
		if found {
			return GroupThousands(whole) + "." + fraction
		}
		return GroupThousands(whole)
	}

	cents := int64(math.Round(price * decimalValue))
	formatted := FormatMoney(cents, ",", ".")
	if cents%decimalValue == 0 {
		return strings.TrimSuffix(formatted, ".00")
	}

	return formatted
}

// GroupThousands inserts "," into raw input text before every digit that
// follows a word character and starts a run of digits whose length is a
// multiple of three. Non numeric text is kept as typed, so "1234.5678"
// becomes "1,234.5,678".
func GroupThousands(raw string) string {
	var b strings.Builder
	b.Grow(len(raw) + len(raw)/3)

	for i := 0; i < len(raw); i++ {
		if i > 0 && isWordByte(raw[i-1]) && isDigit(raw[i]) {
			run := countDigits(raw[i:])
			if run >= 3 && run%3 == 0 {
				b.WriteByte(',')
			}
		}
		b.WriteByte(raw[i])
	}

	return b.String()
}

func isWordByte(c byte) bool {
	return isDigit(c) || c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
