package utils

import (
	"fmt"
	"math"
)

// microPerUnit is the number of micro-currency units in one currency unit
const microPerUnit = 1_000_000

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// MicroToUnits converts a micro-currency amount to currency units, rounded to cents
func MicroToUnits(micro int64) float64 {
	return RoundWithTwoDecimalPlace(float64(micro) / microPerUnit)
}

// UnitsToMicro converts a currency amount to micro-currency
func UnitsToMicro(units float64) int64 {
	return int64(math.Round(units * microPerUnit))
}

// FormatMicro renders a micro amount as "5.00 USD". A nil amount renders "-".
func FormatMicro(micro *int64, currency string) string {
	if micro == nil {
		return "-"
	}
	if currency == "" {
		return fmt.Sprintf("%.2f", MicroToUnits(*micro))
	}
	return fmt.Sprintf("%.2f %s", MicroToUnits(*micro), currency)
}
