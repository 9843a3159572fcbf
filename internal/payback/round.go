package payback

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// roundPrecBits is the working precision used for exact decimal rounding.
// 53 mantissa bits plus headroom for multiplying by small powers of ten.
const roundPrecBits = 256

// RoundTo rounds v to the given number of decimal places and returns the
// parsed result.
//
// Rounding is performed on the exact binary value of v, with ties resolved
// away from zero. This matches how the numbers are shown to the user, so two
// results that display the same also compare equal. For example 1.005 is
// stored as 1.00499999999999989... and rounds to 1.00, while 0.25 is exact and
// rounds to 0.3.
//
// Non-finite values are returned unchanged.
func RoundTo(v float64, decimals int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	if decimals < 0 {
		decimals = 0
	}

	negative := v < 0
	exact := new(big.Float).SetPrec(roundPrecBits).SetFloat64(math.Abs(v))

	scale := new(big.Float).SetPrec(roundPrecBits).SetInt(
		new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil))
	exact.Mul(exact, scale)
	exact.Add(exact, big.NewFloat(0.5))

	n, _ := exact.Int(nil) // truncates toward zero, i.e. floor for non-negative values
	digits := n.String()

	if decimals > 0 {
		if pad := decimals + 1 - len(digits); pad > 0 {
			digits = strings.Repeat("0", pad) + digits
		}
		cut := len(digits) - decimals
		digits = digits[:cut] + "." + digits[cut:]
	}
	if negative {
		digits = "-" + digits
	}

	out, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return v
	}
	return out
}
