package problem

import (
	"context"
	"math/big"
	"strconv"
)

// PowerfulDigitSum finds the maximum decimal digit sum among the powers
// a^b with both a and b below Bound.
type PowerfulDigitSum struct {
	Bound uint64

	table []uint8
}

// NewPowerfulDigitSum returns the solver for bases and exponents below one
// hundred.
func NewPowerfulDigitSum() *PowerfulDigitSum {
	return &PowerfulDigitSum{
		Bound: 100,
		table: newDigitSumTable(),
	}
}

func (p *PowerfulDigitSum) Name() string { return "powerful_digit_sum" }

func (p *PowerfulDigitSum) Solve(ctx context.Context, env *Context) (string, error) {
	var largest uint64
	for a := uint64(0); a < p.Bound; a++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		base := new(big.Int).SetUint64(a)
		power := big.NewInt(1)
		for b := uint64(1); b < p.Bound; b++ {
			power.Mul(power, base)
			largest = max(largest, bigDigitSum(power, p.table))
		}
	}

	return strconv.FormatUint(largest, 10), nil
}

// newDigitSumTable caches the digit sum of every value below one thousand
// so bigDigitSum can consume three digits per division.
func newDigitSumTable() []uint8 {
	table := make([]uint8, 1000)
	for i := range table {
		table[i] = digitSum(uint64(i))
	}
	return table
}

// bigDigitSum returns the decimal digit sum of v, which must be
// non-negative. v is left unmodified; table must come from
// newDigitSumTable.
func bigDigitSum(v *big.Int, table []uint8) uint64 {
	thousand := big.NewInt(1000)

	target := new(big.Int).Set(v)
	mod := new(big.Int)
	var sum uint64
	for target.Cmp(thousand) > 0 {
		target.QuoRem(target, thousand, mod)
		sum += uint64(table[mod.Uint64()])
	}
	return sum + uint64(digitSum(target.Uint64()))
}

func digitSum(target uint64) uint8 {
	var sum uint8
	for ; target > 0; target /= 10 {
		sum += uint8(target % 10)
	}
	return sum
}
