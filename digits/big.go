package digits

import "math/big"

// Big is a growable vector of decimal digits, most significant first, with
// no fixed capacity. It backs iterated additions whose results outgrow the
// fixed-capacity form.
type Big []uint8

// BigFromValue returns the decimal digits of num as a growable vector.
func BigFromValue(num uint64) Big {
	d := FromValue(num)
	b := make(Big, d.Len())
	copy(b, d.Slice())
	return b
}

// BigFromDigits copies the given digits into a growable vector. It panics
// if any digit is 10 or more.
func BigFromDigits(ds []uint8) Big {
	b := make(Big, len(ds))
	for i, digit := range ds {
		checkDigit(digit)
		b[i] = digit
	}
	return b
}

// BigFromInt returns the decimal digits of the absolute value of v.
func BigFromInt(v *big.Int) Big {
	text := new(big.Int).Abs(v).String()
	b := make(Big, len(text))
	for i := range len(text) {
		b[i] = uint8(text[i] - '0')
	}
	return b
}

// Add returns the grade-school sum of b and o as a new vector. The result
// has at most max(len(b), len(o)) + 1 digits.
func (b Big) Add(o Big) Big {
	longest := max(len(b), len(o))
	result := make(Big, 0, longest+1)

	// Walk both operands from their least significant ends in lock-step,
	// treating missing digits of the shorter one as zero.
	carry := uint8(0)
	for i := 1; i <= longest; i++ {
		var left, right uint8
		if i <= len(b) {
			left = b[len(b)-i]
		}
		if i <= len(o) {
			right = o[len(o)-i]
		}
		sum := left + right + carry
		carry = 0
		if sum >= 10 {
			sum -= 10
			carry = 1
		}
		result = append(result, sum)
	}
	if carry != 0 {
		result = append(result, carry)
	}
	reverse(result)
	return result
}

// AddAssign replaces b with b + o.
func (b *Big) AddAssign(o Big) {
	*b = b.Add(o)
}

// Reverse reverses the digit order in place.
func (b Big) Reverse() {
	reverse(b)
}

// Reversed returns a new vector with the digit order reversed.
func (b Big) Reversed() Big {
	result := make(Big, len(b))
	copy(result, b)
	reverse(result)
	return result
}

// IsPalindrome reports whether the digit sequence reads the same in both
// directions.
func (b Big) IsPalindrome() bool {
	return isPalindrome(b)
}

// CheckedValue reconstructs the represented integer, reporting ok=false if
// it does not fit a uint64.
func (b Big) CheckedValue() (uint64, bool) {
	return checkedValue(b)
}

// Sum returns the sum of the digits.
func (b Big) Sum() uint64 {
	var sum uint64
	for _, digit := range b {
		sum += uint64(digit)
	}
	return sum
}
