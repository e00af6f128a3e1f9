package digits

import "fmt"

// MaxDigits is the capacity of the fixed-size form: 20 decimal digits cover
// every uint64.
const MaxDigits = 20

// Digits is a fixed-capacity vector of decimal digits, most significant
// first. The zero value is an empty vector.
//
// Digits is a small value type; methods that mutate take a pointer receiver,
// the -ed variants (Padded, Reversed) return a modified copy.
type Digits struct {
	n   uint8
	buf [MaxDigits]uint8
}

// FromValue returns the decimal digits of num, most significant first.
// Zero maps to the single-digit vector [0].
func FromValue(num uint64) Digits {
	var d Digits
	if num == 0 {
		d.buf[0] = 0
		d.n = 1
		return d
	}
	for num > 0 {
		d.Push(uint8(num % 10))
		num /= 10
	}
	d.Reverse()
	return d
}

// FromDigits returns a vector holding the given digits, most significant
// first. It panics if any digit is 10 or more, or if more than MaxDigits are
// supplied.
func FromDigits(ds []uint8) Digits {
	if len(ds) > MaxDigits {
		panic(fmt.Sprintf("digits: %d digits exceed capacity %d", len(ds), MaxDigits))
	}
	var d Digits
	for _, digit := range ds {
		checkDigit(digit)
		d.buf[d.n] = digit
		d.n++
	}
	return d
}

// Len returns the number of digits.
func (d *Digits) Len() int {
	return int(d.n)
}

// At returns the digit at index i, counting from the most significant.
func (d *Digits) At(i int) uint8 {
	return d.Slice()[i]
}

// Slice returns the digits as a slice backed by the vector's storage.
// The caller must not grow it.
func (d *Digits) Slice() []uint8 {
	return d.buf[:d.n]
}

// Push appends a digit at the least significant end. It panics on an
// invalid digit or when the vector is full.
func (d *Digits) Push(digit uint8) {
	checkDigit(digit)
	if d.n >= MaxDigits {
		panic(fmt.Sprintf("digits: capacity overflow pushing %d onto %v", digit, d.Slice()))
	}
	d.buf[d.n] = digit
	d.n++
}

// Insert replaces the digit at index i. It panics on an invalid digit or an
// out-of-range index.
func (d *Digits) Insert(i int, digit uint8) {
	checkDigit(digit)
	d.Slice()[i] = digit
}

// Pad grows the vector to amount digits by right-shifting the existing
// digits and zero-filling the vacated leading positions. Padding to the
// current length or shorter is a no-op. It panics if amount exceeds
// MaxDigits.
func (d *Digits) Pad(amount int) {
	if amount > MaxDigits {
		panic(fmt.Sprintf("digits: pad length %d exceeds capacity %d", amount, MaxDigits))
	}
	n := int(d.n)
	if n >= amount {
		return
	}
	padding := amount - n
	copy(d.buf[padding:amount], d.buf[:n])
	clear(d.buf[:padding])
	d.n = uint8(amount)
}

// Padded returns a copy padded to amount digits.
func (d Digits) Padded(amount int) Digits {
	d.Pad(amount)
	return d
}

// Reverse reverses the digit order in place.
func (d *Digits) Reverse() {
	reverse(d.Slice())
}

// Reversed returns a copy with the digit order reversed.
func (d Digits) Reversed() Digits {
	d.Reverse()
	return d
}

// IsPalindrome reports whether the digit sequence reads the same in both
// directions.
func (d *Digits) IsPalindrome() bool {
	return isPalindrome(d.Slice())
}

// Value reconstructs the represented integer, wrapping silently on
// overflow. Use CheckedValue when the vector may not fit a uint64.
func (d *Digits) Value() uint64 {
	var result uint64
	for _, digit := range d.Slice() {
		result = result*10 + uint64(digit)
	}
	return result
}

// CheckedValue reconstructs the represented integer, reporting ok=false the
// moment the accumulator would exceed the uint64 range.
func (d *Digits) CheckedValue() (uint64, bool) {
	return checkedValue(d.Slice())
}

func checkedValue(ds []uint8) (uint64, bool) {
	var result uint64
	for _, digit := range ds {
		shifted := result * 10
		if result != 0 && shifted/10 != result {
			return 0, false
		}
		sum := shifted + uint64(digit)
		if sum < shifted {
			return 0, false
		}
		result = sum
	}
	return result, true
}

func checkDigit(digit uint8) {
	if digit >= 10 {
		panic(fmt.Sprintf("digits: invalid digit %d", digit))
	}
}

func reverse(ds []uint8) {
	for i, j := 0, len(ds)-1; i < j; i, j = i+1, j-1 {
		ds[i], ds[j] = ds[j], ds[i]
	}
}

// isPalindrome compares the first half against the reverse of the last
// half; an odd-length middle digit trivially matches itself.
func isPalindrome(ds []uint8) bool {
	for i, j := 0, len(ds)-1; i < j; i, j = i+1, j-1 {
		if ds[i] != ds[j] {
			return false
		}
	}
	return true
}
