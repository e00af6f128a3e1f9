package problem

import (
	"context"
	_ "embed"
	"fmt"
	"strconv"
	"strings"

	"github.com/hupe1980/eulerkit/intmath"
)

//go:embed cipher.txt
var cipherText string

// commonEnglishWords score candidate plaintexts: the decryption matching
// the most of them wins.
var commonEnglishWords = []string{
	"is", "has", "want", "too", "he", "she", "time", "person",
	"be", "have", "good", "new", "do",
}

// XORDecryption recovers a plaintext that was XOR-encrypted with a cycled
// three-letter lowercase key and returns the sum of the plaintext byte
// values.
type XORDecryption struct {
	KeyLength int
}

// NewXORDecryption returns the solver for three-letter keys.
func NewXORDecryption() *XORDecryption {
	return &XORDecryption{KeyLength: 3}
}

func (p *XORDecryption) Name() string { return "xor_decryption" }

func (p *XORDecryption) Solve(ctx context.Context, env *Context) (string, error) {
	cipher, err := parseCipher(cipherText)
	if err != nil {
		return "", err
	}

	alphabet := make([]byte, 0, 26)
	for b := byte('a'); b <= 'z'; b++ {
		alphabet = append(alphabet, b)
	}

	bestWords := 0
	var bestText string
	for _, key := range intmath.Product(alphabet, p.KeyLength) {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		text, ok := decryptXOR(cipher, key)
		if !ok {
			continue
		}
		words := countCommonWords(text)
		if words > bestWords {
			env.Logger().Debug("improved candidate plaintext",
				"key", string(key),
				"words", words,
			)
			bestWords, bestText = words, text
		}
	}
	if bestWords == 0 {
		return "", fmt.Errorf("no candidate plaintext matched any common word")
	}
	env.Logger().Info("recovered plaintext", "words", bestWords)

	var sum uint64
	for _, b := range []byte(bestText) {
		sum += uint64(b)
	}
	return strconv.FormatUint(sum, 10), nil
}

func parseCipher(raw string) ([]byte, error) {
	fields := strings.Split(strings.TrimSpace(raw), ",")
	bytes := make([]byte, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseUint(strings.TrimSpace(field), 10, 8)
		if err != nil {
			return nil, fmt.Errorf("cipher byte %d: %w", i, err)
		}
		bytes[i] = byte(v)
	}
	return bytes, nil
}

// decryptXOR applies the cycled key and reports ok=false for plaintexts
// containing non-printable bytes, which no English sentence produces.
func decryptXOR(cipher, key []byte) (string, bool) {
	plain := make([]byte, len(cipher))
	for i, b := range cipher {
		plain[i] = b ^ key[i%len(key)]
	}
	for _, b := range plain {
		if b < 0x20 || b > 0x7e {
			return "", false
		}
	}
	return string(plain), true
}

func countCommonWords(text string) int {
	var n int
	for _, word := range strings.Fields(text) {
		for _, common := range commonEnglishWords {
			if word == common {
				n++
				break
			}
		}
	}
	return n
}
