package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

// RandomString draws length characters uniformly from alphabet using
// crypto/rand. Used for report share slugs and temporary passwords, so the
// draw must be unbiased: rand.Int rejects values past the largest multiple
// of the alphabet size instead of taking a modulo.
func RandomString(length int, alphabet string) (string, error) {
	if length < 0 {
		return "", errors.New("length must be non-negative")
	}
	if len(alphabet) == 0 {
		return "", errors.New("alphabet must not be empty")
	}
	if length == 0 {
		return "", nil
	}

	size := big.NewInt(int64(len(alphabet)))
	out := make([]byte, length)
	for i := range out {
		index, err := rand.Int(rand.Reader, size)
		if err != nil {
			return "", err
		}
		out[i] = alphabet[index.Int64()]
	}
	return string(out), nil
}
