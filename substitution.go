package cryptoys

import (
	"fmt"
)

// mapBytes applies `f` to every byte of `text`. Only ASCII letters are ever
// rewritten, so working on bytes keeps any other encoding intact.
func mapBytes(text string, f func(r rune) rune) string {
	out := make([]byte, len(text))
	for i := 0; i < len(text); i++ {
		out[i] = byte(f(rune(text[i])))
	}
	return string(out)
}

// atbash maps each letter to its mirror in the alphabet. It is its own inverse.
type atbash struct{}

func (atbash) Encrypt(text string) (string, error) {
	return mapBytes(text, mirror), nil
}

func (atbash) Decrypt(text string) (string, error) {
	return mapBytes(text, mirror), nil
}

func mirror(r rune) rune {
	base, ok := letterBase(r)
	if !ok {
		return r
	}
	return base + (alphabetSize - 1 - (r - base))
}

// caesar shifts every letter by a fixed amount. ROT13 is a caesar with shift 13.
type caesar struct {
	shift int
}

func (c caesar) Encrypt(text string) (string, error) {
	return mapBytes(text, func(r rune) rune { return shiftLetter(r, c.shift) }), nil
}

func (c caesar) Decrypt(text string) (string, error) {
	return mapBytes(text, func(r rune) rune { return shiftLetter(r, -c.shift) }), nil
}

// affine computes E(x) = (a*x + b) mod 26 and D(y) = a^-1 * (y - b) mod 26.
type affine struct {
	a    int
	b    int
	aInv int
}

func newAffine(a, b int) (affine, error) {
	a = mod(a, alphabetSize)
	b = mod(b, alphabetSize)

	aInv, ok := modInverse(a, alphabetSize)
	if !ok {
		return affine{}, fmt.Errorf("%w: affine: a=%d has no inverse mod %d", ErrNotCoprime, a, alphabetSize)
	}
	return affine{a: a, b: b, aInv: aInv}, nil
}

func (c affine) Encrypt(text string) (string, error) {
	return mapBytes(text, func(r rune) rune {
		base, ok := letterBase(r)
		if !ok {
			return r
		}
		x := int(r - base)
		return base + rune(mod(c.a*x+c.b, alphabetSize))
	}), nil
}

func (c affine) Decrypt(text string) (string, error) {
	return mapBytes(text, func(r rune) rune {
		base, ok := letterBase(r)
		if !ok {
			return r
		}
		y := int(r - base)
		return base + rune(mod(c.aInv*(y-c.b), alphabetSize))
	}), nil
}

// modInverse returns x such that a*x = 1 (mod m), using the extended
// euclidean algorithm. ok is false when gcd(a, m) != 1.
func modInverse(a, m int) (x int, ok bool) {
	oldR, r := a, m
	oldS, s := 1, 0
	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
	}
	if oldR != 1 {
		return 0, false
	}
	return mod(oldS, m), true
}
