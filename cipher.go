package cryptoys

import (
	"errors"
	"fmt"
)

const (
	alphabetSize = 26
)

var (
	// ErrInvalidKey is returned when key material is missing, of the wrong
	// type for the cipher, or otherwise unusable.
	ErrInvalidKey = errors.New("invalid key")
	// ErrNotCoprime is returned when the affine coefficient `a` has no
	// inverse modulo the alphabet size.
	ErrNotCoprime = errors.New("coefficient not coprime with alphabet size")
	// ErrPadTooShort is returned when a one-time pad is shorter than the text.
	ErrPadTooShort = errors.New("pad shorter than input")
	// ErrMalformedInput is returned when ciphertext cannot have been produced
	// by the cipher.
	ErrMalformedInput = errors.New("malformed input")
)

// Kind identifies one of the supported ciphers.
type Kind int

const (
	Atbash Kind = iota
	Affine
	Caesar
	Rot13
	Playfair
	OneTimePad
)

var kindNames = map[Kind]string{
	Atbash:     "atbash",
	Affine:     "affine",
	Caesar:     "caesar",
	Rot13:      "rot13",
	Playfair:   "playfair",
	OneTimePad: "otp",
}

// Kinds returns every supported cipher kind in declaration order.
func Kinds() []Kind {
	return []Kind{Atbash, Affine, Caesar, Rot13, Playfair, OneTimePad}
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Direction selects encryption or decryption.
type Direction int

const (
	Encrypt Direction = iota
	Decrypt
)

func (d Direction) String() string {
	if d == Decrypt {
		return "decrypt"
	}
	return "encrypt"
}

// Key is the key material for a cipher. Use the concrete type matching the
// cipher kind: NoKey, AffineKey, CaesarKey, PlayfairKey or PadKey.
type Key interface {
	isKey()
}

// NoKey is used by ciphers without key material (Atbash, ROT13).
type NoKey struct{}

// AffineKey holds the coefficients of E(x) = (A*x + B) mod 26.
type AffineKey struct {
	A int
	B int
}

// CaesarKey holds the shift of a Caesar cipher.
type CaesarKey struct {
	Shift uint8
}

// PlayfairKey holds the keyword used to build the 5x5 grid.
type PlayfairKey struct {
	Key string
}

// PadKey holds a one-time pad. One pad byte is consumed per input byte.
type PadKey struct {
	Pad []byte
}

func (NoKey) isKey()       {}
func (AffineKey) isKey()   {}
func (CaesarKey) isKey()   {}
func (PlayfairKey) isKey() {}
func (PadKey) isKey()      {}

// Cipher encrypts and decrypts text with fixed key material.
type Cipher interface {
	Encrypt(text string) (string, error)
	Decrypt(text string) (string, error)
}

// New returns a Cipher of the given kind keyed with `key`.
func New(kind Kind, key Key) (Cipher, error) {
	switch kind {
	case Atbash:
		return atbash{}, nil
	case Rot13:
		return caesar{shift: 13}, nil
	case Affine:
		k, ok := key.(AffineKey)
		if !ok {
			return nil, keyTypeError(kind, key)
		}
		return newAffine(k.A, k.B)
	case Caesar:
		k, ok := key.(CaesarKey)
		if !ok {
			return nil, keyTypeError(kind, key)
		}
		return caesar{shift: int(k.Shift) % alphabetSize}, nil
	case Playfair:
		k, ok := key.(PlayfairKey)
		if !ok {
			return nil, keyTypeError(kind, key)
		}
		return newPlayfair(k.Key)
	case OneTimePad:
		k, ok := key.(PadKey)
		if !ok {
			return nil, keyTypeError(kind, key)
		}
		return otp{pad: k.Pad}, nil
	}
	return nil, fmt.Errorf("unsupported cipher %v", kind)
}

// Invoke keys a cipher of the given kind and applies it to `text` once.
func Invoke(kind Kind, dir Direction, key Key, text string) (string, error) {
	c, err := New(kind, key)
	if err != nil {
		return "", err
	}
	if dir == Decrypt {
		return c.Decrypt(text)
	}
	return c.Encrypt(text)
}

func keyTypeError(kind Kind, key Key) error {
	return fmt.Errorf("%w: %v cipher cannot use key of type %T", ErrInvalidKey, kind, key)
}

// shiftLetter moves an ASCII letter `n` places through the alphabet,
// preserving case. Non-letters are returned unchanged.
func shiftLetter(r rune, n int) rune {
	base, ok := letterBase(r)
	if !ok {
		return r
	}
	return base + rune(mod(int(r-base)+n, alphabetSize))
}

func letterBase(r rune) (rune, bool) {
	switch {
	case r >= 'A' && r <= 'Z':
		return 'A', true
	case r >= 'a' && r <= 'z':
		return 'a', true
	}
	return 0, false
}

// mod returns the non-negative remainder of a/m.
func mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
