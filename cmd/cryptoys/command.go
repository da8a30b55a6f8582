package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wiggin77/cryptoys"
)

// Command is one parsed invocation: the selected cipher, at most one
// directive, and the key material that cipher needs.
type Command struct {
	Kind    cryptoys.Kind
	Encrypt string // plaintext file, empty if not given
	Decrypt string // ciphertext file, empty if not given
	Key     cryptoys.Key
}

// Validate rejects conflicting directives and missing key material. It does
// no I/O.
func (c Command) Validate() error {
	if c.Encrypt != "" && c.Decrypt != "" {
		return &ConflictingDirectiveError{Encrypt: c.Encrypt, Decrypt: c.Decrypt}
	}

	switch c.Kind {
	case cryptoys.Atbash, cryptoys.Rot13:
		return nil
	case cryptoys.Affine:
		if _, ok := c.Key.(cryptoys.AffineKey); !ok {
			return &UsageError{Msg: "affine requires both -a and -b"}
		}
	case cryptoys.Caesar:
		if _, ok := c.Key.(cryptoys.CaesarKey); !ok {
			return &UsageError{Msg: "caesar requires --shift"}
		}
	case cryptoys.Playfair:
		k, ok := c.Key.(cryptoys.PlayfairKey)
		if !ok || k.Key == "" {
			return &UsageError{Msg: "playfair requires --key"}
		}
	case cryptoys.OneTimePad:
		k, ok := c.Key.(cryptoys.PadKey)
		if !ok || len(k.Pad) == 0 {
			return &UsageError{Msg: "otp requires a pad"}
		}
	default:
		return &UsageError{Msg: fmt.Sprintf("unknown cipher %v", c.Kind)}
	}
	return nil
}

// Direction is the operation to apply. With no directive the selected cipher
// encrypts.
func (c Command) Direction() cryptoys.Direction {
	if c.Decrypt != "" {
		return cryptoys.Decrypt
	}
	return cryptoys.Encrypt
}

// Source returns the input file path, or "" to read standard input.
func (c Command) Source() string {
	if c.Decrypt != "" {
		return c.Decrypt
	}
	return c.Encrypt
}

// Interactive reports whether the command reads stdin and writes stdout
// rather than using files.
func (c Command) Interactive() bool {
	return c.Source() == ""
}

// parsePad converts pad arguments into bytes. Values may be given as separate
// arguments, comma separated, or both.
func parsePad(args []string) ([]byte, error) {
	var pad []byte
	for _, arg := range args {
		for _, field := range strings.Split(arg, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}
			v, err := strconv.ParseUint(field, 10, 8)
			if err != nil {
				return nil, &UsageError{Msg: fmt.Sprintf("invalid pad value %q, expected 0-255", field)}
			}
			pad = append(pad, byte(v))
		}
	}
	if len(pad) == 0 {
		return nil, &UsageError{Msg: "otp requires a pad"}
	}
	return pad, nil
}
