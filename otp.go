package cryptoys

import (
	"fmt"
)

// otp is a simplified one-time pad over the Latin alphabet. Byte i of the text
// consumes byte i of the pad; letters are shifted by pad[i] mod 26 and every
// other byte passes through unchanged. The pad is never reused or wrapped.
type otp struct {
	pad []byte
}

func (o otp) Encrypt(text string) (string, error) {
	return o.apply(text, 1)
}

func (o otp) Decrypt(text string) (string, error) {
	return o.apply(text, -1)
}

func (o otp) apply(text string, sign int) (string, error) {
	if len(o.pad) < len(text) {
		return "", fmt.Errorf("%w: otp: pad has %d bytes, input has %d", ErrPadTooShort, len(o.pad), len(text))
	}

	i := -1
	return mapBytes(text, func(r rune) rune {
		i++
		return shiftLetter(r, sign*int(o.pad[i]))
	}), nil
}
