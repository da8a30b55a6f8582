package cryptoys

import (
	"fmt"
	"strings"
)

const (
	gridSide = 5
	filler   = 'X'
	// used instead of filler when the letter to separate is the filler itself
	altFiller = 'Q'
)

type cell struct {
	row int
	col int
}

// playfair is a digraph substitution cipher over a 5x5 grid (J folded into I).
type playfair struct {
	grid [gridSide][gridSide]byte
	pos  [alphabetSize]cell
}

func newPlayfair(key string) (*playfair, error) {
	letters := normalizeLetters(key)
	if len(letters) == 0 {
		return nil, fmt.Errorf("%w: playfair: key must contain at least one letter", ErrInvalidKey)
	}

	p := &playfair{}
	var seen [alphabetSize]bool
	idx := 0
	place := func(c byte) {
		if seen[c-'A'] {
			return
		}
		seen[c-'A'] = true
		p.grid[idx/gridSide][idx%gridSide] = c
		p.pos[c-'A'] = cell{row: idx / gridSide, col: idx % gridSide}
		idx++
	}

	for i := 0; i < len(letters); i++ {
		place(letters[i])
	}
	for c := byte('A'); c <= 'Z'; c++ {
		if c != 'J' {
			place(c)
		}
	}
	return p, nil
}

// Encrypt keeps only the letters of `text`, splits them into digraphs and
// substitutes each pair. Doubled letters within a pair are separated by a
// filler and an odd tail is padded.
func (p *playfair) Encrypt(text string) (string, error) {
	pairs := digraphs(normalizeLetters(text))

	var sb strings.Builder
	sb.Grow(len(pairs) * 2)
	for _, pr := range pairs {
		a, b := p.substitute(pr[0], pr[1], 1)
		sb.WriteByte(a)
		sb.WriteByte(b)
	}
	return sb.String(), nil
}

// Decrypt reverses Encrypt. Filler letters inserted during encryption are
// left in place.
func (p *playfair) Decrypt(text string) (string, error) {
	letters := normalizeLetters(text)
	if len(letters)%2 != 0 {
		return "", fmt.Errorf("%w: playfair: ciphertext has an odd number of letters (%d)", ErrMalformedInput, len(letters))
	}

	var sb strings.Builder
	sb.Grow(len(letters))
	for i := 0; i < len(letters); i += 2 {
		if letters[i] == letters[i+1] {
			return "", fmt.Errorf("%w: playfair: doubled letter %q in digraph", ErrMalformedInput, letters[i])
		}
		a, b := p.substitute(letters[i], letters[i+1], -1)
		sb.WriteByte(a)
		sb.WriteByte(b)
	}
	return sb.String(), nil
}

// substitute applies the playfair rules to one digraph, stepping right/down
// for step=1 and left/up for step=-1.
func (p *playfair) substitute(a, b byte, step int) (byte, byte) {
	pa, pb := p.pos[a-'A'], p.pos[b-'A']

	switch {
	case pa.row == pb.row:
		return p.grid[pa.row][mod(pa.col+step, gridSide)], p.grid[pb.row][mod(pb.col+step, gridSide)]
	case pa.col == pb.col:
		return p.grid[mod(pa.row+step, gridSide)][pa.col], p.grid[mod(pb.row+step, gridSide)][pb.col]
	default:
		return p.grid[pa.row][pb.col], p.grid[pb.row][pa.col]
	}
}

// digraphs splits letters into pairs, never pairing a letter with itself.
func digraphs(letters []byte) [][2]byte {
	pairs := make([][2]byte, 0, len(letters)/2+1)
	for i := 0; i < len(letters); {
		a := letters[i]
		if i+1 == len(letters) {
			pairs = append(pairs, [2]byte{a, fillerFor(a)})
			break
		}
		b := letters[i+1]
		if a == b {
			pairs = append(pairs, [2]byte{a, fillerFor(a)})
			i++
			continue
		}
		pairs = append(pairs, [2]byte{a, b})
		i += 2
	}
	return pairs
}

func fillerFor(c byte) byte {
	if c == filler {
		return altFiller
	}
	return filler
}

// normalizeLetters returns the ASCII letters of `s` upper cased, with J
// folded into I.
func normalizeLetters(s string) []byte {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if c < 'A' || c > 'Z' {
			continue
		}
		if c == 'J' {
			c = 'I'
		}
		out = append(out, c)
	}
	return out
}
