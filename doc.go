// Package cryptoys provides a handful of classical (historical) ciphers behind
// a single interface: Atbash, Affine, Caesar, ROT13, Playfair and a simplified
// one-time pad. None of these offer any real security; they are toys meant for
// teaching and puzzles.
//
// To encrypt some text, build a keyed cipher and call Encrypt:
//  c, err := cryptoys.New(cryptoys.Caesar, cryptoys.CaesarKey{Shift: 3})
//  ciphertext, err := c.Encrypt("HELLO") // "KHOOR"
//
// Or make a one-shot call keyed by kind and direction:
//  plaintext, err := cryptoys.Invoke(cryptoys.Caesar, cryptoys.Decrypt, cryptoys.CaesarKey{Shift: 3}, "KHOOR")
//
// All ciphers work on the 26 letter Latin alphabet. Letter case is preserved and
// anything that is not a letter passes through unchanged, with the exception of
// Playfair which only emits upper case letters.
package cryptoys
