package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/wiggin77/cryptoys"
)

const rootLong = `cryptoys encrypts and decrypts text with classical ciphers.

These ciphers are NOT secure. They are meant for learning and puzzles only.

File mode writes the result to ` + outputFile + ` in the current directory,
overwriting it on every run:
  cryptoys caesar --encrypt plaintext.txt --shift 3
  cryptoys caesar --decrypt output.txt --shift 3

Without --encrypt or --decrypt the selected cipher encrypts standard input
and prints the result:
  echo TEST | cryptoys atbash`

// newRootCmd builds the command tree. Each cipher subcommand hands a Command
// to `d`.
func newRootCmd(d *dispatcher, level *slog.LevelVar) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "cryptoys",
		Short:         "Classical ciphers for the command line",
		Long:          rootLong,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				level.Set(slog.LevelDebug)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return &UsageError{Msg: "a cipher subcommand is required"}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging on stderr")
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	for _, kind := range cryptoys.Kinds() {
		build, ok := cipherCmds[kind]
		if !ok {
			cobra.CheckErr(fmt.Errorf("no subcommand for cipher %s", kind))
		}
		root.AddCommand(build(d))
	}
	return root
}

// cipherCmds holds the subcommand builder of every cipher kind.
var cipherCmds = map[cryptoys.Kind]func(d *dispatcher) *cobra.Command{
	cryptoys.Atbash:     atbashCmd,
	cryptoys.Affine:     affineCmd,
	cryptoys.Caesar:     caesarCmd,
	cryptoys.Rot13:      rot13Cmd,
	cryptoys.Playfair:   playfairCmd,
	cryptoys.OneTimePad: otpCmd,
}

// keyFunc produces the key material of a cipher from its parsed flags and
// positional arguments.
type keyFunc func(args []string) (cryptoys.Key, error)

func noKey([]string) (cryptoys.Key, error) {
	return cryptoys.NoKey{}, nil
}

// newCipherCmd builds the subcommand shared by every cipher: the
// --encrypt/--decrypt directives plus whatever key flags the caller adds.
func newCipherCmd(d *dispatcher, kind cryptoys.Kind, short string, key keyFunc) *cobra.Command {
	var encrypt, decrypt string

	cmd := &cobra.Command{
		Use:   kind.String(),
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d.invoked = true
			if err := checkPathFlags(cmd.Flags(), "encrypt", "decrypt"); err != nil {
				return err
			}
			k, err := key(args)
			if err != nil {
				return err
			}
			return d.run(Command{Kind: kind, Encrypt: encrypt, Decrypt: decrypt, Key: k})
		},
	}
	cmd.Flags().StringVarP(&encrypt, "encrypt", "e", "", fmt.Sprintf("encrypts plaintext read from `file` with the %s cipher", kind))
	cmd.Flags().StringVarP(&decrypt, "decrypt", "d", "", fmt.Sprintf("decrypts ciphertext read from `file` with the %s cipher", kind))
	return cmd
}

// checkPathFlags rejects path flags that were given an empty value.
func checkPathFlags(flags *pflag.FlagSet, names ...string) error {
	for _, name := range names {
		f := flags.Lookup(name)
		if f != nil && f.Changed && f.Value.String() == "" {
			return &UsageError{Msg: fmt.Sprintf("--%s requires a file path", name)}
		}
	}
	return nil
}

func atbashCmd(d *dispatcher) *cobra.Command {
	return newCipherCmd(d, cryptoys.Atbash, "Atbash cipher (mirrored alphabet)", noKey)
}

func rot13Cmd(d *dispatcher) *cobra.Command {
	return newCipherCmd(d, cryptoys.Rot13, "ROT13 cipher (caesar with shift 13)", noKey)
}

func affineCmd(d *dispatcher) *cobra.Command {
	var a, b int
	cmd := newCipherCmd(d, cryptoys.Affine, "Affine cipher, E(x) = (a*x + b) mod 26", func([]string) (cryptoys.Key, error) {
		return cryptoys.AffineKey{A: a, B: b}, nil
	})
	cmd.Flags().IntVarP(&a, "a", "a", 0, "'a' in the formula, must be coprime with 26")
	cmd.Flags().IntVarP(&b, "b", "b", 0, "'b' in the formula")
	cobra.CheckErr(cmd.MarkFlagRequired("a"))
	cobra.CheckErr(cmd.MarkFlagRequired("b"))
	return cmd
}

func caesarCmd(d *dispatcher) *cobra.Command {
	var shift uint8
	cmd := newCipherCmd(d, cryptoys.Caesar, "Caesar cipher", func([]string) (cryptoys.Key, error) {
		return cryptoys.CaesarKey{Shift: shift}, nil
	})
	cmd.Flags().Uint8VarP(&shift, "shift", "s", 0, "number of letters to shift by (0-255)")
	cobra.CheckErr(cmd.MarkFlagRequired("shift"))
	return cmd
}

func playfairCmd(d *dispatcher) *cobra.Command {
	var key string
	cmd := newCipherCmd(d, cryptoys.Playfair, "Playfair cipher", func([]string) (cryptoys.Key, error) {
		return cryptoys.PlayfairKey{Key: key}, nil
	})
	cmd.Flags().StringVarP(&key, "key", "k", "", "keyword used to build the 5x5 grid")
	cobra.CheckErr(cmd.MarkFlagRequired("key"))
	return cmd
}

func otpCmd(d *dispatcher) *cobra.Command {
	cmd := newCipherCmd(d, cryptoys.OneTimePad, "One-time pad", func(args []string) (cryptoys.Key, error) {
		pad, err := parsePad(args)
		if err != nil {
			return nil, err
		}
		return cryptoys.PadKey{Pad: pad}, nil
	})
	cmd.Use = "otp PAD..."
	cmd.Long = `One-time pad over the Latin alphabet.

PAD is a list of numbers in 0-255, separated by spaces or commas. One pad
value is used per input byte, so the pad must be at least as long as the
input.`
	cmd.Args = func(_ *cobra.Command, args []string) error {
		_, err := parsePad(args)
		return err
	}
	return cmd
}
