// Package main_test runs the built cryptoys binary end to end.
//go:build linux

package main_test

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// buildBinary compiles cryptoys into a temporary directory.
func buildBinary(t *testing.T) string {
	t.Helper()
	wdir, err := os.Getwd()
	if err != nil {
		t.Fatal("cannot get working directory: ", err)
	}

	bin := filepath.Join(t.TempDir(), "cryptoys")
	buildCmd := exec.Command("go", "build", "-o", bin, ".")
	buildCmd.Dir = wdir
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("cannot build cryptoys binary: %v\nOutput: %s", err, output)
	}
	return bin
}

func TestEncryptDecrypt(t *testing.T) {
	bin := buildBinary(t)
	dir := t.TempDir()

	plain := "Meet me by the old oak tree.\n"
	if err := os.WriteFile(filepath.Join(dir, "plaintext.txt"), []byte(plain), 0644); err != nil {
		t.Fatal("cannot create plaintext file: ", err)
	}

	// encrypt it
	cmd := exec.Command(bin, "affine", "--encrypt", "plaintext.txt", "-a", "7", "-b", "3")
	cmd.Dir = dir
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("error encrypting: %v\n%s", err, output)
	}
	if err := os.Rename(filepath.Join(dir, "output.txt"), filepath.Join(dir, "ciphertext.txt")); err != nil {
		t.Fatal(err)
	}

	// decrypt it
	cmd = exec.Command(bin, "affine", "--decrypt", "ciphertext.txt", "-a", "7", "-b", "3")
	cmd.Dir = dir
	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("error decrypting: %v\n%s", err, output)
	}

	// compare results
	got, err := os.ReadFile(filepath.Join(dir, "output.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != plain {
		t.Errorf("round trip failed: got %q, want %q", got, plain)
	}
}

func TestPipedStdin(t *testing.T) {
	bin := buildBinary(t)

	cmd := exec.Command(bin, "atbash")
	cmd.Dir = t.TempDir()
	cmd.Stdin = strings.NewReader("TEST")
	out, err := cmd.Output()
	if err != nil {
		t.Fatal("error running atbash: ", err)
	}
	if string(out) != "GVHG\n" {
		t.Errorf("got %q, want %q", out, "GVHG\n")
	}
}

func TestExitCodes(t *testing.T) {
	bin := buildBinary(t)
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "plaintext.txt"), []byte("HELLO"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		args []string
		code int
	}{
		{[]string{"caesar", "--encrypt", "plaintext.txt"}, 2},
		{[]string{"rot13", "-e", "plaintext.txt", "-d", "plaintext.txt"}, 2},
		{[]string{"rot13", "-e", "missing.txt"}, 1},
		{[]string{"otp", "-e", "plaintext.txt", "1,2"}, 1},
	}
	for _, tt := range tests {
		cmd := exec.Command(bin, tt.args...)
		cmd.Dir = dir
		err := cmd.Run()

		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			t.Errorf("%v: expected exit error, got %v", tt.args, err)
			continue
		}
		if exitErr.ExitCode() != tt.code {
			t.Errorf("%v: exit code %d, want %d", tt.args, exitErr.ExitCode(), tt.code)
		}
	}

	if _, err := os.Stat(filepath.Join(dir, "output.txt")); !os.IsNotExist(err) {
		t.Error("failed runs should not leave output.txt behind")
	}
}
