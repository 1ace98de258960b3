package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"days-since/internal/adapters/auth/tokenhash"

	"golang.org/x/term"
)

// hashToken implementa el subcomando hash-token: lee el token del dispatcher
// e imprime el hash argon2id para DISPATCH_TOKEN_HASH.
func hashToken(args []string, in io.Reader, out, errOut io.Writer) error {
	fs := flag.NewFlagSet("hash-token", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.Usage = func() {
		fmt.Fprintf(errOut, "Usage: days-since hash-token\n\n")
		fmt.Fprintf(errOut, "Reads the dispatcher token (masked on a terminal, one line from stdin otherwise)\n")
		fmt.Fprintf(errOut, "and prints its Argon2id hash for DISPATCH_TOKEN_HASH.\n")
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	token, err := readToken(in, errOut)
	if err != nil {
		return err
	}
	if token == "" {
		return errors.New("token cannot be empty")
	}

	hash, err := tokenhash.Hash(token)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, hash)
	return nil
}

func readToken(in io.Reader, prompt io.Writer) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fd := int(f.Fd())

		fmt.Fprint(prompt, "Enter token:   ")
		token, err := term.ReadPassword(fd)
		fmt.Fprintln(prompt)
		if err != nil {
			return "", fmt.Errorf("read token: %w", err)
		}

		fmt.Fprint(prompt, "Confirm token: ")
		confirm, err := term.ReadPassword(fd)
		fmt.Fprintln(prompt)
		if err != nil {
			return "", fmt.Errorf("read token confirmation: %w", err)
		}

		if string(token) != string(confirm) {
			return "", errors.New("tokens do not match")
		}
		return string(token), nil
	}

	// stdin redirigido: una línea, sin confirmación
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read token: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
