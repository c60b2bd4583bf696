package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"octofit.backend/internal/config"
	"octofit.backend/pkg/crypto"
)

var (
	stdout         io.Writer = os.Stdout
	generateHashFn           = crypto.HashPasswordWithCost
	fatalfFn                 = log.Fatalf
)

var errMissingPassword = errors.New("usage: hash-gen [-cost N] [-check HASH] <password>")

// runHashGen hashes a password for direct insertion into the users table,
// or with -check verifies a password against an existing hash.
func runHashGen(args []string, defaultCost int, out io.Writer) error {
	fs := flag.NewFlagSet("hash-gen", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cost := fs.Int("cost", defaultCost, "bcrypt cost")
	check := fs.String("check", "", "existing hash to verify the password against")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 || fs.Arg(0) == "" {
		return errMissingPassword
	}
	password := fs.Arg(0)

	if *check != "" {
		if !crypto.CheckPassword(password, *check) {
			return errors.New("password does not match hash")
		}
		_, _ = fmt.Fprintln(out, "Password matches hash")
		return nil
	}

	hash, err := generateHashFn(password, *cost)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "Bcrypt Hash: %s\n", hash)
	return nil
}

func main() {
	cfg := config.Load()
	if err := runHashGen(os.Args[1:], cfg.Security.PasswordHashCost, stdout); err != nil {
		fatalfFn("hash-gen: %v", err)
	}
}
