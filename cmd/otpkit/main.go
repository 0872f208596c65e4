package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/dmitrymomot/otpkit/pkg/logger"
	"github.com/dmitrymomot/otpkit/pkg/qrcode"
	"github.com/dmitrymomot/otpkit/pkg/totp"
	"github.com/dmitrymomot/otpkit/pkg/vault"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	log := logger.New(logger.WithFormat(logger.FormatText))

	var err error
	switch os.Args[1] {
	case "secret":
		err = runSecret(os.Args[2:])
	case "code":
		err = runCode(os.Args[2:])
	case "verify":
		err = runVerify(os.Args[2:], log)
	case "seal":
		err = runSeal(os.Args[2:])
	case "keygen":
		err = runKeygen()
	case "help", "-h", "--help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Error("command failed", logger.Error(err))
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `Usage: otpkit <command> [flags]

Commands:
  secret   generate a shared secret and its enrollment URI
  code     print the code for a secret (current step or -counter)
  verify   check a code against a secret, exit 1 on rejection
  seal     encrypt a secret for storage under TOTP_MASTER_KEY
  keygen   generate a new vault master key

Environment:
  TOTP_ALGORITHM   hash algorithm: sha1, sha256, or sha512 (default sha256)
  TOTP_WINDOW      validation window in 30-second steps (default 5)
  TOTP_MASTER_KEY  base64 32-byte key for seal and verify -sealed
`)
}

func runSecret(args []string) error {
	fs := flag.NewFlagSet("secret", flag.ExitOnError)
	account := fs.String("account", "", "account label to enroll (required)")
	issuer := fs.String("issuer", "otpkit", "issuer shown in authenticator apps")
	length := fs.Int("length", totp.DefaultSecretLength, "secret length in bytes")
	showQR := fs.Bool("qr", false, "print the enrollment QR code as a data URI")
	fs.Parse(args)

	if *account == "" {
		return totp.ErrMissingAccountName
	}

	cfg, err := totp.LoadConfig()
	if err != nil {
		return err
	}
	provider, err := cfg.Provider()
	if err != nil {
		return err
	}

	_, encoded, err := totp.GenerateSecret(nil, *length)
	if err != nil {
		return err
	}

	uri, err := totp.ProvisioningURI(totp.ProvisioningParams{
		Secret:      encoded,
		AccountName: *account,
		Issuer:      *issuer,
		Algorithm:   provider.Name(),
	})
	if err != nil {
		return err
	}

	fmt.Printf("Secret: %s\n", encoded)
	fmt.Printf("Algorithm: %s\n", provider.Name())
	fmt.Printf("URI: %s\n", uri)
	if *showQR {
		img, err := qrcode.DataURI(uri, qrcode.DefaultSize)
		if err != nil {
			return err
		}
		fmt.Printf("QR: %s\n", img)
	}
	return nil
}

func runCode(args []string) error {
	fs := flag.NewFlagSet("code", flag.ExitOnError)
	secret := fs.String("secret", "", "encoded shared secret (required)")
	counter := fs.Int64("counter", -1, "explicit HOTP counter; defaults to the current time step")
	fs.Parse(args)

	if *secret == "" {
		return totp.ErrMissingSecret
	}

	cfg, err := totp.LoadConfig()
	if err != nil {
		return err
	}
	engine, err := cfg.Engine()
	if err != nil {
		return err
	}

	var code string
	if *counter >= 0 {
		code, err = engine.Generate(*secret, uint64(*counter))
	} else {
		code, err = engine.Code(*secret)
	}
	if err != nil {
		return err
	}

	fmt.Println(code)
	return nil
}

func runVerify(args []string, log *slog.Logger) error {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	secret := fs.String("secret", "", "encoded shared secret, or a sealed value with -sealed (required)")
	code := fs.String("code", "", "code to check (required)")
	window := fs.Int("window", -1, "override the validation window in time steps")
	sealed := fs.Bool("sealed", false, "treat -secret as a vault-sealed value")
	account := fs.String("account", "", "account label, required with -sealed")
	fs.Parse(args)

	if *secret == "" {
		return totp.ErrMissingSecret
	}
	if *code == "" {
		return errors.New("missing code")
	}

	cfg, err := totp.LoadConfig()
	if err != nil {
		return err
	}
	engine, err := cfg.Engine()
	if err != nil {
		return err
	}

	shared := *secret
	if *sealed {
		shared, err = unseal(*secret, *account)
		if err != nil {
			return err
		}
	}

	var ok bool
	if *window >= 0 {
		ok, err = engine.ValidateWindow(shared, *code, *window)
	} else {
		ok, err = engine.Validate(shared, *code)
	}
	if err != nil {
		return err
	}
	if !ok {
		log.Warn("code rejected",
			logger.Account(*account),
			logger.Algorithm(cfg.Algorithm),
			logger.Window(cfg.Window),
		)
		os.Exit(1)
	}

	fmt.Println("OK")
	return nil
}

func runSeal(args []string) error {
	fs := flag.NewFlagSet("seal", flag.ExitOnError)
	secret := fs.String("secret", "", "encoded shared secret to seal (required)")
	account := fs.String("account", "", "account label the secret belongs to (required)")
	fs.Parse(args)

	if *secret == "" {
		return totp.ErrMissingSecret
	}
	if *account == "" {
		return totp.ErrMissingAccountName
	}

	key, err := accountKey(*account)
	if err != nil {
		return err
	}

	sealedValue, err := vault.EncryptSecret(key, *secret)
	if err != nil {
		return err
	}

	fmt.Println(sealedValue)
	return nil
}

func runKeygen() error {
	key, err := vault.GenerateMasterKey()
	if err != nil {
		return err
	}
	fmt.Printf("Generated master key (for TOTP_MASTER_KEY env var):\n———\n%s\n———\n", vault.EncodeMasterKey(key))
	return nil
}

func unseal(sealedValue, account string) (string, error) {
	if account == "" {
		return "", totp.ErrMissingAccountName
	}
	key, err := accountKey(account)
	if err != nil {
		return "", err
	}
	return vault.DecryptSecret(key, sealedValue)
}

func accountKey(account string) ([]byte, error) {
	cfg, err := vault.LoadConfig()
	if err != nil {
		return nil, err
	}
	masterKey, err := cfg.Key()
	if err != nil {
		return nil, err
	}
	return vault.DeriveAccountKey(masterKey, account)
}
