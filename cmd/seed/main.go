// cmd/seed/main.go creates a user account. There is no public registration
// endpoint, so this is how accounts get into the database.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/DavidL050/Forex/config"
	"github.com/DavidL050/Forex/db"
	"github.com/DavidL050/Forex/logger"
	"github.com/DavidL050/Forex/model"
	"github.com/DavidL050/Forex/repository"
	"github.com/DavidL050/Forex/service"
	"golang.org/x/term"
)

// readPassword is replaced in tests.
var readPassword = term.ReadPassword

type options struct {
	username   string
	password   string
	currencies string
	configDir  string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.username, "username", "", "username of the new account")
	fs.StringVar(&opts.password, "password", "", "password (prompted when empty)")
	fs.StringVar(&opts.currencies, "currencies", "", "comma separated preferred pairs, e.g. EUR/USD,GBP/USD")
	fs.StringVar(&opts.configDir, "config", ".", "directory holding config.yml and .env")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if strings.TrimSpace(opts.username) == "" {
		return opts, errors.New("-username is required")
	}
	return opts, nil
}

// parseCurrencies returns nil for an empty list so the user gets the default
// preference document.
func parseCurrencies(raw string) *model.Preferences {
	var pairs []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.ToUpper(strings.TrimSpace(p)); p != "" {
			pairs = append(pairs, p)
		}
	}
	if len(pairs) == 0 {
		return nil
	}
	return &model.Preferences{PreferredCurrencies: pairs}
}

func promptPassword(w io.Writer) (string, error) {
	fmt.Fprint(w, "Enter password: ")
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(pw), nil
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	if opts.password == "" {
		if opts.password, err = promptPassword(stdout); err != nil {
			return err
		}
	}

	cfg, err := config.LoadConfig(opts.configDir)
	if err != nil {
		return err
	}

	database, err := db.Connect(cfg.Database)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := db.Migrate(database); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	users := service.NewUserService(repository.NewUserRepository(database))
	id, err := users.CreateUser(ctx, opts.username, opts.password, parseCurrencies(opts.currencies))
	if err != nil {
		if errors.Is(err, service.ErrDuplicateUsername) {
			return fmt.Errorf("user %q already exists", opts.username)
		}
		return err
	}

	fmt.Fprintf(stdout, "created user %q with id %d\n", opts.username, id)
	return nil
}

func main() {
	logger.Init()
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "seed:", err)
		os.Exit(1)
	}
}
