// Command walletcli drives the wallet from a terminal. It runs the same controllers as the web
// front end and keeps its session in a local SQLite file.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"time"

	"github.com/jrsteele09/go-wallet-web/apiclient"
	"github.com/jrsteele09/go-wallet-web/controllers"
	"github.com/jrsteele09/go-wallet-web/internal/config"
	"github.com/jrsteele09/go-wallet-web/sessions"
	"github.com/jrsteele09/go-wallet-web/sessions/sqlitestore"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	sessionDBEnvVar    = "WALLET_SESSION_DB"
	defaultAPITimeout  = 30 * time.Second
	sessionDBFileName  = "session.db"
	sessionDBDirectory = "walletcli"
)

// errReported means the failure was already shown to the user
var errReported = errors.New("reported")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// cli is the state shared by every command
type cli struct {
	ctrl   *controllers.Controllers
	store  *sessions.Store
	stdin  io.Reader
	in     *bufio.Reader
	stdout io.Writer
	stderr io.Writer
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("walletcli", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { usage(fs) }

	apiURL := fs.String("api", "", "Wallet API URL including its base path (default from API_BASE_URL and API_BASE_PATH)")
	sessionPath := fs.String("session", "", "Path to the session database (default $"+sessionDBEnvVar+" or the user config directory)")
	verbose := fs.Bool("v", false, "Log backend calls")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("missing command")
	}
	cmd, ok := commands[fs.Arg(0)]
	if !ok {
		fs.Usage()
		return fmt.Errorf("unknown command %q", fs.Arg(0))
	}

	level := zerolog.WarnLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.Kitchen}).Level(level).With().Timestamp().Logger()

	c := config.New()
	base := *apiURL
	if base == "" {
		base = c.GetAPIBaseURL() + c.GetAPIBasePath()
	}
	timeout := c.GetAPITimeout()
	if timeout <= 0 {
		timeout = defaultAPITimeout
	}

	path, err := resolveSessionPath(*sessionPath)
	if err != nil {
		return err
	}
	storage, err := sqlitestore.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open session database: %w", err)
	}
	defer storage.Close()

	app := &cli{
		// no checkout: adding money needs the hosted checkout in a browser
		ctrl: controllers.New(
			apiclient.New(base, apiclient.WithHTTPClient(&http.Client{Timeout: timeout})),
			nil,
			controllers.CheckoutSettings{},
			c.GetDisplayLocation(),
		),
		store:  sessions.NewStore(storage, sessions.WithExpiryEnforcement(c.GetLogoutOnExpiredToken())),
		stdin:  stdin,
		in:     bufio.NewReader(stdin),
		stdout: stdout,
		stderr: stderr,
	}
	return cmd.run(ctx, app, fs.Args()[1:])
}

func resolveSessionPath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if path := os.Getenv(sessionDBEnvVar); path != "" {
		return path, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	dir = filepath.Join(dir, sessionDBDirectory)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dir, err)
	}
	return filepath.Join(dir, sessionDBFileName), nil
}

func usage(fs *flag.FlagSet) {
	out := fs.Output()
	fmt.Fprintln(out, "Usage: walletcli [flags] <command> [command flags]")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Commands:")
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(out, "  %-16s %s\n", name, commands[name].summary)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Flags:")
	fs.PrintDefaults()
}
