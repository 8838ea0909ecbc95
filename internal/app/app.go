// Package app wires configuration, logging, hashing, metrics and the single
// Registry instance, and runs the CSV import preview.
package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/dmitrijs2005/userholder/internal/config"
	"github.com/dmitrijs2005/userholder/internal/cryptox"
	"github.com/dmitrijs2005/userholder/internal/logging"
	"github.com/dmitrijs2005/userholder/internal/metrics"
	"github.com/dmitrijs2005/userholder/internal/registry"
	usersrepo "github.com/dmitrijs2005/userholder/internal/repositories/users"
	"github.com/dmitrijs2005/userholder/internal/users"
	"github.com/prometheus/client_golang/prometheus"
)

type App struct {
	config   *config.Config
	logger   logging.Logger
	registry *registry.Registry
	metrics  *prometheus.Registry
	stdin    io.Reader
	stdout   io.Writer
}

// NewApp builds the App from c. Logs go to stderr, snapshots to stdout.
func NewApp(c *config.Config) (*App, error) {
	return newApp(c, os.Stdin, os.Stdout, os.Stderr)
}

func newApp(c *config.Config, stdin io.Reader, stdout, logOut io.Writer) (*App, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	logger := logging.New(logOut, c.LogLevel, c.LogFormat)

	hasher, err := cryptox.NewHasher(c.HashAlgorithm, c.Argon2Params())
	if err != nil {
		return nil, fmt.Errorf("hasher init error: %w", err)
	}

	promReg := prometheus.NewRegistry()
	m, err := metrics.New(c.MetricsNamespace, promReg)
	if err != nil {
		return nil, fmt.Errorf("metrics init error: %w", err)
	}

	factory := users.NewFactory(hasher, users.NewLogNotifier(logger))
	reg := registry.New(usersrepo.NewMemoryRepository(), factory, logger, m)

	return &App{
		config:   c,
		logger:   logger,
		registry: reg,
		metrics:  promReg,
		stdin:    stdin,
		stdout:   stdout,
	}, nil
}

// Registry returns the process-wide registry.
func (app *App) Registry() *registry.Registry {
	return app.registry
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run reads CSV rows from the configured import file (or stdin) and prints
// the snapshot of every parsed user, separated by blank lines.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.initSignalHandler(cancelFunc)
	app.logger.Info(ctx, "Starting app...", "hash", app.config.HashAlgorithm)

	src := app.stdin
	if app.config.ImportFile != "" {
		f, err := os.Open(app.config.ImportFile)
		if err != nil {
			return fmt.Errorf("open import file: %w", err)
		}
		defer f.Close()
		src = f
	}

	rows, err := readRows(ctx, src)
	if err != nil {
		return err
	}

	infos, err := app.registry.ImportUsers(ctx, rows)
	if err != nil {
		app.logger.Error(ctx, "import failed", "error", err)
		return err
	}

	for i, info := range infos {
		if i > 0 {
			fmt.Fprintln(app.stdout)
		}
		fmt.Fprintln(app.stdout, info)
	}
	app.logger.Info(ctx, "import preview done", "rows", len(infos))
	return nil
}

func readRows(ctx context.Context, r io.Reader) ([]string, error) {
	var rows []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read rows: %w", err)
	}
	return rows, nil
}
