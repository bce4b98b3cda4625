package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/skillverse/internal/backup"
	"github.com/dmitrijs2005/skillverse/internal/catalog"
	"github.com/dmitrijs2005/skillverse/internal/config"
	"github.com/dmitrijs2005/skillverse/internal/cryptox"
	"github.com/dmitrijs2005/skillverse/internal/kv"
	"github.com/dmitrijs2005/skillverse/internal/logging"
	"github.com/dmitrijs2005/skillverse/internal/services"
	"golang.org/x/term"
)

// App holds the services and I/O streams of one CLI run.
type App struct {
	config   *config.Config
	log      logging.Logger
	store    kv.Store
	catalog  *catalog.Catalog
	auth     *services.AuthService
	progress *services.ProgressService
	career   *services.CareerService
	device   *services.DeviceService

	reader   *bufio.Reader
	out      io.Writer
	terminal bool
}

// openStore is a test seam for the store factory.
var openStore = func(ctx context.Context, cfg *config.Config) (kv.Store, error) {
	switch cfg.StoreDriver {
	case config.DriverMemory:
		return kv.NewMemory(), nil
	default:
		return openPlatformStore(ctx, cfg)
	}
}

// NewApp opens the configured store and builds the services on top of it.
// Log output goes to logw; user-facing output goes to out.
func NewApp(ctx context.Context, cfg *config.Config, in io.Reader, out, logw io.Writer) (*App, error) {
	log, err := logging.New(logw, logging.Options{
		Backend: cfg.LogBackend,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})
	if err != nil {
		return nil, err
	}

	digester, err := cryptox.NewDigester(cfg.DigestScheme)
	if err != nil {
		return nil, err
	}

	cat, err := catalog.Default()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	store, err := openStore(ctx, cfg)
	if err != nil {
		log.Error(ctx, "error opening store", "driver", cfg.StoreDriver, "error", err)
		return nil, err
	}

	a := &App{
		config:   cfg,
		log:      log,
		store:    store,
		catalog:  cat,
		auth:     services.NewAuthService(store, digester, log),
		progress: services.NewProgressService(store, cat, log),
		career:   services.NewCareerService(store, cat, log),
		device:   services.NewDeviceService(store, log),
		reader:   bufio.NewReader(in),
		out:      out,
	}
	if f, ok := in.(*os.File); ok {
		a.terminal = term.IsTerminal(int(f.Fd()))
	}
	return a, nil
}

// Close releases the store.
func (a *App) Close() error {
	return a.store.Close()
}

// backupService builds the backup service over the local directory sink or,
// when remote is set, the configured S3 bucket.
func (a *App) backupService(ctx context.Context, remote bool) (*backup.Service, error) {
	var sink backup.Sink = backup.NewFileSink(a.config.BackupDir)
	if remote {
		s3cfg := a.config.S3
		s3, err := backup.NewS3Sink(ctx, backup.S3Config{
			Endpoint:  s3cfg.Endpoint,
			Region:    s3cfg.Region,
			Bucket:    s3cfg.Bucket,
			AccessKey: s3cfg.AccessKey,
			SecretKey: s3cfg.SecretKey,
		})
		if err != nil {
			return nil, err
		}
		sink = s3
	}
	return backup.NewService(a.store, sink, a.log), nil
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
