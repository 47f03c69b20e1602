package runtime

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	cfgpkg "github.com/aldoforce/apex-logger-services/internal/config"
	"github.com/aldoforce/apex-logger-services/internal/logbook"
	"github.com/aldoforce/apex-logger-services/internal/logstore"
	"github.com/aldoforce/apex-logger-services/internal/namespace"
	pebblestore "github.com/aldoforce/apex-logger-services/internal/storage/pebble"
	"github.com/aldoforce/apex-logger-services/pkg/log"
	"github.com/aldoforce/apex-logger-services/pkg/stamp"
)

// Options for building the Runtime.
type Options struct {
	DataDir       string
	Fsync         pebblestore.FsyncMode
	FsyncInterval time.Duration
	Config        cfgpkg.Config
	Logger        log.Logger
	// StorageMetrics observes store wrapper operations. Optional.
	StorageMetrics pebblestore.MetricsHook
	// FlushObserver observes logbook flush attempts. Optional.
	FlushObserver logbook.FlushObserver
}

// Runtime wires storage and config for a single-node instance.
type Runtime struct {
	db       *pebblestore.DB
	config   cfgpkg.Config
	logger   log.Logger
	observer logbook.FlushObserver
	stamps   *stamp.Generator
}

// Open initializes the underlying storage and returns a Runtime.
func Open(opts Options) (*Runtime, error) {
	if opts.DataDir == "" {
		opts.DataDir = cfgpkg.DefaultDataDir()
	}
	db, err := pebblestore.Open(pebblestore.Options{
		DataDir:       filepath.Join(opts.DataDir, "store"),
		Fsync:         opts.Fsync,
		FsyncInterval: opts.FsyncInterval,
		Metrics:       opts.StorageMetrics,
	})
	if err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Nop()
	}
	return &Runtime{
		db:       db,
		config:   opts.Config,
		logger:   logger,
		observer: opts.FlushObserver,
		stamps:   stamp.NewGenerator(),
	}, nil
}

// Close closes underlying resources.
func (r *Runtime) Close() error {
	if r.db == nil {
		return nil
	}
	return r.db.Close()
}

// CheckHealth performs a simple storage health check.
func (r *Runtime) CheckHealth(ctx context.Context) error {
	if r.db == nil {
		return errors.New("db not open")
	}
	it, err := r.db.NewIter(nil)
	if err != nil {
		return err
	}
	return it.Close()
}

// EnsureNamespace provisions the namespace records are filed under.
func (r *Runtime) EnsureNamespace(name string) (namespace.Meta, error) {
	return namespace.Ensure(r.db, name)
}

// SetEnabled flips the persistence enable flag at runtime. Subsequent
// updates observe the new value.
func (r *Runtime) SetEnabled(enabled bool) {
	r.config.Enabled = enabled
}

// OpenStore builds the record store adapter over the shared DB.
func (r *Runtime) OpenStore() *logstore.Store {
	return logstore.New(r.db, logstore.Options{
		Namespace:   r.config.Namespace,
		Enabled:     func() bool { return r.config.Enabled },
		Compression: r.config.Compression,
		Stamps:      r.stamps,
		Logger:      r.logger.With(log.Component("logstore")),
	})
}

// OpenLogbook builds a logbook service over the shared store, configured
// from the runtime config.
func (r *Runtime) OpenLogbook() *logbook.Service {
	opts := []logbook.Option{
		logbook.WithLogger(r.logger.With(log.Component("logbook"))),
	}
	if r.config.BaseName != "" {
		opts = append(opts, logbook.WithBaseName(r.config.BaseName))
	}
	if r.config.MaxLogLength > 0 {
		opts = append(opts, logbook.WithMaxLogLength(r.config.MaxLogLength))
	}
	if r.config.RecentLimit > 0 {
		opts = append(opts, logbook.WithRecentLimit(r.config.RecentLimit))
	}
	if r.observer != nil {
		opts = append(opts, logbook.WithObserver(r.observer))
	}
	return logbook.New(r.OpenStore(), opts...)
}

// DB exposes the underlying DB for advanced operations (internal use only).
func (r *Runtime) DB() *pebblestore.DB { return r.db }

// Config returns the runtime configuration.
func (r *Runtime) Config() cfgpkg.Config { return r.config }
