package main

import (
	"context"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	cfgpkg "github.com/aldoforce/apex-logger-services/internal/config"
	"github.com/aldoforce/apex-logger-services/internal/logbook"
	"github.com/aldoforce/apex-logger-services/internal/metrics"
	"github.com/aldoforce/apex-logger-services/internal/runtime"
	pebblestore "github.com/aldoforce/apex-logger-services/internal/storage/pebble"
	logpkg "github.com/aldoforce/apex-logger-services/pkg/log"
)

func main() {
	logger := buildLogger()
	logpkg.RedirectStdLog(logger)

	rootCmd := &cobra.Command{
		Use:   "apexlog",
		Short: "Buffered size-rotating log persistence CLI",
		Long:  "apexlog appends timestamped messages into size-rotated records in a local store and inspects them.",
	}

	// namespace create
	nsCmd := &cobra.Command{Use: "namespace", Short: "Namespace operations"}
	nsCreateCmd := &cobra.Command{
		Use:   "create",
		Short: "Provision the namespace log records are filed under",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime(cmd, logger)
			if err != nil {
				return err
			}
			defer rt.Close()
			name, _ := cmd.Flags().GetString("name")
			if name == "" {
				name = rt.Config().Namespace
			}
			meta, err := rt.EnsureNamespace(name)
			if err != nil {
				return err
			}
			fmt.Printf("namespace %q ready\n", meta.Name)
			return nil
		},
	}
	nsCreateCmd.Flags().String("name", "", "Namespace name (default from config)")
	addStoreFlags(nsCreateCmd)
	nsCmd.AddCommand(nsCreateCmd)
	rootCmd.AddCommand(nsCmd)

	// append
	appendCmd := &cobra.Command{
		Use:   "append",
		Short: "Append messages and flush them into the current record",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime(cmd, logger)
			if err != nil {
				return err
			}
			defer rt.Close()

			msgs, _ := cmd.Flags().GetStringArray("message")
			section, _ := cmd.Flags().GetBool("section")
			if len(msgs) == 0 && len(args) == 0 {
				return fmt.Errorf("nothing to append; use -m or positional arguments")
			}

			svc := rt.OpenLogbook()
			if section {
				svc.AppendSection()
			}
			for _, m := range append(msgs, args...) {
				svc.Append(m)
			}
			if err := svc.Flush(context.Background()); err != nil {
				return fmt.Errorf("flush: %w", err)
			}
			return nil
		},
	}
	appendCmd.Flags().StringArrayP("message", "m", nil, "Message to append (repeatable)")
	appendCmd.Flags().Bool("section", false, "Open a new section before the messages")
	addStoreFlags(appendCmd)
	rootCmd.AddCommand(appendCmd)

	// log show / log list
	logCmd := &cobra.Command{Use: "log", Short: "Inspect persisted records"}
	logShowCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the current record body",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime(cmd, logger)
			if err != nil {
				return err
			}
			defer rt.Close()

			rec, err := rt.OpenLogbook().Current(context.Background())
			if err != nil {
				return err
			}
			if rec == nil {
				fmt.Println("no records")
				return nil
			}
			fmt.Printf("%s (%s)\n", rec.DisplayName, rec.SortKey)
			fmt.Print(rec.Body)
			return nil
		},
	}
	addStoreFlags(logShowCmd)
	logListCmd := &cobra.Command{
		Use:   "list",
		Short: "List recent records, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime(cmd, logger)
			if err != nil {
				return err
			}
			defer rt.Close()

			infos, err := rt.OpenLogbook().Recent(context.Background())
			if err != nil {
				return err
			}
			if len(infos) == 0 {
				fmt.Println("no records")
				return nil
			}
			for _, info := range infos {
				fmt.Printf("%s\t%d bytes\t%s\n", info.SortKey, info.BodyLen, info.DisplayName)
			}
			return nil
		},
	}
	addStoreFlags(logListCmd)
	logCmd.AddCommand(logShowCmd, logListCmd)
	rootCmd.AddCommand(logCmd)

	// prune
	pruneCmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete old records past the newest N",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := openRuntime(cmd, logger)
			if err != nil {
				return err
			}
			defer rt.Close()

			keep, _ := cmd.Flags().GetInt("keep")
			base, _ := cmd.Flags().GetString("base-name")
			if base == "" {
				base = rt.Config().BaseName
			}
			deleted, err := rt.OpenStore().Prune(context.Background(), base, keep)
			if err != nil {
				return err
			}
			fmt.Printf("deleted %d record(s)\n", deleted)
			return nil
		},
	}
	pruneCmd.Flags().Int("keep", logbook.DefaultRecentLimit, "Number of newest records to keep")
	addStoreFlags(pruneCmd)
	rootCmd.AddCommand(pruneCmd)

	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", logpkg.Err(err))
		os.Exit(1)
	}
}

func buildLogger() logpkg.Logger {
	cfg := &logpkg.Config{
		Level:  os.Getenv("APEXLOG_LOG_LEVEL"),
		Format: os.Getenv("APEXLOG_LOG_FORMAT"),
	}
	logger, err := logpkg.ApplyConfig(cfg)
	if err != nil {
		logger = logpkg.NewLogger(logpkg.WithFormatter(&logpkg.TextFormatter{}))
	}
	return logger
}

func addStoreFlags(cmd *cobra.Command) {
	cmd.Flags().String("data-dir", "", "Data directory (default: OS-specific application data directory)")
	cmd.Flags().String("config", "", "Config file path (JSON or YAML)")
	cmd.Flags().String("fsync", "always", "Fsync mode: always|interval|never")
	cmd.Flags().String("namespace", "", "Namespace override")
	cmd.Flags().String("base-name", "", "Log family name override")
	cmd.Flags().Int("max-length", 0, "Record rotation threshold override")
	cmd.Flags().Bool("disabled", false, "Suppress persistence (flushes still clear the buffer)")
}

func openRuntime(cmd *cobra.Command, logger logpkg.Logger) (*runtime.Runtime, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := cfgpkg.Load(configPath)
	if err != nil {
		return nil, err
	}
	cfgpkg.FromEnv(&cfg)

	if v, _ := cmd.Flags().GetString("namespace"); v != "" {
		cfg.Namespace = v
	}
	if v, _ := cmd.Flags().GetString("base-name"); v != "" {
		cfg.BaseName = v
	}
	if v, _ := cmd.Flags().GetInt("max-length"); v > 0 {
		cfg.MaxLogLength = v
	}
	if v, _ := cmd.Flags().GetBool("disabled"); v {
		cfg.Enabled = false
	}

	mode := pebblestore.FsyncModeAlways
	switch v, _ := cmd.Flags().GetString("fsync"); v {
	case "always", "":
	case "interval":
		mode = pebblestore.FsyncModeInterval
	case "never":
		mode = pebblestore.FsyncModeNever
	default:
		return nil, fmt.Errorf("invalid --fsync; use always|interval|never")
	}

	dataDir, _ := cmd.Flags().GetString("data-dir")
	reg := prometheus.NewRegistry()
	return runtime.Open(runtime.Options{
		DataDir:        dataDir,
		Fsync:          mode,
		Config:         cfg,
		Logger:         logger,
		StorageMetrics: metrics.NewStorageMetrics(reg),
		FlushObserver:  metrics.NewFlushMetrics(reg),
	})
}
