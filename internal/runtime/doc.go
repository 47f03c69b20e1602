// Package runtime wires storage, config, namespaces, and the logbook into a
// single-node instance. It exposes Open/Close, a basic health check, and
// helpers to provision namespaces and build logbook services over the shared
// store.
//
// Example:
//
//	cfg := config.Default()
//	rt, _ := runtime.Open(runtime.Options{DataDir: "./data", Fsync: pebblestore.FsyncModeAlways, Config: cfg})
//	defer rt.Close()
//	_, _ = rt.EnsureNamespace(cfg.Namespace)
//	svc := rt.OpenLogbook()
//	_ = svc.Append("hello").Flush(context.Background())
package runtime
