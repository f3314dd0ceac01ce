// Package http serves converted output during watch mode.
package http

import (
	"fmt"
	"log/slog"
	"net/http"
)

// Start serves the given directory on the given port, along with a
// /healthz endpoint. It blocks, so callers run it in a goroutine.
func Start(port int, dir string) {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	})
	mux.Handle("/", http.FileServer(http.Dir(dir)))

	addr := fmt.Sprintf(":%d", port)
	slog.Info("starting preview server", "addr", addr, "dir", dir)
	if err := http.ListenAndServe(addr, mux); err != nil {
		slog.Error("preview server failed", "err", err)
	}
}
