package main

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"github.com/willbeason/mandelbrot/pkg/palette"
	"github.com/willbeason/mandelbrot/pkg/viewer"
)

//go:embed static
var static embed.FS

func serveCmd() *cobra.Command {
	opts := newOptions()
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve an interactive viewer over HTTP and websockets",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			// Fail on bad flags before listening.
			if _, err := opts.newSession(palette.Seeds{}); err != nil {
				return err
			}

			h, err := newServer(opts, opts.seeds())
			if err != nil {
				return err
			}

			srv := &http.Server{
				Addr:              addr,
				Handler:           h,
				ReadHeaderTimeout: 5 * time.Second,
			}

			return listenAndServe(cmd.Context(), srv)
		},
	}

	opts.addFlags(cmd.Flags())
	cmd.Flags().StringVar(&addr, "addr", ":8080", "address to listen on")

	return cmd
}

// listenAndServe runs srv until ctx is done.
func listenAndServe(ctx context.Context, srv *http.Server) error {
	errs := make(chan error, 1)
	go func() {
		log.Printf("listening on http://localhost%s", srv.Addr)
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return fmt.Errorf("httpServer: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	log.Printf("shutting down")
	err := srv.Shutdown(shutdownCtx)
	if err != nil {
		return fmt.Errorf("httpServer.Shutdown: %w", err)
	}

	err = <-errs
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// server hands out one viewer session per websocket connection. All sessions
// share the seeds drawn at startup.
type server struct {
	opts  *options
	seeds palette.Seeds
}

func newServer(opts *options, seeds palette.Seeds) (http.Handler, error) {
	s := &server{opts: opts, seeds: seeds}

	root, err := fs.Sub(static, "static")
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.websocketHandler)
	mux.HandleFunc("/image.png", s.imageHandler)
	mux.Handle("/", http.FileServer(http.FS(root)))

	return mux, nil
}

func (s *server) newSession() (*viewer.Session, error) {
	return s.opts.newSession(s.seeds)
}

// imageHandler renders a single image. The query may override the
// parameters with preset, x, y, scale, limit and palette.
func (s *server) imageHandler(w http.ResponseWriter, r *http.Request) {
	sess, err := s.newSession()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	err = applyQuery(sess, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	grid, err := sess.Render(r.Context())
	if err != nil {
		log.Printf("render: %v", err)
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	var buf bytes.Buffer
	err = grid.EncodePNG(&buf)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	_, err = w.Write(buf.Bytes())
	if err != nil {
		log.Printf("writing image: %v", err)
	}
}

func applyQuery(sess *viewer.Session, r *http.Request) error {
	q := r.URL.Query()

	if name := q.Get("preset"); name != "" {
		if err := sess.SelectPreset(name); err != nil {
			return err
		}
	}

	if q.Has("x") || q.Has("y") || q.Has("scale") || q.Has("limit") {
		p := sess.Snapshot().Params
		if q.Has("x") {
			p.X = q.Get("x")
		}
		if q.Has("y") {
			p.Y = q.Get("y")
		}
		if q.Has("scale") {
			p.Scale = q.Get("scale")
		}
		if q.Has("limit") {
			p.Limit = q.Get("limit")
		}
		if err := sess.Recompute(p); err != nil {
			return err
		}
	}

	if name := q.Get("palette"); name != "" {
		if err := sess.SelectPalette(name); err != nil {
			return err
		}
	}

	return nil
}
