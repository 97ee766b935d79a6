package display

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"image/png"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/damca/ficus/internal/httputil"
	"github.com/damca/ficus/internal/monitoring"
	"github.com/damca/ficus/internal/security"
)

//go:embed viewer.html
var viewerHTML embed.FS

var viewerTemplate = template.Must(template.ParseFS(viewerHTML, "viewer.html"))

// HTTPDisplayer serves the frame on a local HTTP address and blocks until the
// viewer presses Close (POST /close) or the context ends.
type HTTPDisplayer struct {
	// Addr is the listen address; "127.0.0.1:0" picks a free port.
	Addr string
	// OnListen, if set, receives the viewer URL once the server is up.
	OnListen func(url string)
}

// Show implements Displayer.
func (d *HTTPDisplayer) Show(ctx context.Context, f Frame) error {
	if f.Image == nil {
		return fmt.Errorf("http display: frame has no image")
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, f.Image); err != nil {
		return fmt.Errorf("encode frame: %w", err)
	}

	addr := d.Addr
	if addr == "" {
		addr = "127.0.0.1:0"
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("http display: listen on %s: %w", addr, err)
	}

	closed := make(chan struct{})
	var once sync.Once
	dismiss := func() { once.Do(func() { close(closed) }) }

	server := &http.Server{Handler: d.routes(f, buf.Bytes(), dismiss)}
	go func() {
		if err := server.Serve(ln); err != nil && err != http.ErrServerClosed {
			monitoring.Logf("http display: serve error: %v", err)
		}
	}()

	url := "http://" + ln.Addr().String() + "/"
	monitoring.Logf("Showing %q at %s", f.Title, url)
	if f.OnOpen != nil {
		f.OnOpen(noWindow{})
	}
	if d.OnListen != nil {
		d.OnListen(url)
	}

	var showErr error
	select {
	case <-closed:
	case <-ctx.Done():
		showErr = ctx.Err()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		monitoring.Logf("http display: shutdown error: %v", err)
		if err := server.Close(); err != nil {
			monitoring.Logf("http display: force close error: %v", err)
		}
	}
	return showErr
}

func (d *HTTPDisplayer) routes(f Frame, pngData []byte, dismiss func()) *http.ServeMux {
	b := f.Image.Bounds()
	page := struct {
		Title  string `json:"title"`
		Width  int    `json:"width"`
		Height int    `json:"height"`
	}{f.Title, b.Dx(), b.Dy()}

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			httputil.NotFound(w, "no such page: "+r.URL.Path)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := viewerTemplate.Execute(w, page); err != nil {
			monitoring.Logf("http display: render page: %v", err)
		}
	})
	mux.HandleFunc("/figure.png", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Header().Set("Content-Disposition",
			fmt.Sprintf("inline; filename=%q", security.SanitizeFilename(f.Title)+".png"))
		w.Write(pngData)
	})
	mux.HandleFunc("/frame.json", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, page)
	})
	mux.HandleFunc("/close", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			httputil.MethodNotAllowed(w, http.MethodPost)
			return
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "closed", "title": f.Title})
		dismiss()
	})
	return mux
}
