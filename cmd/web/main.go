// The web binary serves a small landing page that tells visitors how to
// reach the SSH game server.
package main

import (
	_ "embed"
	"io"
	"log"
	"net"
	"net/http"
	"strings"

	"github.com/tomaspav/crtpong/internal/config"
)

//go:embed index.html
var landingPage string

func main() {
	host := config.GetEnv("WEB_HOST", "0.0.0.0")
	port := config.GetEnv("WEB_PORT", "8080")
	sshHost := config.GetEnv("SSH_DISPLAY_HOST", "pong.example.com")

	page := strings.ReplaceAll(landingPage, "{{.SSHHost}}", sshHost)

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = io.WriteString(w, page)
	})

	addr := net.JoinHostPort(host, port)
	log.Printf("Landing page on http://%s (ssh target %s)", addr, sshHost)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("web server: %v", err)
	}
}
