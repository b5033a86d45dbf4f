// Command tatum serves a live-reloading browser preview of a local markdown
// document. Images are inlined into the page and links between documents are
// routed back through the previewer.
package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/browser"
	"github.com/spf13/pflag"

	"github.com/elijah-potter/tatum/internal/config"
	"github.com/elijah-potter/tatum/internal/finder"
	"github.com/elijah-potter/tatum/internal/markdown"
	"github.com/elijah-potter/tatum/internal/server"
)

func main() {
	var (
		addr       string
		configPath string
		noOpen     bool
		noWatch    bool
		verbose    bool
	)
	pflag.StringVar(&addr, "addr", "", "address to listen on (overrides the config file)")
	pflag.StringVar(&configPath, "config", "", "path to a YAML config file")
	pflag.BoolVar(&noOpen, "no-open", false, "do not open the browser on startup")
	pflag.BoolVar(&noWatch, "no-watch", false, "disable live reload")
	pflag.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	pflag.Parse()

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			slog.Error("load config", "err", err)
			os.Exit(1)
		}
	}
	if addr != "" {
		cfg.Addr = addr
	}
	if noOpen {
		cfg.OpenBrowser = false
	}
	if noWatch {
		cfg.LiveReload = false
	}

	docPath, err := startDocument(pflag.Args())
	if err != nil {
		slog.Error("no document to preview", "err", err)
		os.Exit(1)
	}

	srv := server.New(markdown.NewRenderer(cfg.HighlightStyle), cfg.LiveReload)

	startURL := fmt.Sprintf("http://%s/?path=%s", browsableAddr(cfg.Addr), url.QueryEscape(docPath))
	slog.Info("serving", "addr", cfg.Addr, "doc", docPath, "live_reload", cfg.LiveReload)

	if cfg.OpenBrowser {
		go func() {
			time.Sleep(500 * time.Millisecond)
			if err := browser.OpenURL(startURL); err != nil {
				slog.Warn("open browser", "url", startURL, "err", err)
			}
		}()
	} else {
		fmt.Printf("Preview available at %s\n", startURL)
	}

	if err := http.ListenAndServe(cfg.Addr, srv.Handler()); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

// startDocument picks the document to preview: the positional argument when
// given, otherwise a README.md in the working directory.
func startDocument(args []string) (string, error) {
	if len(args) > 0 {
		return filepath.Abs(args[0])
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return finder.FindReadme(cwd)
}

// browsableAddr turns a wildcard listen address into one a browser can open.
func browsableAddr(addr string) string {
	host, port, found := strings.Cut(addr, ":")
	if !found {
		return addr
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return host + ":" + port
}
