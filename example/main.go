// Command example serves the embedded locale payloads over HTTP with chi and
// renders a few translations through engines fetching from that server, the
// same round trip a UI component makes against a locale CDN.
package main

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/i18n"
)

//go:embed locales/*.json
var localeFiles embed.FS

func main() {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	locales, err := fs.Sub(localeFiles, "locales")
	if err != nil {
		log.Fatal(err)
	}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Mount("/locales", http.StripPrefix("/locales", http.FileServerFS(locales)))

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		log.Fatal(err)
	}
	srv := &http.Server{Handler: r, ReadHeaderTimeout: 5 * time.Second}
	go srv.Serve(ln)
	defer srv.Shutdown(ctx)

	store, err := i18n.NewStore(i18n.WithStoreLogger(logger))
	if err != nil {
		log.Fatal(err)
	}
	if err := store.RegisterNamespace("shop", "http://"+ln.Addr().String()+"/locales"); err != nil {
		log.Fatal(err)
	}

	cart, err := i18n.New("cart", i18n.WithStore(store), i18n.WithNamespace("shop"))
	if err != nil {
		log.Fatal(err)
	}
	header, err := i18n.New("header", i18n.WithStore(store), i18n.WithNamespace("shop"))
	if err != nil {
		log.Fatal(err)
	}

	locale := i18n.DetectLanguage(os.Getenv("ACCEPT_LANGUAGE"), []string{"en", "fr"})

	for _, current := range []string{locale, "fr"} {
		if err := cart.Load(ctx, "", current); err != nil {
			log.Fatal(err)
		}
		if err := header.Load(ctx, "", current); err != nil {
			log.Fatal(err)
		}

		fmt.Printf("--- %s ---\n", current)
		fmt.Println(header.T("welcome", i18n.Positional{"John"}))
		fmt.Println(cart.T("greeting", i18n.Named{"name": "John"}))
		for _, count := range []int{0, 1, 3} {
			fmt.Println(cart.T("items", i18n.Named{"count": count}))
		}
		fmt.Println(cart.T("checkout"))
	}
}
