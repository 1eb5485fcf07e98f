// Searches for a query and prints the extracted hits as JSON.
//
//	go run ./cmd/search "samsung galaxy f13"
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/maltedev/flipkart-scraper/internal/fetch"
	"github.com/maltedev/flipkart-scraper/internal/parser"
	"github.com/maltedev/flipkart-scraper/internal/scraper"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: search <query>")
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	service := scraper.NewService(fetch.NewClient(&fetch.Options{Logger: logger}), parser.NewFlipkartParser(logger), logger)

	results, err := service.Search(context.Background(), strings.Join(os.Args[1:], " "))
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	out, _ := json.MarshalIndent(results, "", "  ")
	fmt.Println(string(out))
}
