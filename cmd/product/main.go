// Fetches one product page and prints the extracted details as JSON.
//
//	go run ./cmd/product "https://www.flipkart.com/samsung-galaxy-f13-waterfall-blue-64-gb/p/itm583ef432b2b0c"
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/maltedev/flipkart-scraper/internal/fetch"
	"github.com/maltedev/flipkart-scraper/internal/parser"
	"github.com/maltedev/flipkart-scraper/internal/scraper"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: product <product-url>")
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	service := scraper.NewService(fetch.NewClient(&fetch.Options{Logger: logger}), parser.NewFlipkartParser(logger), logger)

	details, err := service.Product(context.Background(), os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	out, _ := json.MarshalIndent(details, "", "  ")
	fmt.Println(string(out))
}
