// Terminal client for the rate endpoint. Mirrors the browser client's
// behavior: refresh, convert, display, and fall back to mock rates when the
// endpoint is unreachable.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/api-sage/currency-converter/internal/client"
	"github.com/api-sage/currency-converter/internal/config"
)

func main() {
	watch := flag.Bool("watch", false, "keep refreshing once per interval and reprint on every update")
	noAuto := flag.Bool("no-auto", false, "start with the auto-update gate disabled")
	flag.Parse()

	args := flag.Args()
	if len(args) != 3 {
		fmt.Fprintln(os.Stderr, "USAGE: converter [-watch] [-no-auto] <amount> <from> <to>")
		fmt.Fprintln(os.Stderr, "EXAMPLE: converter 100 USD JPY")
		os.Exit(2)
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	amount := args[0]
	from := strings.ToUpper(args[1])
	to := strings.ToUpper(args[2])

	ctrl := client.NewController(client.Config{
		BaseURL: cfg.APIBaseURL,
		Timeout: cfg.FeedTimeout,
	})
	defer ctrl.Close()

	printState := func() {
		conv := ctrl.Convert(amount, from, to)
		fmt.Printf("\n%s\n", conv.Result)
		if conv.Rate != "" {
			fmt.Println(conv.Rate)
		}
		fmt.Printf("source: %s (%s)\n", ctrl.Source(), ctrl.Mode())
		if last := ctrl.LastUpdated(); !last.IsZero() {
			fmt.Printf("last updated: %s\n", last.Format("15:04:05"))
		}
	}

	printBTC(cfg)

	if !*watch {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.FeedTimeout)
		ctrl.Refresh(ctx)
		cancel()
		printState()
		return
	}

	ctrl.OnUpdate = printState

	scheduler := client.NewScheduler(cfg.RefreshInterval, func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.FeedTimeout)
		defer cancel()
		ctrl.Refresh(ctx)
	})
	if *noAuto {
		scheduler.SetEnabled(false)
	}

	scheduler.Start()
	defer scheduler.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
}

func printBTC(cfg config.Config) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.FeedTimeout)
	defer cancel()

	price, err := client.NewTickerClient(cfg.FeedTimeout).BTCPrice(ctx)
	if err != nil {
		fmt.Println("BTC/USD: Unavailable")
		return
	}
	fmt.Printf("BTC/USD: $%s\n", price.StringFixed(2))
}
