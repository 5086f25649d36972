package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ptitevents/eventapp/config"
	"github.com/ptitevents/eventapp/internal/application"
	"github.com/ptitevents/eventapp/internal/clock"
	"github.com/ptitevents/eventapp/internal/infrastructure/snapshot"
	"github.com/ptitevents/eventapp/pkg/helpers"
)

// main wires the core together the way a UI shell would: one store, opened
// at process start, injected everywhere. The console render below stands in
// for the presentation layer, which re-queries the store on every tick.
func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)

	repo := snapshot.NewFileRepository(cfg.SnapshotPath)
	clk := clock.NewSystem()
	creds := helpers.SchemeByName(cfg.CredentialScheme)

	store, err := application.Open(repo, clk, creds, logger)
	if err != nil {
		logger.WithError(err).Fatal("failed to open store")
	}

	if cur := store.Current(); cur != nil {
		fmt.Printf("signed in as %s (%s)\n", cur.Username, cur.Role)
	} else {
		fmt.Println("no active session")
	}

	renderSections(store)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	tick := time.NewTicker(cfg.TickInterval)
	defer tick.Stop()
	for {
		select {
		case <-tick.C:
			renderCountdowns(store)
		case <-quit:
			logger.Info("shutting down")
			return
		}
	}
}

func renderSections(store *application.Store) {
	fmt.Println("ongoing events:")
	for _, ev := range store.OngoingEvents() {
		fmt.Printf("  %s  %s - %s  [%d joined]\n", ev.Title, ev.StartDate, ev.EndDate, len(ev.Participants))
	}
	fmt.Println("ended events:")
	for _, ev := range store.EndedEvents() {
		fmt.Printf("  %s  %s - %s\n", ev.Title, ev.StartDate, ev.EndDate)
	}
}

func renderCountdowns(store *application.Store) {
	for _, ev := range store.OngoingEvents() {
		if label := store.RemainingLabel(ev); label != "" {
			fmt.Printf("%s: %s\n", ev.Title, label)
		}
	}
}
