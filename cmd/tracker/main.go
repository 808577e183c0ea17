package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"SKCCTracker/internal/api"
	"SKCCTracker/internal/award"
	"SKCCTracker/internal/config"
	"SKCCTracker/internal/ledger"
	"SKCCTracker/internal/model"
	"SKCCTracker/internal/report"
	"SKCCTracker/internal/roster"
	"SKCCTracker/internal/scheduler"
	"SKCCTracker/internal/tracker"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] SKCCTracker starting...")

	// .env is optional; real env vars win either way
	_ = godotenv.Load()

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Roster store
	urls := map[model.Tier]string{}
	for _, tier := range model.Tiers() {
		urls[tier] = cfg.RosterURL(tier)
	}
	fetcher := roster.NewHTTPFetcher(urls, cfg.Proxy)
	store, err := roster.NewStore(cfg.Roster.CacheDir, cfg.Roster.MaxAgeDays, fetcher)
	if err != nil {
		log.Fatalf("[FATAL] init roster store: %v", err)
	}
	log.Printf("[INFO] roster source: %s", fetcher.Name())

	// Contact ledger
	contacts, err := ledger.NewSQLiteLedger(cfg.Database.SQLitePath)
	if err != nil {
		log.Fatalf("[FATAL] open contact ledger: %v", err)
	}
	defer contacts.Close()

	// Award rules and aggregator
	op := award.Operator{
		Callsign:      cfg.Operator.Callsign,
		SKCCNumber:    cfg.Operator.SKCCNumber,
		JoinDate:      cfg.Operator.JoinDate,
		CenturionDate: cfg.Operator.CenturionDate,
		TribuneX8Date: cfg.Operator.TribuneX8Date,
		DXCCEntity:    cfg.Operator.DXCCEntity,
	}
	agg := tracker.NewAggregator(contacts, award.All(op, store))

	// Roster refresh: once at startup, then on the weekly cron
	sched := scheduler.NewScheduler(store)
	if err := sched.Register(cfg.Roster.RefreshCron); err != nil {
		log.Fatalf("[FATAL] register cron tasks: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	sched.RunNow(os.Getenv("FORCE_REFRESH") == "true")

	// Startup progress snapshot on the console
	if reports, err := agg.Refresh(); err != nil {
		log.Printf("[WARN] initial award refresh: %v", err)
	} else {
		fmt.Print(report.FormatProgress(reports))
	}

	// HTTP API for the logging frontend
	server := api.NewServer(agg, store)
	httpServer := &http.Server{
		Addr:    cfg.Server.ListenAddr,
		Handler: server.Handler(),
	}
	go func() {
		log.Printf("[INFO] listening on %s", cfg.Server.ListenAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[FATAL] http server: %v", err)
		}
	}()

	log.Println("[INFO] SKCCTracker is running. Press Ctrl+C to stop.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("[WARN] http shutdown: %v", err)
	}
	log.Println("[INFO] SKCCTracker stopped")
}
