package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	auction "fantasy-auction/internal/auctionService"
	"fantasy-auction/internal/catalog"
	"fantasy-auction/internal/config"
	"fantasy-auction/internal/events"
	"fantasy-auction/internal/repository"
	"fantasy-auction/internal/scheduler"
	"fantasy-auction/internal/server"
	"fantasy-auction/utils"
)

func main() {
	cfg := config.Load()

	repo := repository.NewMemoryRepo()
	if err := catalog.Seed(repo); err != nil {
		utils.Fatal("failed to seed catalog", map[string]any{"error": err.Error()})
	}

	hub := events.NewHub()
	auctionSvc := auction.NewAuctionService(repo, hub, auction.Config{
		RoundDuration:     cfg.RoundDuration,
		MinParticipants:   cfg.MinParticipants,
		MaxParticipants:   cfg.MaxParticipants,
		DefaultBudget:     cfg.DefaultBudget,
		DefaultMinimumBid: cfg.DefaultMinimumBid,
		JoinCodeAttempts:  cfg.JoinCodeAttempts,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sweeper := scheduler.NewSweeper(auctionSvc, cfg.SweepInterval)
	go sweeper.Run(ctx)

	router := server.SetupRouter(auctionSvc, hub)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: router,
	}

	go func() {
		utils.Info("starting auction server", map[string]any{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Fatal("server failed", map[string]any{"error": err.Error()})
		}
	}()

	<-ctx.Done()
	utils.Info("shutting down", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.Error("server shutdown failed", map[string]any{"error": err.Error()})
	}
	hub.Close()
}
