package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"crowdfund/internal/adapter/clock"
	httpadapter "crowdfund/internal/adapter/http"
	"crowdfund/internal/adapter/metrics"
	"crowdfund/internal/adapter/usecase"
	"crowdfund/internal/auth"
	"crowdfund/internal/config"
	"crowdfund/internal/core/domain"
	"crowdfund/internal/db"
)

func serveCommand() *cobra.Command {
	var (
		fundActors []string
		fundAmount string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "start the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			var amount domain.Amount
			if len(fundActors) > 0 {
				if amount, err = domain.ParseAmount(fundAmount); err != nil {
					return fmt.Errorf("fund amount: %w", err)
				}
			}
			return serve(cmd.Context(), cfg, fundActors, amount)
		},
	}
	cmd.Flags().StringSliceVar(&fundActors, "fund", nil, "actors to credit with external funds on start")
	cmd.Flags().StringVar(&fundAmount, "fund-amount", "1000000000000000000", "amount credited to each --fund actor")
	return cmd
}

// serve loads the campaign, starts the HTTP server and blocks until a
// termination signal arrives, then shuts the server down gracefully.
func serve(ctx context.Context, cfg config.Config, fundActors []string, fundAmount domain.Amount) error {
	logger := cfg.Log.NewLogger(os.Stdout).With(slog.String("env", cfg.Env))

	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	st, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer st.close()

	if len(fundActors) > 0 {
		if err = db.Seed(ctx, st.custody, actorIDs(fundActors), fundAmount); err != nil {
			return fmt.Errorf("fund actors: %w", err)
		}
	}

	clk := clock.System{}
	campaign, err := usecase.LoadCampaign(ctx, st.journal, clk, usecase.CampaignParams{
		ID:       cfg.Campaign.ID,
		Owner:    domain.ActorID(cfg.Campaign.Owner),
		Duration: cfg.Campaign.Duration,
		Goal:     domain.Amount(cfg.Campaign.Goal),
	})
	if err != nil {
		return fmt.Errorf("load campaign: %w", err)
	}
	logger.Info("campaign loaded",
		slog.String("campaign_id", campaign.ID.String()),
		slog.String("owner", string(campaign.Owner)),
		slog.String("raised", campaign.Raised().String()),
		slog.Time("deadline", campaign.Deadline))

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	uc := usecase.NewCampaignUseCase(campaign, clk, st.custody, st.journal, logger)
	svc := metrics.NewCampaignUseCase(uc, reg)
	tokens := auth.NewTokens(cfg.Auth.Secret, cfg.Auth.Issuer, cfg.Auth.TokenTTL)

	router := chi.NewRouter()
	router.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	router.Mount("/", httpadapter.NewHandler(svc, tokens, logger).Router())

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err = <-errCh:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancelShutdown()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		return err
	}
	if err = uc.Flush(shutdownCtx); err != nil {
		logger.Error("unrecorded ledger entries at shutdown", slog.Any("error", err))
		return err
	}
	logger.Info("server gracefully stopped")
	return nil
}

func actorIDs(in []string) []domain.ActorID {
	out := make([]domain.ActorID, 0, len(in))
	for _, a := range in {
		out = append(out, domain.ActorID(a))
	}
	return out
}
