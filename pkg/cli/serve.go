package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/podrelay/pkg/cli/config"
	controller "github.com/m-mizutani/podrelay/pkg/controller/http"
	"github.com/m-mizutani/podrelay/pkg/domain/interfaces"
	"github.com/m-mizutani/podrelay/pkg/infra/social"
	"github.com/m-mizutani/podrelay/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg config.Server
		showCfg   config.Show
		credsCfg  config.Credentials
		sentryCfg config.Sentry
		slackCfg  config.Slack
	)

	var flags []cli.Flag
	flags = append(flags, serverCfg.Flags()...)
	flags = append(flags, showCfg.Flags()...)
	flags = append(flags, credsCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)
	flags = append(flags, slackCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server receiving Acast webhooks",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			if err := credsCfg.Load(); err != nil {
				return err
			}

			flush, err := sentryCfg.Configure()
			if err != nil {
				return err
			}
			defer flush()

			logger.Info("Starting podrelay server",
				slog.String("addr", serverCfg.Addr),
				slog.Any("show", showCfg.Model()),
				slog.Any("credentials", credsCfg),
				slog.Bool("async_dispatch", serverCfg.AsyncDispatch),
				slog.Bool("sentry", sentryCfg.DSN != ""),
			)

			webhookUC := usecase.NewWebhook(
				newPublishers(&credsCfg),
				buildUseCaseOptions(&serverCfg, &showCfg, &slackCfg)...,
			)

			server, err := controller.NewServer(
				ctx,
				webhookUC,
				controller.WithAddr(serverCfg.Addr),
				controller.WithMaxBodyBytes(serverCfg.MaxBodyBytes),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}

// newPublishers returns publishers in the fixed order Twitter, Facebook,
// Instagram, LinkedIn, Pinterest
func newPublishers(creds *config.Credentials) []interfaces.Publisher {
	return []interfaces.Publisher{
		social.NewTwitter(creds.Twitter),
		social.NewFacebook(creds.Meta),
		social.NewInstagram(creds.Meta),
		social.NewLinkedIn(creds.LinkedIn),
		social.NewPinterest(creds.Pinterest),
	}
}

func buildUseCaseOptions(server *config.Server, show *config.Show, slack *config.Slack) []usecase.Option {
	opts := []usecase.Option{
		usecase.WithShow(show.Model()),
		usecase.WithAsyncDispatch(server.AsyncDispatch),
	}
	if reporter := slack.Reporter(); reporter != nil {
		opts = append(opts, usecase.WithReporter(reporter))
	}
	return opts
}
