package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/chantierhq/chantier/internal/auth"
	"github.com/chantierhq/chantier/internal/config"
	"github.com/chantierhq/chantier/internal/db"
	"github.com/chantierhq/chantier/internal/document"
	"github.com/chantierhq/chantier/internal/notify"
	"github.com/chantierhq/chantier/internal/notify/discord"
	"github.com/chantierhq/chantier/internal/notify/slack"
	"github.com/chantierhq/chantier/internal/server"
	"github.com/chantierhq/chantier/internal/storage"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var (
		configPath string
		port       int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the Chantier HTTP server",
		Long:  "Serves the public contact endpoint, the admin API and uploaded documents.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, configPath, port)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "chantier.yaml", "path to Chantier config file")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "port to listen on (overrides config)")
	return cmd
}

func runServe(cmd *cobra.Command, configPath string, port int) error {
	out := cmd.OutOrStdout()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if port == 0 {
		port = cfg.Server.Port
	}

	gormDB, err := db.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to %s: %w", cfg.Database.Database, err)
	}

	blobs, err := storage.NewDiskStore(cfg.Storage.Dir, cfg.Storage.BaseURL)
	if err != nil {
		return err
	}

	notifiers, err := buildNotifiers(cfg)
	if err != nil {
		return err
	}
	defer func() {
		for _, n := range notifiers {
			n.Close()
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		fmt.Fprintf(out, "\nReceived %s, shutting down...\n", sig)
		cancel()
	}()

	return server.Start(ctx, server.Opts{
		DB:        gormDB,
		Gate:      auth.NewGate(gormDB, time.Duration(cfg.Session.TTLHours)*time.Hour, nil),
		Documents: document.NewService(gormDB, blobs),
		Notifiers: notifiers,
		Port:      port,
		FilesDir:  cfg.Storage.Dir,
		Out:       out,
	})
}

// buildNotifiers creates a notifier per configured platform. Platforms
// without credentials are skipped.
func buildNotifiers(cfg *config.Config) ([]notify.Notifier, error) {
	var notifiers []notify.Notifier

	if cfg.Notify.Slack.BotToken != "" {
		n, err := slack.New(slack.Opts{
			BotToken:  cfg.Notify.Slack.BotToken,
			ChannelID: cfg.Notify.Slack.ChannelID,
		})
		if err != nil {
			return nil, err
		}
		notifiers = append(notifiers, n)
	}

	if cfg.Notify.Discord.BotToken != "" {
		n, err := discord.New(discord.Opts{
			BotToken:  cfg.Notify.Discord.BotToken,
			ChannelID: cfg.Notify.Discord.ChannelID,
		})
		if err != nil {
			return nil, err
		}
		notifiers = append(notifiers, n)
	}

	return notifiers, nil
}
