package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"shopfront/internal/auth"
	"shopfront/internal/catalog"
	"shopfront/internal/config"
	"shopfront/internal/eventbus"
	"shopfront/internal/logging"
	"shopfront/internal/storage"
	"shopfront/internal/ui"
)

var (
	configPath string
	dbPath     string
	verbose    bool
	noMouse    bool
)

var rootCmd = &cobra.Command{
	Use:   "shopfront",
	Short: "Browse the demo storefront in your terminal",
	Long: `shopfront is a small terminal storefront.

Products are listed as cards with image carousels. Open a product to see its
details, flip through its images and leave a rated comment after logging in
with the demo account (user / user123).`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context())
	},
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to the config file (default: user config dir)")
	rootCmd.Flags().StringVar(&dbPath, "db", "", "path to the SQLite database (overrides storage.path)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
	rootCmd.Flags().BoolVar(&noMouse, "no-mouse", false, "disable mouse tracking")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// The file is read before the logger exists; the bus learns about it
	// once the UI is listening.
	configSvc := config.NewConfigService(configPath, nil)
	_, statErr := os.Stat(configSvc.Path())
	created := errors.Is(statErr, os.ErrNotExist)
	cfg, err := configSvc.Load()
	if err != nil {
		return err
	}
	if dbPath != "" {
		cfg.Storage.Path = dbPath
	}

	logger, err := logging.New(cfg.Log.Path, cfg.Log.Level, verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	logger.Info("starting", zap.String("config", configSvc.Path()), zap.String("db", cfg.Storage.Path))

	db, err := storage.Open(ctx, cfg.Storage.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	bus := eventbus.New(logger)
	defer bus.Close()

	store, err := catalog.NewStore(ctx, db, logger)
	if err != nil {
		return err
	}
	products, err := catalog.SeedProducts()
	if err != nil {
		return err
	}
	seeded, err := store.Seed(ctx, products)
	if err != nil {
		return err
	}
	if products, err = store.Products(ctx); err != nil {
		return err
	}
	catalogSvc := catalog.NewService(store, bus, logger)
	defer catalogSvc.Close()

	tokens, err := auth.NewTokenStore(ctx, db)
	if err != nil {
		return err
	}
	authSvc, err := auth.NewService(ctx, tokens, bus, logger)
	if err != nil {
		return err
	}

	model := ui.NewModel(bus, cfg, authSvc, store, logger)

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if cfg.UI.Mouse && !noMouse {
		opts = append(opts, tea.WithMouseAllMotion())
	}
	p := tea.NewProgram(model, opts...)
	model.SetProgram(p)

	// Domain events reach the UI as messages
	forward := func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	}
	for _, t := range []eventbus.EventType{
		eventbus.EventCommentAdded,
		eventbus.EventError,
		eventbus.EventLoggedIn,
		eventbus.EventLoggedOut,
		eventbus.EventCatalogReady,
		eventbus.EventConfigLoaded,
	} {
		unsub := bus.Subscribe(t, forward)
		defer unsub()
	}

	bus.Publish(eventbus.ConfigLoadedEvent{Path: configSvc.Path(), Created: created})
	bus.Publish(eventbus.CatalogReadyEvent{Products: products, Seeded: seeded})

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		logger.Error("program failed", zap.Error(err))
		return fmt.Errorf("error running program: %w", err)
	}
	logger.Info("exited normally")
	return nil
}
