package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rsilvagit/ajudaja/internal/browse"
	"github.com/rsilvagit/ajudaja/internal/cache"
	"github.com/rsilvagit/ajudaja/internal/catalog"
	"github.com/rsilvagit/ajudaja/internal/config"
	"github.com/rsilvagit/ajudaja/internal/geo"
	"github.com/rsilvagit/ajudaja/internal/httpclient"
	"github.com/rsilvagit/ajudaja/internal/logging"
	"github.com/rsilvagit/ajudaja/internal/preview"
	"github.com/rsilvagit/ajudaja/internal/submit"
	"github.com/rsilvagit/ajudaja/internal/theme"
)

// App holds the application dependencies
type App struct {
	cfg       *config.Config
	logger    *zap.Logger
	cache     *cache.Cache
	catalog   *catalog.Service
	geo       *geo.Client
	loader    *browse.Loader
	submitter *submit.Submitter
	previews  *preview.Fetcher
	theme     theme.Theme
	ctx       context.Context
}

var (
	configPath string
	logLevel   string
	app        *App
)

func main() {
	config.LoadEnv(".env")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := &cobra.Command{
		Use:   "ajudaja",
		Short: "AjudaJá - encontre oportunidades de voluntariado",
		Long:  `Navegue por oportunidades de voluntariado e doações, filtre por categoria, estado ou texto e cadastre-se como voluntário.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp(ctx, cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app == nil {
				return
			}
			if app.cache != nil {
				app.cache.Close()
			}
			if app.logger != nil {
				app.logger.Sync()
			}
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI()
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Arquivo de configuração (padrão: "+config.DefaultPath+" se existir)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Nível de log: debug, info, warn, error")

	rootCmd.AddCommand(listCmd())
	rootCmd.AddCommand(featuredCmd())
	rootCmd.AddCommand(showCmd())
	rootCmd.AddCommand(statesCmd())
	rootCmd.AddCommand(citiesCmd())
	rootCmd.AddCommand(categoriesCmd())
	rootCmd.AddCommand(applyCmd())
	rootCmd.AddCommand(aboutCmd())
	rootCmd.AddCommand(tuiCmd())

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// initApp sets up config, logger and services
func initApp(ctx context.Context, cmd *cobra.Command) error {
	var err error
	app = &App{ctx: ctx}

	app.cfg, err = config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if logLevel != "" {
		app.cfg.Log.Level = logLevel
	}

	// The TUI owns the terminal, so it only logs to a file.
	interactive := cmd.Name() == "tui" || cmd == cmd.Root()
	app.logger, err = logging.New(logging.Options{
		Level:   app.cfg.Log.Level,
		File:    app.cfg.Log.File,
		Console: !interactive,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	app.logger.Debug("Configuration loaded", zap.String("command", cmd.Name()))

	mode, err := theme.ParseMode(app.cfg.Theme)
	if err != nil {
		return err
	}
	app.theme = theme.New(mode)

	client, err := httpclient.New(httpclient.Options{
		ProxyURL:   app.cfg.HTTP.ProxyURL,
		Timeout:    app.cfg.IBGE.Timeout,
		MinDelay:   app.cfg.HTTP.MinDelay,
		MaxDelay:   app.cfg.HTTP.MaxDelay,
		MaxRetries: app.cfg.HTTP.MaxRetries,
		Backoff:    app.cfg.HTTP.Backoff,
		Logger:     app.logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create http client: %w", err)
	}

	geoOpts := []geo.Option{
		geo.WithBaseURL(app.cfg.IBGE.BaseURL),
		geo.WithLogger(app.logger),
	}
	if app.cfg.Cache.RedisURL != "" {
		app.cache, err = cache.New(app.cfg.Cache.RedisURL, app.cfg.Cache.TTL)
		if err != nil {
			// Lookups still work without the cache.
			app.logger.Warn("Redis cache disabled", zap.Error(err))
		} else {
			geoOpts = append(geoOpts, geo.WithCache(app.cache))
		}
	}

	app.catalog = catalog.New()
	app.geo = geo.New(client, geoOpts...)
	app.loader = browse.NewLoader(app.catalog, app.geo)
	app.submitter = submit.New(app.cfg.Submit.Delay, app.logger)
	app.previews = preview.NewFetcher(client)
	return nil
}
