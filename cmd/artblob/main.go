package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/genricoloni/artblob/internal/config"
	"github.com/genricoloni/artblob/internal/desktop"
	"github.com/genricoloni/artblob/internal/domain"
	"github.com/genricoloni/artblob/internal/engine"
	"github.com/genricoloni/artblob/internal/monitor"
	"github.com/genricoloni/artblob/internal/processor"
	"github.com/genricoloni/artblob/internal/renderer"
	"github.com/genricoloni/artblob/internal/status"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

const stopTimeout = 10 * time.Second

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "artblob",
		Short:        "Show what an Acoustics server is playing",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := config.NewViper(cmd.Flags())
			if err != nil {
				return err
			}
			return run(cmd.Context(), v)
		},
	}
	config.RegisterFlags(cmd.Flags())
	return cmd
}

func run(parent context.Context, v *viper.Viper) error {
	app := fx.New(
		// Logger configuration
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		AppOptions(v),
	)

	// Handle graceful shutdown
	ctx, cancel := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		return err
	}

	// Wait for interrupt signal
	<-ctx.Done()

	stopCtx, stopCancel := context.WithTimeout(context.Background(), stopTimeout)
	defer stopCancel()
	return app.Stop(stopCtx)
}

// AppOptions wires the application graph around an already loaded viper instance
func AppOptions(v *viper.Viper) fx.Option {
	return fx.Options(
		fx.Supply(v),

		// Provide dependencies
		fx.Provide(
			newLogger,
			fx.Annotate(config.NewAppConfig, fx.As(new(domain.Config))),
			fx.Annotate(status.NewFromConfig, fx.As(new(domain.StatusClient))),
			fx.Annotate(processor.NewArtwork, fx.As(new(domain.ArtworkProcessor))),
			newMonitor,
			desktop.NewBus,
			desktop.NewScreenResolution,
			newRenderer,
			desktop.NewControlService,
			engine.NewEngine,
		),

		// Lifecycle hooks
		fx.Invoke(registerHooks),
	)
}

// newLogger creates a new zap logger instance
func newLogger(v *viper.Viper) (*zap.Logger, error) {
	if v.GetBool("debug") {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func newMonitor(logger *zap.Logger, cfg domain.Config, client domain.StatusClient, proc domain.ArtworkProcessor) domain.Monitor {
	return monitor.NewPlaybackMonitor(logger, client, proc, monitor.OptionsFromConfig(cfg))
}

// newRenderer combines the renderers enabled in the config.
// The log renderer is always present so a headless run still shows activity.
func newRenderer(logger *zap.Logger, cfg domain.Config, bus *desktop.Bus, screen *domain.ScreenResolution) domain.Renderer {
	renderers := []domain.Renderer{renderer.NewLogRenderer(logger)}

	if dir := cfg.GetOutputDir(); dir != "" {
		renderers = append(renderers,
			renderer.NewFileRenderer(logger, dir, cfg.GetSize(), cfg.GetArtAlign(), screen))
	}
	if cfg.NotifyEnabled() {
		renderers = append(renderers, renderer.NewNotifyRenderer(logger, bus))
	}

	return renderer.NewMulti(renderers...)
}

// registerHooks sets up application lifecycle hooks
func registerHooks(
	lc fx.Lifecycle,
	logger *zap.Logger,
	cfg domain.Config,
	e *engine.Engine,
	ctl *desktop.ControlService,
	bus *desktop.Bus,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("Artblob Started")
			if err := e.Start(ctx); err != nil {
				return err
			}
			if cfg.ControlEnabled() {
				// Playback control is optional, the overlay works without it
				if err := ctl.Start(ctx); err != nil {
					logger.Warn("Control service unavailable", zap.Error(err))
				}
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Shutting down")
			err := e.Stop(ctx)
			if cerr := bus.Close(); cerr != nil {
				logger.Warn("Failed to close session bus", zap.Error(cerr))
			}
			return err
		},
	})
}
