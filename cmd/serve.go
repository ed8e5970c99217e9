package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ziadkadry99/layermap/internal/server"
	"github.com/ziadkadry99/layermap/internal/web"
)

var (
	servePort int
	serveOpen bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve LayerMap over HTTP",
	Long:  `Starts the LayerMap web server: the main view, the QR screen, the JSON API and the live websocket channel.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if servePort != 0 {
			cfg.Server.Port = servePort
		}

		renderer, err := newRenderer(cfg)
		if err != nil {
			return err
		}
		assets, err := newAssets(cfg)
		if err != nil {
			return fmt.Errorf("opening assets: %w", err)
		}

		srv := server.New(server.Config{
			Port:     cfg.Server.Port,
			AllowAll: cfg.Server.AllowAllOrigins,
		}, logger)

		site := web.New(web.Options{
			Renderer: renderer,
			Sessions: web.NewSessions(web.SessionOptions{
				Lifetime:   cfg.Session.Lifetime,
				CookieName: cfg.Session.CookieName,
			}),
			Assets:         assets,
			InitialSection: cfg.InitialSection(),
			PublicURL:      cfg.PublicURL,
			Logger:         logger,
		})
		site.RegisterRoutes(srv.Router())

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			logger.Info("shutting down server", zap.Int64("live_views", site.LiveViews()))
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("shutdown", zap.Error(err))
			}
		}()

		url := fmt.Sprintf("http://localhost:%d/", cfg.Server.Port)
		fmt.Fprintf(os.Stderr, "layermap %s serving on %s\n", Version, url)
		if serveOpen {
			openBrowser(url)
		}

		return srv.Start()
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "port to listen on (default from config)")
	serveCmd.Flags().BoolVar(&serveOpen, "open", false, "open the browser after starting")
	rootCmd.AddCommand(serveCmd)
}
