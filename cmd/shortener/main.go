package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/joshdurbin/url-shortener-client/internal/clipboard"
	"github.com/joshdurbin/url-shortener-client/internal/config"
	"github.com/joshdurbin/url-shortener-client/internal/controller"
	"github.com/joshdurbin/url-shortener-client/internal/domain"
	"github.com/joshdurbin/url-shortener-client/internal/i18n"
	"github.com/joshdurbin/url-shortener-client/internal/logger"
	"github.com/joshdurbin/url-shortener-client/internal/metrics"
	"github.com/joshdurbin/url-shortener-client/internal/qr"
	"github.com/joshdurbin/url-shortener-client/internal/repository"
	"github.com/joshdurbin/url-shortener-client/internal/repository/memory"
	"github.com/joshdurbin/url-shortener-client/internal/repository/sqlite"
	"github.com/joshdurbin/url-shortener-client/internal/service"
	"github.com/joshdurbin/url-shortener-client/internal/shortener"
	"github.com/joshdurbin/url-shortener-client/internal/transport/cli"
	"github.com/joshdurbin/url-shortener-client/internal/transport/client"
	httpTransport "github.com/joshdurbin/url-shortener-client/internal/transport/http"
	"github.com/joshdurbin/url-shortener-client/internal/tui"
)

// defaultTUILogFile keeps logs off the screen while the terminal UI runs
const defaultTUILogFile = "shortener.log"

var (
	cfg      *config.Config
	appStats = metrics.New()
)

var rootCmd = &cobra.Command{
	Use:               "shortener",
	Short:             "Client for a URL shortening service",
	Long:              "Shortens links through a shortening endpoint, shows the short link with a QR code and copies it to the clipboard",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

var shortenCmd = &cobra.Command{
	Use:   "shorten [URL]",
	Short: "Shorten a URL and print the short link",
	Args:  cobra.ExactArgs(1),
	RunE:  runShorten,
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the interactive terminal UI",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

var qrCmd = &cobra.Command{
	Use:   "qr [TEXT]",
	Short: "Render TEXT as a QR code",
	Args:  cobra.ExactArgs(1),
	RunE:  runQR,
}

var stubCmd = &cobra.Command{
	Use:   "stub",
	Short: "Start a development backend serving POST /shorten",
	Args:  cobra.NoArgs,
	RunE:  runStub,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "Config file (YAML)")
	rootCmd.PersistentFlags().StringP("server-url", "u", "http://localhost:8080", "Shortening endpoint base URL")
	rootCmd.PersistentFlags().Duration("timeout", client.DefaultTimeout, "Request timeout")
	rootCmd.PersistentFlags().String("lang", i18n.DefaultLanguage, "Interface language (ru, en)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level")
	rootCmd.PersistentFlags().String("log-file", "", "Log file (stderr when empty)")
	rootCmd.PersistentFlags().String("metrics-textfile", "", "Write metrics to this node-exporter textfile on exit")

	// Shorten command flags
	shortenCmd.Flags().Bool("copy", false, "Copy the short link to the clipboard")
	shortenCmd.Flags().Bool("qr", false, "Print a QR code of the short link")
	shortenCmd.Flags().String("qr-png", "", "Also write the QR code to this PNG file")
	shortenCmd.Flags().Bool("invert", false, "Invert QR colours for light terminals")

	// QR command flags
	qrCmd.Flags().StringP("out", "o", "", "Write the QR code to this PNG file")
	qrCmd.Flags().Bool("invert", false, "Invert QR colours for light terminals")

	tuiCmd.Flags().Bool("invert", false, "Invert QR colours for light terminals")

	// Stub command flags
	stubCmd.Flags().StringP("port", "p", "8080", "Listen port")
	stubCmd.Flags().String("base-url", "http://localhost:8080", "Base of the returned short links")
	stubCmd.Flags().String("db-path", "", "SQLite database file (in-memory storage when empty)")
	stubCmd.Flags().BoolP("verbose", "v", false, "Log request and error bodies")

	rootCmd.AddCommand(shortenCmd, tuiCmd, qrCmd, stubCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	configFile, _ := cmd.Flags().GetString("config")

	var err error
	cfg, err = config.Load(cmd.Flags(), configFile)
	if err != nil {
		return err
	}

	var outputs []string
	if cfg.Logging.File != "" {
		outputs = append(outputs, cfg.Logging.File)
	} else if cmd == tuiCmd {
		outputs = append(outputs, defaultTUILogFile)
	}
	if err := logger.Init(cfg.Logging.Level, outputs...); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	i18n.Init(cfg.UI.Language)
	return nil
}

func deps() controller.Deps {
	return controller.Deps{
		Shortener: client.NewClient(cfg.Client.ServerURL, cfg.Client.Timeout),
		Encoder:   qr.Encoder{},
		Clipboard: clipboard.System{},
		Legacy:    clipboard.NewOSC52(os.Stderr, clipboard.DetectMode()),
		Metrics:   appStats,
	}
}

func runShorten(cmd *cobra.Command, args []string) error {
	copyLink, _ := cmd.Flags().GetBool("copy")
	showQR, _ := cmd.Flags().GetBool("qr")
	qrFile, _ := cmd.Flags().GetString("qr-png")

	commands := cli.NewCommands(deps(), os.Stdout, os.Stderr)
	return commands.Shorten(cmd.Context(), args[0], cli.ShortenOptions{
		Copy:   copyLink,
		QR:     showQR,
		QRFile: qrFile,
		Invert: cfg.UI.InvertQR,
	})
}

func runQR(cmd *cobra.Command, args []string) error {
	out, _ := cmd.Flags().GetString("out")

	commands := cli.NewCommands(deps(), os.Stdout, os.Stderr)
	return commands.QR(cmd.Context(), args[0], out, cfg.UI.InvertQR)
}

func runTUI(cmd *cobra.Command, args []string) error {
	return tui.Run(cmd.Context(), deps(), tui.Options{InvertQR: cfg.UI.InvertQR})
}

func runStub(cmd *cobra.Command, args []string) error {
	var repo repository.URLRepository
	if cfg.Stub.DBPath != "" {
		sqliteRepo, err := sqlite.New(cfg.Stub.DBPath)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		repo = sqliteRepo
		logger.Log.Infow("using sqlite storage", "path", cfg.Stub.DBPath)
	} else {
		repo = memory.New()
		logger.Log.Info("using in-memory storage")
	}

	generator := shortener.NewRandomGenerator(shortener.DefaultCodeBytes)
	logger.Log.Infow("using short code generator", "type", generator.Type())

	urlShortener := service.NewURLShortener(repo, generator)
	defer func() {
		if err := urlShortener.Close(); err != nil {
			logger.Log.Errorw("error closing shortener", "error", err)
		}
	}()

	server := httpTransport.NewServer(urlShortener, cfg.Stub.Port, cfg.Stub.BaseURL, appStats, cfg.Stub.Verbose)

	// Set up graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Start()
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	case sig := <-sigChan:
		logger.Log.Infow("received signal, shutting down gracefully", "signal", sig)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Log.Errorw("error during server shutdown", "error", err)
		}
	}

	logger.Log.Info("server stopped")
	return nil
}

// shownToUser reports whether err was already presented by a page
func shownToUser(err error) bool {
	var validation *domain.ValidationError
	var remote *domain.RemoteError
	return errors.As(err, &validation) || errors.As(err, &remote)
}

func main() {
	err := rootCmd.Execute()

	if cfg != nil && cfg.Metrics.Textfile != "" {
		if writeErr := appStats.WriteTextfile(cfg.Metrics.Textfile); writeErr != nil {
			logger.Log.Errorw("failed to write metrics textfile", "path", cfg.Metrics.Textfile, "error", writeErr)
		}
	}
	if syncErr := logger.Sync(); syncErr != nil {
		fmt.Fprintln(os.Stderr, "failed to flush logs:", syncErr)
	}

	if err != nil {
		if !shownToUser(err) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
