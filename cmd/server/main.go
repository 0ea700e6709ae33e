package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/paramountfood/paramount/internal/config"
	"github.com/paramountfood/paramount/internal/db"
	"github.com/paramountfood/paramount/internal/logging"
	"github.com/paramountfood/paramount/internal/repository"
	"github.com/paramountfood/paramount/internal/server"
	"github.com/paramountfood/paramount/internal/service"
	"github.com/paramountfood/paramount/internal/telemetry"
	"github.com/paramountfood/paramount/internal/version"

	"github.com/spf13/cobra"
)

var (
	cfg    *config.Config
	logger *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "paramount-api",
	Short: "Paramount inquiry intake service",
	Long: `Paramount inquiry intake service accepts contact inquiries over HTTP,
stores them and notifies staff by email, Telegram or Slack.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}

		logConfig := &logging.LogConfig{
			Level:      cfg.LogLevel,
			File:       cfg.LogFile,
			MaxSize:    100,
			MaxBackups: 3,
			MaxAge:     7,

			LogRequests: cfg.LogRequests,
		}
		if err := logging.InitLogger(logConfig); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = logging.GetGlobalLogger()
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCmd.RunE(cmd, args)
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Info("Starting server %s in %s mode", version.Info(), cfg.Environment)

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		shutdownTracing, err := telemetry.InitTracing(ctx, cfg.OTLPEndpoint, cfg.ServiceName, cfg.Environment)
		if err != nil {
			return fmt.Errorf("failed to initialize tracing: %w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdownTracing(shutdownCtx); err != nil {
				logger.Warn("Failed to flush traces: %v", err)
			}
		}()

		database, err := db.Open(ctx, cfg.DBDriver, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer database.Close()

		srv, err := server.NewServer(cfg, database)
		if err != nil {
			return fmt.Errorf("failed to create server: %w", err)
		}

		return srv.Start(ctx)
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		database, err := db.Open(ctx, cfg.DBDriver, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
		defer database.Close()

		schemaVersion, err := database.SchemaVersion(ctx)
		if err != nil {
			return fmt.Errorf("failed to read schema version: %w", err)
		}
		logger.Info("Database (%s) is at schema version %d", database.Driver(), schemaVersion)
		return nil
	},
}

// openInquiryService opens the database for read-only staff commands.
// No notifiers are configured; these commands never submit.
func openInquiryService(ctx context.Context) (*service.InquiryService, func() error, error) {
	database, err := db.Open(ctx, cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return service.NewInquiryService(repository.NewInquiryRepository(database.DB), nil), database.Close, nil
}

var inquiriesCmd = &cobra.Command{
	Use:   "inquiries",
	Short: "List the most recent inquiries",
	Long: `List the most recent contact inquiries, newest first.

Example:
  paramount-api inquiries --limit 20
  paramount-api inquiries show 3f1c2a9e-...`,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		ctx := cmd.Context()
		inquiryService, closeDB, err := openInquiryService(ctx)
		if err != nil {
			return err
		}
		defer closeDB()

		total, err := inquiryService.Count(ctx)
		if err != nil {
			return err
		}
		if total == 0 {
			fmt.Println("No inquiries yet.")
			return nil
		}

		inquiries, err := inquiryService.Recent(ctx, limit)
		if err != nil {
			return err
		}

		fmt.Printf("Showing %d of %d inquiries\n", len(inquiries), total)
		for _, inq := range inquiries {
			fmt.Printf("%s  %s  %s <%s>\n    %s\n",
				inq.Timestamp.Format(time.RFC3339), inq.ID, inq.Name, inq.Email, inq.Subject)
		}
		return nil
	},
}

var inquiryShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print one inquiry in full",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		inquiryService, closeDB, err := openInquiryService(ctx)
		if err != nil {
			return err
		}
		defer closeDB()

		inq, err := inquiryService.Get(ctx, args[0])
		if errors.Is(err, service.ErrNotFound) {
			return fmt.Errorf("no inquiry with id %s", args[0])
		}
		if err != nil {
			return err
		}

		fmt.Printf("ID:       %s\nReceived: %s\nName:     %s\nEmail:    %s\nSubject:  %s\n\n%s\n",
			inq.ID, inq.Timestamp.Format(time.RFC3339), inq.Name, inq.Email, inq.Subject, inq.Message)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Info())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(inquiriesCmd)
	inquiriesCmd.AddCommand(inquiryShowCmd)
	rootCmd.AddCommand(versionCmd)

	inquiriesCmd.Flags().Int("limit", 20, "Number of inquiries to show")
}

func main() {
	err := rootCmd.Execute()
	if logger != nil {
		if err != nil {
			logger.Error("Command execution failed: %v", err)
		}
		logger.Close()
	}
	if err != nil {
		os.Exit(1)
	}
}
