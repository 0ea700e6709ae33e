package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/paramountfood/paramount/internal/client"
	"github.com/paramountfood/paramount/internal/logging"
	"github.com/paramountfood/paramount/internal/version"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

const backendURLEnv = "PARAMOUNT_BACKEND_URL"

var logger *logging.Logger

func initLogger(level string) {
	// Client logs go to stderr only; notifications are the user-facing output
	logging.SetGlobalLogger(logging.NewWriterLogger(os.Stderr, level))
	logger = logging.GetGlobalLogger()
}

var rootCmd = &cobra.Command{
	Use:   "inquire",
	Short: "Send a contact inquiry to Paramount",
	Long: `Send a single contact inquiry to the Paramount intake service.

The service address is taken from --base-url or, when the flag is not set,
from the PARAMOUNT_BACKEND_URL environment variable.

Example:
  inquire --name "Ada" --email ada@example.com --subject "Bulk rice" --message "Please send a quote"`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		level := logging.LevelWarn
		if verbose {
			level = logging.LevelDebug
		}
		initLogger(level)

		baseURL, _ := cmd.Flags().GetString("base-url")
		if baseURL == "" {
			baseURL = os.Getenv(backendURLEnv)
		}
		timeout, _ := cmd.Flags().GetDuration("timeout")

		transport, err := client.NewHTTPTransport(client.Config{BaseURL: baseURL, Timeout: timeout})
		if err != nil {
			return fmt.Errorf("invalid service address (set --base-url or %s): %w", backendURLEnv, err)
		}

		var last client.Notification
		form := client.NewForm(transport, client.NotifierFunc(func(n client.Notification) {
			last = n
		}))

		for _, field := range []client.Field{client.FieldName, client.FieldEmail, client.FieldSubject, client.FieldMessage} {
			value, _ := cmd.Flags().GetString(string(field))
			form.UpdateField(field, value)
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		// Spinner while the request is in flight
		s := spinner.New(spinner.CharSets[14], 120*time.Millisecond, spinner.WithWriter(os.Stderr))
		s.Suffix = " Sending inquiry..."
		s.Start()
		outcome := form.Submit(ctx)
		s.Stop()

		logger.Debug("Submission finished with outcome %s", outcome)

		if last.Kind == client.NotificationSuccess {
			fmt.Println("✅ " + last.Message)
			return nil
		}
		fmt.Fprintln(os.Stderr, "❌ "+last.Message)
		return fmt.Errorf("inquiry not sent (%s)", outcome)
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
	rootCmd.AddCommand(versionCmd)

	rootCmd.Flags().String("base-url", "", "Base URL of the intake service (default: $"+backendURLEnv+")")
	rootCmd.Flags().Duration("timeout", client.DefaultTimeout, "Request timeout")
	rootCmd.Flags().String("name", "", "Your name")
	rootCmd.Flags().String("email", "", "Your email address")
	rootCmd.Flags().String("subject", "", "Inquiry subject")
	rootCmd.Flags().String("message", "", "Inquiry message")
	rootCmd.Flags().BoolP("verbose", "v", false, "Enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
