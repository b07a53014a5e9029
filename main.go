package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/nutcas3/apikit/internal/app"
	"github.com/nutcas3/apikit/internal/config"
	"github.com/nutcas3/apikit/internal/home"
	"github.com/nutcas3/apikit/internal/httpclient"
	"github.com/nutcas3/apikit/internal/settings"
)

var version = "0.1.0"

var (
	flagConfig string
	flagMethod string
)

var rootCmd = &cobra.Command{
	Use:   "apikit [url]",
	Short: "Compose HTTP requests and inspect responses in the terminal",
	Long: `apikit is a small API client with an interactive TUI.

Run without arguments to start with an empty request, or pass a URL to
prefill it. Data piped on stdin becomes the request body.

Examples:
  apikit
  apikit https://httpbin.org/get
  echo '{"a":1}' | apikit -X POST https://httpbin.org/post
  apikit send https://httpbin.org/get --query headers.Host`,
	Version:       version,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default $APIKIT_CONFIG or ~/.config/apikit/config.toml)")
	rootCmd.Flags().StringVarP(&flagMethod, "method", "X", "GET", "initial HTTP method (GET, POST, PUT, DELETE)")
	rootCmd.AddCommand(sendCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() (config.Config, string, error) {
	path := flagConfig
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, "", fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, path, nil
}

// newLogger writes to file because the TUI owns the terminal.
func newLogger(file string) (*slog.Logger, io.Closer, error) {
	if file == "" {
		return slog.New(slog.DiscardHandler), io.NopCloser(nil), nil
	}
	f, err := tea.LogToFile(file, "apikit")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})), f, nil
}

func newClient(cfg config.Config) *httpclient.Client {
	return httpclient.New(
		httpclient.WithTimeout(cfg.HTTP.Timeout),
		httpclient.WithContentType(cfg.HTTP.ContentType),
	)
}

// readPiped returns the contents of in when it is not a terminal.
func readPiped(in *os.File) (body string, piped bool, err error) {
	stat, err := in.Stat()
	if err != nil || stat.Mode()&os.ModeCharDevice != 0 {
		return "", false, nil
	}
	input, err := io.ReadAll(in)
	if err != nil {
		return "", true, fmt.Errorf("failed to read stdin: %w", err)
	}
	if !utf8.Valid(input) || bytes.IndexByte(input, 0) >= 0 {
		return "", true, errors.New("stdin is not text")
	}
	return string(input), true, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, path, err := loadConfig()
	if err != nil {
		return err
	}

	method, err := httpclient.ParseMethod(flagMethod)
	if err != nil {
		return err
	}

	body, piped, err := readPiped(os.Stdin)
	if err != nil {
		return err
	}

	logger, closer, err := newLogger(cfg.Log.File)
	if err != nil {
		return err
	}
	defer closer.Close()

	var url string
	if len(args) > 0 {
		url = args[0]
	}

	logger.Info("starting", "version", version, "config", path)

	homeScreen := home.New(home.Options{
		Sender:     newClient(cfg),
		Logger:     logger,
		Style:      cfg.Response.Style,
		AutoFormat: cfg.Response.AutoFormatJSON,
		Highlight:  cfg.Response.SyntaxHighlighting,
		Method:     method,
		URL:        url,
		Body:       body,
	})
	model := app.New(homeScreen, settings.New(cfg, path))

	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}
	if piped {
		// stdin was consumed; read keys from the controlling terminal.
		opts = append(opts, tea.WithInputTTY())
	}
	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}
