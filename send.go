package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"github.com/nutcas3/apikit/internal/config"
	"github.com/nutcas3/apikit/internal/highlight"
	"github.com/nutcas3/apikit/internal/httpclient"
)

type sendOptions struct {
	method  string
	body    string
	headers []string
	params  []string
	query   string
	raw     bool
}

var sendOpts sendOptions

var sendCmd = &cobra.Command{
	Use:   "send <url>",
	Short: "Send one request and print the response",
	Long: `Send one request without starting the TUI.

The status line goes first, then the response body. With --query the body is
replaced by the value at the given gjson path.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}
		return runSend(cmd.Context(), cmd.OutOrStdout(), newClient(cfg), cfg, args[0], sendOpts)
	},
}

func init() {
	f := sendCmd.Flags()
	f.StringVarP(&sendOpts.method, "method", "X", "GET", "HTTP method (GET, POST, PUT, DELETE)")
	f.StringVarP(&sendOpts.body, "data", "d", "", "request body (sent with POST and PUT)")
	f.StringArrayVarP(&sendOpts.headers, "header", "H", nil, "request header 'Name: value' (repeatable)")
	f.StringArrayVarP(&sendOpts.params, "param", "p", nil, "query parameter key=value (repeatable)")
	f.StringVarP(&sendOpts.query, "query", "q", "", "print only the value at this gjson path")
	f.BoolVar(&sendOpts.raw, "raw", false, "print the body without formatting or colors")
}

type sender interface {
	Do(ctx context.Context, req httpclient.Request) httpclient.Result
}

func runSend(ctx context.Context, w io.Writer, client sender, cfg config.Config, url string, opts sendOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	method, err := httpclient.ParseMethod(opts.method)
	if err != nil {
		return err
	}

	req := httpclient.Request{
		Method: method,
		URL:    url,
		Body:   opts.body,
	}
	for _, h := range opts.headers {
		req.Headers = append(req.Headers, httpclient.ParseHeaders(h)...)
	}
	for _, p := range opts.params {
		req.Params = append(req.Params, httpclient.ParseParams(p)...)
	}

	res := client.Do(ctx, req)
	if res.Err != nil {
		return res.Err
	}

	statusColor(res.StatusCode).Fprintf(w, "%s %s\n", method, res.Status)
	color.New(color.Faint).Fprintf(w, "%s\n\n", res.Duration.Round(time.Millisecond))

	body := res.Body
	if opts.query != "" {
		if !gjson.Valid(body) {
			return fmt.Errorf("response is not JSON, cannot apply query %q", opts.query)
		}
		r := gjson.Get(body, opts.query)
		if !r.Exists() {
			return fmt.Errorf("query %q matched nothing", opts.query)
		}
		body = r.String()
	}

	if !opts.raw {
		if cfg.Response.AutoFormatJSON {
			body = highlight.PrettyJSON(body)
		}
		if cfg.Response.SyntaxHighlighting && !color.NoColor {
			body = highlight.Highlight(body, res.ContentType(), cfg.Response.Style)
		}
	}
	_, err = fmt.Fprintln(w, body)
	return err
}

func statusColor(code int) *color.Color {
	switch {
	case code >= 500:
		return color.New(color.FgRed, color.Bold)
	case code >= 400:
		return color.New(color.FgYellow, color.Bold)
	case code >= 300:
		return color.New(color.FgCyan, color.Bold)
	default:
		return color.New(color.FgGreen, color.Bold)
	}
}
