package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	listing "github.com/goliatone/go-listing"
	"github.com/goliatone/go-listing/internal/logger"
	"github.com/goliatone/go-listing/internal/prompt"
	"github.com/goliatone/go-listing/pkg/config"
	"github.com/goliatone/go-listing/pkg/diagnostics"
	"github.com/goliatone/go-listing/pkg/listmode"
	"github.com/goliatone/go-listing/pkg/model"
	"github.com/goliatone/go-listing/pkg/validation"
	"github.com/goliatone/go-listing/pkg/widgets"
)

func main() {
	err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr, prompt.NewSurvey(os.Stdout))
	if err != nil {
		fmt.Fprintf(os.Stderr, "listing-cli: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	mode    string
	input   string
	setting string
	envFile string
	locale  string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("listing-cli", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.mode, "mode", "widgets", "payload kind: widgets, list or booking")
	fs.StringVar(&opts.input, "input", "-", "payload file (stdin when -)")
	fs.StringVar(&opts.setting, "setting", config.DefaultName, "settings document used for list filters")
	fs.StringVar(&opts.envFile, "env", ".env", "environment file")
	fs.StringVar(&opts.locale, "locale", "", "message locale (overrides LISTING_LOCALE)")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	return opts, nil
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer, driver prompt.Driver) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	env, err := config.LoadEnv(opts.envFile)
	if err != nil {
		return fmt.Errorf("load env: %w", err)
	}
	if opts.locale != "" {
		env.Locale = opts.locale
	}

	log := logger.New(env.LogLevel, stderr)
	client := listing.New(listing.WithSink(diagnostics.Slog(log)))

	body, err := readInput(opts.input, stdin)
	if err != nil {
		return err
	}
	log.Debug("payload loaded", "mode", opts.mode, "bytes", len(body))

	switch strings.ToLower(strings.TrimSpace(opts.mode)) {
	case "widgets", "home":
		return runWidgets(client, body, stdout)
	case "list":
		store, err := env.Settings()
		if err != nil {
			return fmt.Errorf("load settings: %w", err)
		}
		setting, err := store.Require(opts.setting)
		if err != nil {
			return err
		}
		return runList(client, setting, body, stdout)
	case "booking":
		session := &prompt.Session{
			Driver:     driver,
			Translator: validation.DefaultCatalog(),
			Locale:     env.Locale,
			Logger:     log,
		}
		return runBooking(ctx, client, session, body, stdout)
	default:
		return fmt.Errorf("unknown mode %q", opts.mode)
	}
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}

func runWidgets(client *listing.Client, body []byte, stdout io.Writer) error {
	decoded, err := client.DecodeHome(body)
	if err != nil {
		return err
	}
	for _, widget := range decoded {
		header := widget.WidgetHeader()
		fmt.Fprintf(stdout, "%-10s %-24q %d items\n", header.Kind, header.Title, itemCount(widget))
	}
	return nil
}

func itemCount(widget widgets.Widget) int {
	switch w := widget.(type) {
	case widgets.CategoryWidget:
		return len(w.Items)
	case widgets.ListingWidget:
		return len(w.Items)
	case widgets.BlogWidget:
		return len(w.Items)
	case widgets.BannerWidget:
		return len(w.Items)
	case widgets.SliderWidget:
		return len(w.Items)
	default:
		return 0
	}
}

func runList(client *listing.Client, setting model.Setting, body []byte, stdout io.Writer) error {
	page, err := client.DecodeList(body)
	if err != nil {
		return err
	}
	mode := listmode.Resolve(setting.ListMode)
	fmt.Fprintf(stdout, "mode=%s columns=%d page=%d/%d\n", mode, mode.Columns(), page.Pagination.Page, page.Pagination.MaxPage)
	for _, item := range page.Items {
		fmt.Fprintf(stdout, "%6d  %s\n", item.ID, item.Title)
	}

	next, ok := page.Pagination.NextPage()
	if !ok {
		return nil
	}
	filter := model.NewFilter(setting)
	filter.Page = next
	return writeJSON(stdout, filter.Params())
}

func runBooking(ctx context.Context, client *listing.Client, session *prompt.Session, body []byte, stdout io.Writer) error {
	style, err := client.NewBookingDraft(body)
	if err != nil {
		return err
	}
	params, err := session.Run(ctx, style)
	if errors.Is(err, prompt.ErrAborted) {
		session.Logger.Info("booking cancelled")
		return nil
	}
	if err != nil {
		return err
	}
	return writeJSON(stdout, params)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

