package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	statsstudio "github.com/goliatone/go-statsstudio"
	"github.com/goliatone/go-statsstudio/internal/config"
	"github.com/goliatone/go-statsstudio/internal/logging"
	"github.com/goliatone/go-statsstudio/internal/sanitize"
	"github.com/goliatone/go-statsstudio/pkg/classic"
	"github.com/goliatone/go-statsstudio/pkg/options"
	"github.com/goliatone/go-statsstudio/pkg/schema"
	"github.com/goliatone/go-statsstudio/pkg/studio"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// app carries the resolved configuration and logger into subcommands.
type app struct {
	configPath string
	cfg        *config.Config
	logger     *log.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "statsstudio",
		Short:         "Build share URLs for GitHub statistics cards",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default ./statsstudio.yaml)")
	flags.String("descriptor", "", "template descriptor file or http(s) URL (bundled when empty)")
	flags.String("stats-url", "", "rendering service base URL override")
	flags.Bool("suppress-defaults", false, "omit template fields equal to their declared default")
	flags.Duration("http-timeout", 0, "timeout for remote descriptors")
	flags.String("log-level", "", "log level (debug, info, warn, error)")
	flags.String("log-format", "", "log format (text, json, logfmt)")

	root.AddCommand(
		newURLCmd(a),
		newClassicCmd(a),
		newTemplatesCmd(a),
		newEditCmd(a),
		newOpenAPICmd(a),
		newLintCmd(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath, cmd.Flags())
	if err != nil {
		return err
	}
	logger, err := logging.New(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Writer: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	return nil
}

// registry loads the configured descriptor. Unreachable or empty descriptors
// fall back to the classic template so commands keep working offline.
func (a *app) registry(ctx context.Context) *schema.Registry {
	loaderOpts := []schema.LoaderOption{schema.WithHTTPFallback(a.cfg.HTTP.Timeout)}

	var src schema.Source
	if a.cfg.Descriptor == "" {
		src = schema.SourceFromFS(schema.DefaultDescriptor)
		loaderOpts = append(loaderOpts, schema.WithFileSystem(statsstudio.EmbeddedDescriptors()))
	} else {
		src = schema.ParseSource(a.cfg.Descriptor)
	}
	if src == nil {
		a.logger.Warn("invalid descriptor reference, using classic template", "descriptor", a.cfg.Descriptor)
		return classic.Registry()
	}

	reg, err := schema.Load(ctx, statsstudio.NewLoader(a.logger, loaderOpts...), src)
	switch {
	case err != nil:
		a.logger.Warn("descriptor unavailable, using classic template", "source", src.Location(), "err", err)
		return classic.Registry()
	case reg.Empty():
		a.logger.Warn("descriptor declares no templates, using classic template", "source", src.Location())
		return classic.Registry()
	}
	a.logger.Debug("descriptor loaded", "source", src.Location(), "templates", len(reg.Names()))
	return reg
}

// sessionOptions maps configuration onto studio options.
func (a *app) sessionOptions(username string) []studio.Option {
	opts := []studio.Option{
		studio.WithLogger(a.logger),
		studio.WithDefaultSuppression(a.cfg.SuppressDefaults),
	}
	if a.cfg.StatsURL != "" {
		opts = append(opts, studio.WithBaseURL(a.cfg.StatsURL))
	}
	if username != "" {
		opts = append(opts, studio.WithUsername(sanitize.Text(username)))
	}
	return opts
}

// parseAssignments turns repeated key=value flags into ordered pairs.
// Values are sanitized and "true"/"false" become booleans.
func parseAssignments(raw []string) ([]options.Pair, error) {
	out := make([]options.Pair, 0, len(raw))
	for _, item := range raw {
		key, value, ok := strings.Cut(item, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid assignment %q: expected key=value", item)
		}
		out = append(out, options.P(key, options.ParseBool(sanitize.Text(value))))
	}
	return out, nil
}

var errUsernameRequired = errors.New("a username is required (use --username)")

func writeLine(w io.Writer, line string) error {
	_, err := fmt.Fprintln(w, line)
	return err
}
