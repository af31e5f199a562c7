package application

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/indexurl/internal/config"
	"github.com/eugenenazirov/indexurl/internal/indexurl"
)

// App encapsulates the resolver and the settings used to report its answer.
type App struct {
	cfg      config.Config
	resolver *indexurl.Resolver
	logger   *zap.Logger
}

// report is the structured form of a run, used for json and yaml output.
type report struct {
	indexurl.Resolution `yaml:",inline"`
	Candidates          []indexurl.CandidateReport `json:"candidates,omitempty" yaml:"candidates,omitempty"`
}

// New initializes the application. opts are passed to the resolver, which
// otherwise reads the process environment and the real filesystem.
func New(cfg config.Config, logger *zap.Logger, opts ...indexurl.Option) *App {
	resolverOpts := append([]indexurl.Option{indexurl.WithLogger(logger)}, opts...)

	return &App{
		cfg:      cfg,
		resolver: indexurl.New(resolverOpts...),
		logger:   logger,
	}
}

// Run resolves the index URL and writes it to w in the configured format.
// With the default settings the output is the URL followed by a newline.
func (a *App) Run(w io.Writer) error {
	out := report{Resolution: a.resolver.Resolution()}
	if a.cfg.Explain {
		out.Candidates = a.resolver.Explain()
	}

	a.logger.Debug("resolved index url",
		zap.String("url", out.URL),
		zap.String("source", out.Source),
		zap.Bool("default", out.Default),
	)

	switch a.cfg.Format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("encode JSON: %w", err)
		}
		return nil
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("encode YAML: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode YAML: %w", err)
		}
		return nil
	default:
		return writeText(w, out)
	}
}

func writeText(w io.Writer, out report) error {
	if len(out.Candidates) > 0 {
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, c := range out.Candidates {
			if _, err := fmt.Fprintf(tw, "%s\t%s\n", c.Path, describe(c)); err != nil {
				return fmt.Errorf("write candidates: %w", err)
			}
		}
		if err := tw.Flush(); err != nil {
			return fmt.Errorf("write candidates: %w", err)
		}
	}

	if _, err := fmt.Fprintln(w, out.URL); err != nil {
		return fmt.Errorf("write url: %w", err)
	}
	return nil
}

func describe(c indexurl.CandidateReport) string {
	switch {
	case !c.Exists:
		return "missing"
	case c.Error != "":
		return "unreadable: " + c.Error
	case c.Value == "":
		return "no index-url"
	default:
		return "index-url = " + c.Value
	}
}
