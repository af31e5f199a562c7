package indexurl

import (
	"errors"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// DefaultIndexURL is used when no configuration file overrides global.index-url.
const DefaultIndexURL = "https://pypi.org/simple"

// Resolution is a resolved index URL together with where it came from.
type Resolution struct {
	URL string `json:"url" yaml:"url"`
	// Source is the file that supplied URL, empty when Default is set.
	Source  string `json:"source,omitempty" yaml:"source,omitempty"`
	Default bool   `json:"default" yaml:"default"`
}

// CandidateReport describes what a single candidate file contributed.
type CandidateReport struct {
	Path   string `json:"path" yaml:"path"`
	Exists bool   `json:"exists" yaml:"exists"`
	Value  string `json:"value,omitempty" yaml:"value,omitempty"`
	Error  string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Resolver finds the effective pip index URL. It holds no state between
// calls and is safe for concurrent use.
type Resolver struct {
	env     Env
	fs      afero.Fs
	appDirs AppDirs
	logger  *zap.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithEnv replaces the process environment.
func WithEnv(env Env) Option {
	return func(r *Resolver) {
		if env != nil {
			r.env = env
		}
	}
}

// WithFs replaces the filesystem configuration files are read from.
func WithFs(fs afero.Fs) Option {
	return func(r *Resolver) {
		if fs != nil {
			r.fs = fs
		}
	}
}

// WithAppDirs overrides the platform user config directory lookup.
func WithAppDirs(dirs AppDirs) Option {
	return func(r *Resolver) {
		if dirs != nil {
			r.appDirs = dirs
		}
	}
}

// WithLogger sets the logger used for unreadable configuration files.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New creates a Resolver reading the real environment and filesystem unless
// overridden by opts.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		env:    OSEnv(),
		fs:     afero.NewOsFs(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.appDirs == nil {
		r.appDirs = PlatformAppDirs(r.env)
	}
	return r
}

// Get resolves the index URL from the current process environment.
func Get() string {
	return New().Resolve()
}

// Resolve returns the configured index URL without trailing slashes, or
// DefaultIndexURL.
func (r *Resolver) Resolve() string {
	return r.Resolution().URL
}

// Resolution is Resolve, also reporting the file the value was taken from.
func (r *Resolver) Resolution() Resolution {
	if r.disabled() {
		return defaultResolution()
	}

	for _, path := range r.Candidates() {
		value, ok := r.ReadIndexURL(path)
		if !ok {
			continue
		}
		if url := normalize(value); url != "" {
			return Resolution{URL: url, Source: path}
		}
	}

	return defaultResolution()
}

// Explain reads every candidate without stopping at the first match. Parse
// failures are reported in the result rather than logged.
func (r *Resolver) Explain() []CandidateReport {
	if r.disabled() {
		return []CandidateReport{}
	}

	paths := r.Candidates()
	reports := make([]CandidateReport, 0, len(paths))
	for _, path := range paths {
		report := CandidateReport{Path: path, Exists: true}
		value, err := r.readIndexURL(path)
		switch {
		case err == nil:
			report.Value = value
		case errors.Is(err, errFileNotFound):
			report.Exists = false
		case errors.Is(err, errKeyNotFound):
		default:
			report.Error = err.Error()
		}
		reports = append(reports, report)
	}
	return reports
}

func defaultResolution() Resolution {
	return Resolution{URL: DefaultIndexURL, Default: true}
}

// normalize strips trailing slashes. A value of only slashes becomes empty and
// is treated like a missing one.
func normalize(value string) string {
	return strings.TrimRight(value, "/")
}
