package xrpltools

import "log/slog"

// buildOptions hold optional registry build settings.
type buildOptions struct {
	logger *slog.Logger
}

// Option configures a registry build.
type Option func(*buildOptions)

// WithLogger sets the logger used for build-time events (skipped models,
// final catalogue size). Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *buildOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}
