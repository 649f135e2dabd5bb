package seqs

import (
	"log/slog"

	"github.com/go-softwarelab/common/pkg/slogx"
)

type zipConfig struct {
	logger *slog.Logger
}

type ZipOption func(*zipConfig)

// WithMismatchLogger makes Zip report, at Info level, when one input runs out
// while the other still has elements. A nil logger falls back to slog.Default.
func WithMismatchLogger(logger *slog.Logger) ZipOption {
	return func(c *zipConfig) {
		c.logger = slogx.ChildForComponent(logger, "seqs.zip")
	}
}

func newZipConfig(opts []ZipOption) *zipConfig {
	cfg := &zipConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func (c *zipConfig) reportMismatch(pairs int, exhausted string) {
	if c.logger == nil {
		return
	}
	c.logger.Info("zip length mismatch",
		slogx.Number("pairs", pairs),
		slog.String("exhausted", exhausted),
	)
}
