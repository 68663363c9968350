package log

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"moul.io/zapfilter"
)

// WithFilter restricts output by zapfilter rules, e.g. "debug+:convert info+:*".
// An empty rule set returns a no-op option.
func WithFilter(rules string) (Option, error) {
	if rules == "" {
		return zap.WrapCore(func(c zapcore.Core) zapcore.Core { return c }), nil
	}
	filter, err := zapfilter.ParseRules(rules)
	if err != nil {
		return nil, fmt.Errorf("invalid log filter %q: %w", rules, err)
	}
	return zap.WrapCore(func(c zapcore.Core) zapcore.Core {
		return zapfilter.NewFilteringCore(c, filter)
	}), nil
}

// Configure builds the logger for the command line flags.
// format is either "json" or "text".
func Configure(out io.Writer, format, level, filter string) (*Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	filterOpt, err := WithFilter(filter)
	if err != nil {
		return nil, err
	}
	opts := []Option{WithCaller(lvl == DebugLevel), AddCallerSkip(1), filterOpt}
	switch format {
	case "json":
		return New(out, lvl, opts...), nil
	case "text":
		return DevLogger(out, lvl, opts...), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}
