// Package report turns setups into text documents for the supported targets.
package report

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mpapenbr/fmtune-formatter/pkg/model"
	"github.com/mpapenbr/fmtune-formatter/pkg/report/chat"
	"github.com/mpapenbr/fmtune-formatter/pkg/report/forum"
	"github.com/mpapenbr/fmtune-formatter/pkg/units"
)

// Target identifies the platform a report is written for.
type Target string

const (
	Forum Target = "forum" // markdown
	Chat  Target = "chat"  // monospace plain text
)

var ErrUnknownTarget = errors.New("unknown target")

// Formatter renders a setup. Implementations keep no state between calls.
type Formatter interface {
	Generate(setup *model.FMSetup, system units.GlobalUnitSystem, shareLink string) string
}

// Targets returns the supported targets.
func Targets() []Target {
	return []Target{Forum, Chat}
}

// ParseTarget accepts a target name case-insensitively.
func ParseTarget(s string) (Target, error) {
	t := Target(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Targets() {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownTarget, s)
}

// New returns the formatter for target.
func New(target Target) (Formatter, error) {
	switch target {
	case Forum:
		return forum.New(), nil
	case Chat:
		return chat.New(), nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownTarget, string(target))
}

// Generate renders setup for target.
func Generate(
	target Target,
	setup *model.FMSetup,
	system units.GlobalUnitSystem,
	shareLink string,
) (string, error) {
	f, err := New(target)
	if err != nil {
		return "", err
	}
	return f.Generate(setup, system, shareLink), nil
}
