package model

import (
	"fmt"
	"strings"

	"github.com/aarondl/opt/omit"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/mpapenbr/fmtune-formatter/pkg/convert"
)

// Value is a user entered value. It keeps the textual form as entered,
// numbers in the input document are accepted as well.
type Value string

// values which mean "nothing selected" (compared case insensitive)
var unsetSentinels = []string{"", "n/a", "stock", "none"}

func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a scalar value", node.Line)
	}
	if node.Tag == "!!null" {
		*v = ""
		return nil
	}
	*v = Value(node.Value)
	return nil
}

func (v Value) String() string {
	return strings.TrimSpace(string(v))
}

// IsBlank reports whether v contains nothing but whitespace.
func (v Value) IsBlank() bool {
	return v.String() == ""
}

// IsUnset reports whether v is blank or one of the sentinels N/A, Stock, None.
func (v Value) IsUnset() bool {
	return IsUnset(string(v))
}

// Float returns the numeric value, 0 if v is not a number.
func (v Value) Float() float64 {
	return convert.EnsureFloat(string(v))
}

// Parsed returns the numeric value, unset if v is not a number.
func (v Value) Parsed() omit.Val[float64] {
	return convert.Parse(string(v))
}

// IsUnset reports whether s is one of the "not selected" sentinels.
func IsUnset(s string) bool {
	return lo.Contains(unsetSentinels, strings.ToLower(strings.TrimSpace(s)))
}
