// Package chat renders setups as plain text for chat messages.
//
// Tables are written into code blocks so that the fixed width columns line up
// in a monospace font.
package chat

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/samber/lo"

	"github.com/mpapenbr/fmtune-formatter/pkg/model"
	"github.com/mpapenbr/fmtune-formatter/pkg/report/section"
	"github.com/mpapenbr/fmtune-formatter/pkg/units"
)

const (
	DefaultAttribution = "Formatted with fmtune"
	codeFence          = "```"
)

// chat clients render ambiguous characters (°, ·) single width
var rw = &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true}

// values assumed by the game, fields with these values are not shown
var factoryDefaults = map[string]float64{
	"differential.front.accel":   50,
	"differential.front.decel":   50,
	"differential.rear.accel":    50,
	"differential.rear.decel":    50,
	"differential.center":        50,
	"brakes.balance":             50,
	"brakes.pressure":            100,
	"steeringWheel.ffbScale":     100,
	"steeringWheel.steeringLock": 900,
}

// FactoryDefaults returns a copy of the values hidden by default, keyed by field path.
func FactoryDefaults() map[string]float64 {
	return lo.Assign(factoryDefaults)
}

type Option func(*Formatter)

// WithAttribution sets the text of the last line.
func WithAttribution(text string) Option {
	return func(f *Formatter) {
		f.attribution = text
	}
}

// WithFactoryDefaults replaces the default values. The map is copied.
func WithFactoryDefaults(defaults map[string]float64) Option {
	return func(f *Formatter) {
		f.policy = section.DefaultsPolicy{Defaults: lo.Assign(defaults)}
	}
}

// Formatter hides sentinel values, factory defaults and sections marked not applicable.
type Formatter struct {
	attribution string
	policy      section.Policy
}

func New(opts ...Option) *Formatter {
	ret := &Formatter{
		attribution: DefaultAttribution,
		policy:      section.DefaultsPolicy{Defaults: factoryDefaults},
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

func (f *Formatter) Generate(
	setup *model.FMSetup,
	system units.GlobalUnitSystem,
	shareLink string,
) string {
	lines := f.header(setup)
	lines = append(lines, f.stats(setup, system)...)
	lines = append(lines, f.upgrades(setup)...)
	lines = append(lines, f.tune(setup)...)
	lines = append(lines, f.notes(setup)...)
	lines = append(lines, f.attributionLines(shareLink)...)
	return strings.Join(lines, "\n")
}

func (f *Formatter) header(setup *model.FMSetup) []string {
	title := setup.Title()
	if title == "" {
		title = "Untitled Tune"
	}
	lines := []string{"**" + title + "**"}
	if cl := setup.Stats.ClassLabel(); cl != "" {
		lines = append(lines, "Class: "+cl)
	}
	if !setup.Author.IsUnset() {
		lines = append(lines, "Tuner: "+setup.Author.String())
	}
	if !setup.ShareCode.IsUnset() {
		lines = append(lines, "Share Code: "+setup.ShareCode.String())
	}
	return lines
}

func (f *Formatter) stats(setup *model.FMSetup, system units.GlobalUnitSystem) []string {
	t := section.Stats(&setup.Stats, system, f.policy)
	if t.Empty() {
		return nil
	}
	return block("Stats", []section.Table{t})
}

func (f *Formatter) upgrades(setup *model.FMSetup) []string {
	tables := section.Upgrades(&setup.Upgrades, f.policy)
	for i := range tables {
		if tables[i].Key == "upgrades.conversions" {
			tables[i] = conversions(&setup.Upgrades.Conversions, tables[i])
		}
	}
	return block("Upgrades", tables)
}

// conversions lists the swaps. The body kit row is bound to the aspiration selection.
func conversions(c *model.Conversions, t section.Table) section.Table {
	rows := []section.Row{}
	add := func(label string, v model.Value) {
		rows = append(rows, section.Row{Label: label, Cells: []string{v.String()}})
	}
	if !c.Engine.IsUnset() {
		add("Engine Swap", c.Engine)
	}
	if !c.Drivetrain.IsUnset() {
		add("Drivetrain Swap", c.Drivetrain)
	}
	if !c.Aspiration.IsUnset() {
		add("Aspiration", c.Aspiration)
	}
	if !c.Aspiration.IsUnset() {
		add("Body Kit", c.BodyKit)
	}
	t.Rows = rows
	return t
}

func (f *Formatter) tune(setup *model.FMSetup) []string {
	return block("Tune", section.Tune(&setup.Tune, f.policy))
}

func (f *Formatter) notes(setup *model.FMSetup) []string {
	if setup.Notes.IsUnset() {
		return nil
	}
	return []string{"", "Notes: " + setup.Notes.String()}
}

func (f *Formatter) attributionLines(shareLink string) []string {
	lines := []string{""}
	if link := strings.TrimSpace(shareLink); link != "" {
		lines = append(lines, link)
	}
	return append(lines, "-# "+f.attribution)
}

// block writes the tables with rows into one code block below a bold title.
// Nothing is written if no table has rows.
func block(title string, tables []section.Table) []string {
	visible := lo.Filter(tables, func(t section.Table, _ int) bool {
		return !t.NA && !t.Empty()
	})
	if len(visible) == 0 {
		return nil
	}
	lines := []string{"", "**" + title + "**", codeFence}
	for i := range visible {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, table(&visible[i])...)
	}
	return append(lines, codeFence)
}

// table writes a fixed width table. The label column is padded with spaces and
// separated from the value columns by a tab. Column headers are only shown for
// tables with more than one value column.
func table(t *section.Table) []string {
	title := strings.ToUpper(t.Title)
	labelWidth := lo.Max(append(
		lo.Map(t.Rows, func(r section.Row, _ int) int { return rw.StringWidth(r.Label) }),
		rw.StringWidth(title)))

	headers := []string{}
	if len(t.Headers) > 1 {
		headers = t.Headers
	}
	widths := make([]int, len(t.Headers))
	for i := range widths {
		if i < len(headers) {
			widths[i] = rw.StringWidth(headers[i])
		}
		for _, r := range t.Rows {
			if i < len(r.Cells) {
				widths[i] = max(widths[i], rw.StringWidth(r.Cells[i]))
			}
		}
	}

	lines := []string{line(title, labelWidth, headers, widths, t.Align)}
	for _, r := range t.Rows {
		lines = append(lines, line(r.Label, labelWidth, r.Cells, widths, t.Align))
	}
	return lines
}

func line(label string, labelWidth int, cells []string, widths []int, align section.Align) string {
	if len(cells) == 0 {
		return label
	}
	parts := make([]string, len(cells))
	for i, c := range cells {
		if align == section.AlignRight {
			parts[i] = rw.FillLeft(c, widths[i])
		} else {
			parts[i] = rw.FillRight(c, widths[i])
		}
	}
	ret := rw.FillRight(label, labelWidth) + "\t" + strings.Join(parts, "  ")
	return strings.TrimRight(ret, " \t")
}
