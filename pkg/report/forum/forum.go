// Package forum renders setups as markdown for forum posts.
package forum

import (
	"strings"

	"github.com/samber/lo"

	"github.com/mpapenbr/fmtune-formatter/pkg/model"
	"github.com/mpapenbr/fmtune-formatter/pkg/report/section"
	"github.com/mpapenbr/fmtune-formatter/pkg/units"
)

const DefaultAttribution = "Formatted with fmtune"

type Option func(*Formatter)

// WithAttribution sets the text of the last line.
func WithAttribution(text string) Option {
	return func(f *Formatter) {
		f.attribution = text
	}
}

// Formatter shows every value which is not blank, N/A, Stock or None.
type Formatter struct {
	attribution string
	policy      section.Policy
}

func New(opts ...Option) *Formatter {
	ret := &Formatter{
		attribution: DefaultAttribution,
		policy:      section.SentinelPolicy,
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
	lines := []string{"# " + escape(title)}
	if cl := setup.Stats.ClassLabel(); cl != "" {
		lines = append(lines, "**Class:** "+escape(cl))
	}
	if !setup.Author.IsUnset() {
		lines = append(lines, "**Tuner:** "+escape(setup.Author.String()))
	}
	if !setup.ShareCode.IsUnset() {
		lines = append(lines, "**Share Code:** "+escape(setup.ShareCode.String()))
	}
	return lines
}

func (f *Formatter) stats(setup *model.FMSetup, system units.GlobalUnitSystem) []string {
	t := section.Stats(&setup.Stats, system, f.policy)
	if t.Empty() {
		return nil
	}
	lines := []string{"", "## Stats", ""}
	return append(lines, table("Stat", &t)...)
}

func (f *Formatter) upgrades(setup *model.FMSetup) []string {
	tables := section.Upgrades(&setup.Upgrades, f.policy)
	if !section.AnyRows(tables) {
		return nil
	}
	lines := []string{"", "## Upgrades"}
	for i := range tables {
		if tables[i].Empty() {
			continue
		}
		lines = append(lines, "", "**"+tables[i].Title+"**", "")
		lines = append(lines, table("Part", &tables[i])...)
	}
	return lines
}

// tune lists not applicable sections as placeholders, but only if there is
// at least one section with values.
func (f *Formatter) tune(setup *model.FMSetup) []string {
	tables := section.Tune(&setup.Tune, f.policy)
	if !section.AnyRows(tables) {
		return nil
	}
	lines := []string{"", "## Tune"}
	for i := range tables {
		t := &tables[i]
		switch {
		case t.NA:
			lines = append(lines, "", "**"+t.Title+":** N/A")
		case !t.Empty():
			lines = append(lines, "", "**"+t.Title+"**", "")
			lines = append(lines, table(labelHeader(t), t)...)
		}
	}
	return lines
}

func labelHeader(t *section.Table) string {
	if t.Key == "tune.gears" {
		return "Gear"
	}
	return ""
}

func (f *Formatter) notes(setup *model.FMSetup) []string {
	if setup.Notes.IsUnset() {
		return nil
	}
	lines := []string{"", "## Notes", ""}
	return append(lines, strings.Split(setup.Notes.String(), "\n")...)
}

func (f *Formatter) attributionLines(shareLink string) []string {
	lines := []string{"", "---"}
	if link := strings.TrimSpace(shareLink); link != "" {
		lines = append(lines, "[Open this tune]("+link+")")
	}
	return append(lines, "^("+f.attribution+")")
}

// table renders t as markdown pipe table. The label column is left aligned.
func table(labelHeader string, t *section.Table) []string {
	align := ":--"
	if t.Align == section.AlignRight {
		align = "--:"
	}
	lines := []string{
		tableRow(append([]string{labelHeader}, t.Headers...)),
		"|:--|" + strings.Repeat(align+"|", len(t.Headers)),
	}
	for _, r := range t.Rows {
		lines = append(lines, tableRow(append([]string{r.Label}, r.Cells...)))
	}
	return lines
}

func tableRow(cells []string) string {
	parts := lo.Map(cells, func(c string, _ int) string {
		if c == "" {
			return " "
		}
		return " " + escape(c) + " "
	})
	return "|" + strings.Join(parts, "|") + "|"
}

var escaper = strings.NewReplacer("|", `\|`)

func escape(s string) string {
	return escaper.Replace(s)
}
