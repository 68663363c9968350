package report

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/mpapenbr/fmtune-formatter/pkg/units"
	"github.com/mpapenbr/fmtune-formatter/testsupport/basedata"
)

func TestParseTarget(t *testing.T) {
	got, err := ParseTarget(" Forum ")
	assert.NilError(t, err)
	assert.Equal(t, got, Forum)

	got, err = ParseTarget("chat")
	assert.NilError(t, err)
	assert.Equal(t, got, Chat)

	_, err = ParseTarget("reddit")
	assert.Assert(t, errors.Is(err, ErrUnknownTarget))
}

func TestNewUnknownTarget(t *testing.T) {
	_, err := New(Target("fax"))
	assert.ErrorIs(t, err, ErrUnknownTarget)
}

func TestGenerateMinimalDocument(t *testing.T) {
	for _, target := range Targets() {
		t.Run(string(target), func(t *testing.T) {
			doc, err := Generate(target, basedata.MinimalSetup(), units.Metric, basedata.SampleLink)
			assert.NilError(t, err)
			assert.Assert(t, is.Contains(doc, "2024 Test Car"))
			assert.Assert(t, is.Contains(doc, "A 700"))
			assert.Assert(t, is.Contains(doc, basedata.SampleLink))
			assert.Assert(t, !strings.Contains(doc, "Stats"))
			assert.Assert(t, !strings.Contains(doc, "Upgrades"))
			assert.Assert(t, !strings.Contains(doc, "Tune"))
		})
	}
}

func TestGenerateConcurrent(t *testing.T) {
	for _, target := range Targets() {
		f, err := New(target)
		assert.NilError(t, err)
		want := f.Generate(basedata.SampleSetup(), units.Imperial, basedata.SampleLink)

		var wg sync.WaitGroup
		results := make([]string, 8)
		for i := range results {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i] = f.Generate(basedata.SampleSetup(), units.Imperial, basedata.SampleLink)
			}(i)
		}
		wg.Wait()
		for _, r := range results {
			assert.Equal(t, r, want)
		}
	}
}
