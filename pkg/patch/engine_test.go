// pkg/patch/engine_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test replacement splicing, binary padding, and invariants

package patch

import (
	"strings"
	"testing"

	"github.com/arthur-debert/cctweak/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gateRule() *Rule {
	return &Rule{
		Name:          "thinking/v-test",
		Strategy:      StrategyExact,
		Search:        `if(!A&&!B)return null;`,
		Replace:       ``,
		AppliedMarker: `case"x":return f(y);`,
	}
}

func TestApplyScript(t *testing.T) {
	content := `case"x":if(!A&&!B)return null;return f(y);`

	out, outcome, err := Apply(content, gateRule(), false)
	require.NoError(t, err)
	assert.Equal(t, OutcomeFound, outcome)
	assert.Equal(t, `case"x":return f(y);`, out)
}

func TestApplyIdempotent(t *testing.T) {
	content := `case"x":if(!A&&!B)return null;return f(y);`

	once, outcome, err := Apply(content, gateRule(), false)
	require.NoError(t, err)
	require.Equal(t, OutcomeFound, outcome)

	// Re-running the same rule on patched content reports already-applied
	// and leaves the content alone
	twice, outcome, err := Apply(once, gateRule(), false)
	require.NoError(t, err)
	assert.Equal(t, OutcomeApplied, outcome)
	assert.Equal(t, once, twice)
}

func TestApplyBinaryPadding(t *testing.T) {
	content := `before foo({a:1,key:"marker"}) after`
	rule := &Rule{
		Name:     "banner/marker",
		Strategy: StrategyMarker,
		Marker:   `key:"marker"`,
		Transform: func(m Match) string {
			return "0"
		},
	}

	out, outcome, err := Apply(content, rule, true)
	require.NoError(t, err)
	assert.Equal(t, OutcomeFound, outcome)
	assert.Len(t, out, len(content), "binary output must preserve length")

	span := `foo({a:1,key:"marker"})`
	want := "0" + strings.Repeat(" ", len(span)-1)
	assert.Equal(t, `before `+want+` after`, out)
}

func TestApplyBinaryTooLong(t *testing.T) {
	content := `x=AB;`
	rule := &Rule{
		Name:     "models/too-long",
		Strategy: StrategyExact,
		Search:   "AB",
		Replace:  "ABC",
	}

	out, _, err := Apply(content, rule, true)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnsafeReplacement))
	assert.Equal(t, content, out, "content must be untouched on failure")
}

func TestApplyScriptLengthUnconstrained(t *testing.T) {
	content := `x=AB;`
	rule := &Rule{
		Name:     "models/longer-ok",
		Strategy: StrategyExact,
		Search:   "AB",
		Replace:  "ABCDEF",
	}

	out, outcome, err := Apply(content, rule, false)
	require.NoError(t, err)
	assert.Equal(t, OutcomeFound, outcome)
	assert.Equal(t, `x=ABCDEF;`, out)
}

func TestApplyFirstPriority(t *testing.T) {
	exact := gateRule()
	fallback := &Rule{
		Name:     "thinking/fallback",
		Strategy: StrategyExact,
		Search:   `return null;`,
		Replace:  `/*noop*/`,
	}

	content := `case"x":if(!A&&!B)return null;return f(y);`

	// Both rules match this content; only the first in table order applies
	out, outcome, applied, err := ApplyFirst(content, []*Rule{exact, fallback}, false)
	require.NoError(t, err)
	assert.Equal(t, OutcomeFound, outcome)
	assert.Equal(t, exact.Name, applied.Name)
	assert.Equal(t, `case"x":return f(y);`, out)
}

func TestApplyFirstAggregateOutcomes(t *testing.T) {
	rules := []*Rule{
		{
			Name:          "a",
			Strategy:      StrategyExact,
			Search:        "never-present",
			AppliedMarker: "patched-marker",
		},
		{
			Name:     "b",
			Strategy: StrategyExact,
			Search:   "also-missing",
		},
	}

	t.Run("already applied wins over absent", func(t *testing.T) {
		out, outcome, rule, err := ApplyFirst("has patched-marker in it", rules, false)
		require.NoError(t, err)
		assert.Equal(t, OutcomeApplied, outcome)
		assert.Equal(t, "a", rule.Name)
		assert.Equal(t, "has patched-marker in it", out)
	})

	t.Run("all absent", func(t *testing.T) {
		_, outcome, rule, err := ApplyFirst("unrelated content", rules, false)
		require.NoError(t, err)
		assert.Equal(t, OutcomeAbsent, outcome)
		assert.Nil(t, rule)
	})
}

func TestApplyChainedPasses(t *testing.T) {
	// Each pass operates on the previous pass's output
	first := &Rule{Name: "1", Strategy: StrategyExact, Search: "aaa", Replace: "bbb"}
	second := &Rule{Name: "2", Strategy: StrategyExact, Search: "bbbccc", Replace: "done"}

	content := "xx aaaccc yy"
	out, _, err := Apply(content, first, false)
	require.NoError(t, err)
	out, outcome, err := Apply(out, second, false)
	require.NoError(t, err)
	assert.Equal(t, OutcomeFound, outcome)
	assert.Equal(t, "xx done yy", out)
}
