package rules

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/arthur-debert/cctweak/pkg/patch"
)

// roleSlots maps the logical role names accepted in the models sidecar
// config to the hardcoded defaults shipped in known releases. Each role is
// its own transformation: one configured role missing from a given release
// shape does not block the others.
var roleSlots = map[string]struct {
	field    string
	defaults []string
}{
	"default": {
		field:    "defaultModel",
		defaults: []string{"claude-sonnet-4-20250514", "claude-3-7-sonnet-20250219"},
	},
	"plan": {
		field:    "planModel",
		defaults: []string{"claude-opus-4-20250514"},
	},
	"subagent": {
		field:    "subagentModel",
		defaults: []string{"claude-3-5-haiku-20241022"},
	},
	"haiku": {
		field:    "smallFastModel",
		defaults: []string{"claude-3-5-haiku-20241022"},
	},
}

// Models rewrites hardcoded model-name literals to the configured names.
// Roles absent from the config produce no rules; an empty config yields a
// tweak with no sets, which the engine reports as nothing configured.
func Models(models map[string]string) *Tweak {
	tw := &Tweak{
		Name:    "models",
		Summary: "Select models for subagent roles",
	}

	// Deterministic set order regardless of map iteration
	roles := make([]string, 0, len(models))
	for role := range models {
		if _, ok := roleSlots[role]; ok {
			roles = append(roles, role)
		}
	}
	sort.Strings(roles)

	for _, role := range roles {
		slot := roleSlots[role]
		name := models[role]

		var alts []*patch.Rule
		for i, def := range slot.defaults {
			alts = append(alts, &patch.Rule{
				Name:          fmt.Sprintf("models/%s/known-%d", role, i),
				Versions:      "releases shipping " + def,
				Strategy:      patch.StrategyExact,
				Search:        fmt.Sprintf(`%s:"%s"`, slot.field, def),
				Replace:       fmt.Sprintf(`%s:"%s"`, slot.field, name),
				AppliedMarker: fmt.Sprintf(`%s:"%s"`, slot.field, name),
			})
		}

		// Structural fallback: the field name is stable even when the
		// default model string moves to a release we have not seen
		alts = append(alts, &patch.Rule{
			Name:     fmt.Sprintf("models/%s/fallback", role),
			Versions: "unknown releases",
			Strategy: patch.StrategyRegex,
			Pattern:  regexp.MustCompile(regexp.QuoteMeta(slot.field) + `:"(claude-[A-Za-z0-9.-]+)"`),
			Rewrite:  fmt.Sprintf(`%s:"%s"`, slot.field, name),
			AppliedPattern: regexp.MustCompile(
				regexp.QuoteMeta(fmt.Sprintf(`%s:"%s"`, slot.field, name))),
		})

		tw.Sets = append(tw.Sets, RuleSet{
			Name:  role + "-model",
			Rules: alts,
		})
	}

	tw.AlreadyPatched = func(content string) bool {
		for _, role := range roles {
			slot := roleSlots[role]
			want := fmt.Sprintf(`%s:"%s"`, slot.field, models[role])
			if strings.Contains(content, want) {
				return true
			}
		}
		return false
	}

	return tw
}
