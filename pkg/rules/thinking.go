package rules

import (
	"regexp"
	"strings"

	"github.com/arthur-debert/cctweak/pkg/patch"
)

// Thinking makes thinking content always visible by removing the
// short-circuit gate in front of the thinking renderer, or (fallback)
// flipping the visibility flag the renderer receives.
func Thinking() *Tweak {
	return &Tweak{
		Name:    "thinking",
		Summary: "Always show thinking content",
		Sets: []RuleSet{
			{
				Name: "thinking-gate",
				Rules: []*patch.Rule{
					{
						Name:           "thinking/v1.0.80",
						Versions:       "1.0.80 and later",
						Strategy:       patch.StrategyExact,
						Search:         `if(!j9()&&!Q.thinkingVisible)return null;`,
						Replace:        ``,
						AppliedPattern: regexp.MustCompile(`case"thinking":\{?return`),
					},
					{
						Name:           "thinking/v1.0.60",
						Versions:       "1.0.60 through 1.0.79",
						Strategy:       patch.StrategyExact,
						Search:         `if(!fR()&&!B.verbose)return null;`,
						Replace:        ``,
						AppliedPattern: regexp.MustCompile(`case"thinking":\{?return`),
					},
					{
						Name:           "thinking/flag-fallback",
						Versions:       "unknown releases",
						Strategy:       patch.StrategyRegex,
						Pattern:        regexp.MustCompile(`thinkingVisible:(?:!1|false)([,}])`),
						Rewrite:        `thinkingVisible:!0$1`,
						AppliedPattern: regexp.MustCompile(`thinkingVisible:!0[,}]`),
					},
				},
			},
		},
		AlreadyPatched: func(content string) bool {
			return strings.Contains(content, `thinkingVisible:!0`) ||
				regexp.MustCompile(`case"thinking":\{?return`).MatchString(content)
		},
	}
}
