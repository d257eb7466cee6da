package rules

import (
	"regexp"
	"strings"

	"github.com/arthur-debert/cctweak/pkg/patch"
)

// bannerFeatureKey is the stable marker inside the deprecation banner call.
// Feature keys survive minification and rename far less often than the
// identifiers around them, which is what makes the marker scan viable on
// releases we have no exact literal for.
const bannerFeatureKey = `feature:"model_deprecation_banner"`

// Banner suppresses the model deprecation banner. The whole banner call is
// replaced with `void 0`, which is inert in both statement position and
// comma-operator chains, and pads safely inside a native binary.
func Banner() *Tweak {
	return &Tweak{
		Name:    "banner",
		Summary: "Hide the model deprecation banner",
		Sets: []RuleSet{
			{
				Name: "deprecation-banner",
				Rules: []*patch.Rule{
					{
						Name:          "banner/v1.0.85",
						Versions:      "1.0.85 and later",
						Strategy:      patch.StrategyExact,
						Search:        `W2.isDeprecated&&await uJ1(W2.model)`,
						Replace:       `!1&&await uJ1(W2.model)`,
						AppliedMarker: `!1&&await uJ1(`,
					},
					{
						Name:     "banner/feature-key",
						Versions: "unknown releases",
						Strategy: patch.StrategyMarker,
						Marker:   bannerFeatureKey,
						Transform: func(m patch.Match) string {
							return "void 0"
						},
						AppliedPattern: regexp.MustCompile(`void 0 {2,}`),
					},
				},
			},
		},
		AlreadyPatched: func(content string) bool {
			// Padding left behind by a binary-mode blank, or the forced-false
			// guard from the exact rule
			return strings.Contains(content, `!1&&await uJ1(`) ||
				regexp.MustCompile(`void 0 {2,}`).MatchString(content)
		},
	}
}
