package patch

import (
	"regexp"
	"strings"
)

// Strategy selects how a rule locates its span
type Strategy string

const (
	// StrategyExact matches a known literal substring for a specific version
	StrategyExact Strategy = "exact"

	// StrategyMarker locates a stable marker string, then walks backward to
	// the enclosing call and scans to its balanced close
	StrategyMarker Strategy = "marker-scan"

	// StrategyRegex is the structural fallback for versions whose exact
	// identifiers are not yet known
	StrategyRegex Strategy = "regex"
)

// Outcome is the tri-state result of testing a rule against content.
// Computed fresh on every run, never cached.
type Outcome string

const (
	OutcomeFound   Outcome = "found"
	OutcomeApplied Outcome = "already-applied"
	OutcomeAbsent  Outcome = "absent"
)

// Match describes a located span, half-open [Start, End).
type Match struct {
	Start int
	End   int
	Text  string

	// Callee and LeadingComma are set by marker-scan rules
	Callee       string
	LeadingComma bool

	// Groups holds regex submatches (index 0 is the whole match)
	Groups []string
}

// Rule is one static, read-only patch rule. Rules for the same logical tweak
// are kept in an append-only table ordered by priority: exact literals for
// known versions first, marker-scan next, regex fallbacks last. The first
// rule that reports found wins and later rules are not applied.
type Rule struct {
	// Name identifies the rule in logs and reports, e.g. "thinking/v1.0.88"
	Name string

	// Versions is a human note of the release range the rule covers
	Versions string

	Strategy Strategy

	// Search and Replace drive StrategyExact
	Search  string
	Replace string

	// Marker drives StrategyMarker. Window bounds the backward search for
	// the enclosing call's opening parenthesis (0 means defaultWindow).
	Marker string
	Window int

	// Pattern drives StrategyRegex; Rewrite is its $n expansion template
	Pattern *regexp.Regexp
	Rewrite string

	// Transform, when set, computes the replacement from the match and takes
	// precedence over Replace/Rewrite
	Transform func(m Match) string

	// AppliedMarker / AppliedPattern detect an already-performed transform
	AppliedMarker  string
	AppliedPattern *regexp.Regexp
}

// defaultWindow bounds how far behind a marker the enclosing call's opening
// parenthesis may sit. Minified call sites are dense; anything farther back
// is almost certainly a different expression.
const defaultWindow = 256

// Test evaluates the rule against content and returns its outcome, plus the
// located match when the outcome is found.
func (r *Rule) Test(content string) (Outcome, *Match) {
	switch r.Strategy {
	case StrategyExact:
		if i := strings.Index(content, r.Search); i >= 0 {
			return OutcomeFound, &Match{
				Start: i,
				End:   i + len(r.Search),
				Text:  r.Search,
			}
		}
	case StrategyMarker:
		if m := r.locateFromMarker(content); m != nil {
			return OutcomeFound, m
		}
	case StrategyRegex:
		if r.Pattern != nil {
			if loc := r.Pattern.FindStringSubmatchIndex(content); loc != nil {
				m := &Match{
					Start: loc[0],
					End:   loc[1],
					Text:  content[loc[0]:loc[1]],
				}
				for i := 0; i*2 < len(loc); i++ {
					if loc[i*2] < 0 {
						m.Groups = append(m.Groups, "")
						continue
					}
					m.Groups = append(m.Groups, content[loc[i*2]:loc[i*2+1]])
				}
				return OutcomeFound, m
			}
		}
	}

	if r.applied(content) {
		return OutcomeApplied, nil
	}
	return OutcomeAbsent, nil
}

// applied checks the secondary markers that indicate the transform was
// already performed on this content.
func (r *Rule) applied(content string) bool {
	if r.AppliedMarker != "" && strings.Contains(content, r.AppliedMarker) {
		return true
	}
	if r.AppliedPattern != nil && r.AppliedPattern.MatchString(content) {
		return true
	}
	return false
}

// locateFromMarker resolves a marker-scan rule: find the marker, walk
// backward within the window to the opening parenthesis of the call that
// encloses it, balance-scan to the close, then walk backward past whitespace
// to capture the callee identifier. Every step must resolve or the rule
// reports absent.
func (r *Rule) locateFromMarker(content string) *Match {
	markerAt := strings.Index(content, r.Marker)
	if markerAt < 0 {
		return nil
	}

	window := r.Window
	if window <= 0 {
		window = defaultWindow
	}
	lo := markerAt - window
	if lo < 0 {
		lo = 0
	}

	// Nearest-first: a '(' whose balanced close lands before the marker
	// belongs to an earlier sibling call, so keep walking back.
	for open := markerAt - 1; open >= lo; open-- {
		if content[open] != '(' {
			continue
		}
		closeAt := FindMatchingParen(content, open)
		if closeAt < markerAt+len(r.Marker) {
			continue
		}

		// Back up over whitespace between callee and '('
		i := open - 1
		for i >= 0 && isSpaceByte(content[i]) {
			i--
		}

		end := i
		for i >= 0 && isIdentByte(content[i]) {
			i--
		}
		if i == end {
			// No callee identifier: not a call expression
			return nil
		}
		calleeStart := i + 1

		m := &Match{
			Start:  calleeStart,
			End:    closeAt + 1,
			Callee: content[calleeStart : end+1],
		}
		m.Text = content[m.Start:m.End]

		// A comma just before the callee means the call sits in a
		// comma-operator chain; transforms may need to know.
		for j := calleeStart - 1; j >= 0; j-- {
			if isSpaceByte(content[j]) {
				continue
			}
			m.LeadingComma = content[j] == ','
			break
		}
		return m
	}
	return nil
}

// replacement computes the text that will replace the match.
func (r *Rule) replacement(m *Match) string {
	if r.Transform != nil {
		return r.Transform(*m)
	}
	switch r.Strategy {
	case StrategyRegex:
		return expandGroups(r.Rewrite, m.Groups)
	default:
		return r.Replace
	}
}

// expandGroups substitutes $0..$9 in template with the corresponding capture
// group. $$ escapes a literal dollar sign.
func expandGroups(template string, groups []string) string {
	var b strings.Builder
	for i := 0; i < len(template); i++ {
		c := template[i]
		if c != '$' || i+1 >= len(template) {
			b.WriteByte(c)
			continue
		}
		next := template[i+1]
		if next == '$' {
			b.WriteByte('$')
			i++
			continue
		}
		if next >= '0' && next <= '9' {
			n := int(next - '0')
			if n < len(groups) {
				b.WriteString(groups[n])
			}
			i++
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
