package patch

import (
	"strings"

	"github.com/arthur-debert/cctweak/pkg/errors"
	"github.com/arthur-debert/cctweak/pkg/logging"
)

// Apply splices the rule's replacement into content and returns the result.
// When binary is true the replacement is length-preserving: shorter
// replacements are right-padded with ASCII spaces to the matched span's
// length, and a longer replacement is an error before anything is touched.
// Returns OutcomeApplied/OutcomeAbsent unchanged content when there is
// nothing to do.
func Apply(content string, r *Rule, binary bool) (string, Outcome, error) {
	outcome, m := r.Test(content)
	if outcome != OutcomeFound {
		return content, outcome, nil
	}

	repl := r.replacement(m)
	span := m.End - m.Start

	if binary {
		if len(repl) > span {
			return content, outcome, errors.Newf(errors.ErrUnsafeReplacement,
				"rule %s: replacement is %d bytes but span is only %d", r.Name, len(repl), span).
				WithDetail("rule", r.Name)
		}
		if len(repl) < span {
			repl += strings.Repeat(" ", span-len(repl))
		}
	}

	out := content[:m.Start] + repl + content[m.End:]

	if binary && len(out) != len(content) {
		return content, outcome, errors.Newf(errors.ErrLengthInvariant,
			"rule %s: output %d bytes, input %d bytes", r.Name, len(out), len(content))
	}

	logger := logging.GetLogger("patch")
	logger.Debug().
		Str("rule", r.Name).
		Int("start", m.Start).
		Int("end", m.End).
		Bool("binary", binary).
		Msg("Rule applied")

	return out, OutcomeFound, nil
}

// ApplyFirst walks rules in table order and applies the first one that
// reports found; the remaining rules are not evaluated further, which is the
// documented priority order (exact literals before marker scans before regex
// fallbacks). When no rule finds its pattern the aggregate outcome is
// already-applied if any rule said so, absent otherwise.
func ApplyFirst(content string, rules []*Rule, binary bool) (string, Outcome, *Rule, error) {
	sawApplied := false
	var appliedRule *Rule

	for _, r := range rules {
		out, outcome, err := Apply(content, r, binary)
		if err != nil {
			return content, outcome, r, err
		}
		switch outcome {
		case OutcomeFound:
			return out, OutcomeFound, r, nil
		case OutcomeApplied:
			if !sawApplied {
				sawApplied = true
				appliedRule = r
			}
		}
	}

	if sawApplied {
		return content, OutcomeApplied, appliedRule, nil
	}
	return content, OutcomeAbsent, nil, nil
}
