// Package rules holds the per-version patch tables for each tweak.
//
// The tables are data, not logic: one append-only list per logical
// transformation, ordered by priority. Exact literals for known releases come
// first (newest release first), marker scans next, structural regex
// fallbacks last. The engine applies the first rule that reports found and
// skips the rest, so adding support for a new release means prepending a new
// exact rule, never editing an old one.
package rules

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arthur-debert/cctweak/pkg/patch"
)

// RuleSet is one logical transformation with its priority-ordered
// alternative rules. Exactly one alternative is ever applied.
type RuleSet struct {
	Name  string
	Rules []*patch.Rule
}

// Tweak is a named group of rule sets plus an advisory heuristic used only
// for user-facing messaging when nothing matched.
type Tweak struct {
	Name    string
	Summary string
	Sets    []RuleSet

	// AlreadyPatched is consulted when no rule reports found, to
	// distinguish "already patched" from "unrecognized version". It never
	// blocks or triggers a write.
	AlreadyPatched func(content string) bool
}

// All returns every tweak. The models map comes from the JSON sidecar
// configuration; roles with no configured model produce no rules.
func All(models map[string]string) []*Tweak {
	return []*Tweak{
		Thinking(),
		Banner(),
		Models(models),
	}
}

// Names lists the valid tweak names, sorted.
func Names() []string {
	names := []string{"thinking", "banner", "models"}
	sort.Strings(names)
	return names
}

// Get resolves tweak names to tweaks, empty meaning all. Unknown names are
// an input error.
func Get(names []string, models map[string]string) ([]*Tweak, error) {
	all := All(models)
	if len(names) == 0 {
		return all, nil
	}

	byName := make(map[string]*Tweak, len(all))
	for _, tw := range all {
		byName[tw.Name] = tw
	}

	var picked []*Tweak
	for _, name := range names {
		tw, ok := byName[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("unknown tweak %q (valid: %s)", name, strings.Join(Names(), ", "))
		}
		picked = append(picked, tw)
	}
	return picked, nil
}
