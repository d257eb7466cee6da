// Package style renders patch run reports for the terminal, in the vein of
// a package manager's status table: one row per transformation with a
// colored outcome chip.
package style

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"

	"github.com/arthur-debert/cctweak/pkg/core"
	"github.com/arthur-debert/cctweak/pkg/patch"
)

// ConfigureTerminal disables pterm color output when stdout is not an
// interactive terminal, so piped output stays clean.
func ConfigureTerminal() {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		pterm.DisableColor()
	}
}

// OutcomeStyle returns the pterm style for an outcome chip
func OutcomeStyle(o patch.Outcome) *pterm.Style {
	switch o {
	case patch.OutcomeFound:
		return pterm.NewStyle(pterm.FgGreen, pterm.Bold)
	case patch.OutcomeApplied:
		return pterm.NewStyle(pterm.FgCyan)
	default:
		return pterm.NewStyle(pterm.FgYellow)
	}
}

// outcomeLabel maps outcomes to the words shown to the operator
func outcomeLabel(s core.TweakSummary, dryRun bool) string {
	switch s.Outcome {
	case patch.OutcomeFound:
		if dryRun {
			return "would patch"
		}
		return "patched"
	case patch.OutcomeApplied:
		if s.Heuristic {
			return "already patched (heuristic)"
		}
		return "already patched"
	default:
		if s.NothingConfigured {
			return "nothing configured"
		}
		return "not found"
	}
}

// RenderReport renders the per-tweak summary plus target details.
func RenderReport(res *core.Result) string {
	var b strings.Builder

	header := pterm.NewStyle(pterm.Bold)
	b.WriteString(header.Sprintf("Target: %s (%s)", res.TargetPath, res.Kind))
	b.WriteString("\n\n")

	rows := pterm.TableData{{"Tweak", "Outcome", "Rule"}}
	byTweak := make(map[string][]core.SetResult)
	for _, sr := range res.Sets {
		byTweak[sr.Tweak] = append(byTweak[sr.Tweak], sr)
	}

	for _, s := range res.Summary {
		label := OutcomeStyle(s.Outcome).Sprint(outcomeLabel(s, res.DryRun))

		rule := ""
		for _, sr := range byTweak[s.Name] {
			if sr.Rule != "" {
				rule = sr.Rule
				break
			}
		}
		rows = append(rows, []string{s.Name, label, rule})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(rows).Srender()
	if err != nil {
		// Degrade to a plain listing
		for _, s := range res.Summary {
			b.WriteString(fmt.Sprintf("  %-10s %s\n", s.Name, outcomeLabel(s, res.DryRun)))
		}
	} else {
		b.WriteString(table)
		b.WriteString("\n")
	}

	if res.Written {
		b.WriteString("\n")
		b.WriteString(pterm.NewStyle(pterm.FgGreen).Sprintf("Wrote %s", res.TargetPath))
		b.WriteString("\n")
		if res.BackupPath != "" {
			b.WriteString(fmt.Sprintf("Backup at %s\n", res.BackupPath))
		}
		if res.Signed {
			b.WriteString("Re-signed with ad hoc signature\n")
		}
	} else if res.DryRun && res.Changed {
		b.WriteString("\nDry run: no files were modified\n")
	}

	return b.String()
}

// RenderAttempts formats the discovery attempts for a not-found report.
func RenderAttempts(attempts []string) string {
	var b strings.Builder
	b.WriteString("Discovery methods tried:\n")
	for _, a := range attempts {
		b.WriteString("  - " + a + "\n")
	}
	return b.String()
}
