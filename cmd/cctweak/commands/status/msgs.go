package status

// Message constants
const (
	MsgShort = "Show what each tweak would do without writing"
	MsgLong  = `Status classifies the target and evaluates every rule for the selected
tweaks (all of them by default), reporting per-tweak whether the pattern
is present, already applied, or absent. Nothing is ever written.

Unlike apply, status always exits zero when the target was located; an
unrecognized version is information here, not a failure.`
	MsgExample = `  # Status of every tweak against the discovered installation
  cctweak status

  # Against an explicit file
  cctweak status --file /opt/claude/claude`
)
