package apply

// Message constants
const (
	MsgShort = "Apply tweak(s) to the installed CLI"
	MsgLong  = `Apply locates the target, evaluates every rule for the selected tweaks,
and writes the patched content back. With no arguments all tweaks run.

The target is backed up before the first modifying write. Re-running apply
on a patched target is a no-op and reports "already patched". For native
binaries every replacement is length-preserving; a configured model name
that does not fit the original literal aborts before anything is written.`
	MsgExample = `  # Apply every tweak
  cctweak apply

  # Only the thinking tweak, preview first
  cctweak apply --dry-run thinking
  cctweak apply thinking

  # Patch an explicit file
  cctweak apply --file /opt/claude/cli.js`

	MsgUnrecognized = "pattern not found, the installed version may have changed; run 'cctweak triage'"
)
