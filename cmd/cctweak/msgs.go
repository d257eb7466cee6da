package cctweak

// Message constants for the root command
const (
	MsgRootShort = "Tweak hardcoded UI behaviors of the installed Claude Code CLI"
	MsgRootLong  = `cctweak locates the installed Claude Code distributable (the minified
cli.js bundle or a native executable) and applies targeted, reversible
string-level substitutions:

  - thinking: always show thinking content
  - banner:   hide the model deprecation banner
  - models:   select models for subagent roles (configured in models.json)

A backup of the target is made before the first modifying write; 'cctweak
restore' puts the original back. Native binaries are edited in place with
strictly length-preserving replacements and re-signed on macOS.`

	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun  = "Preview changes without writing anything"
	MsgFlagFile    = "Patch this file instead of discovering the installation"
	MsgFlagModels  = "Path to the models.json sidecar (default: config dir)"
	MsgFlagNoSign  = "Skip macOS re-signing after a native-binary write"
)
