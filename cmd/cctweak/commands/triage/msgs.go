package triage

// Message constants
const (
	MsgShort = "Show the troubleshooting guide for unrecognized versions"
	MsgLong  = `Triage prints the step-by-step guide for the "pattern not found, version
may have changed" outcome: confirming the target, checking for partial
patches, and locating the new code shape for a table update.`
)
