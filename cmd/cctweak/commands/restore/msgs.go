package restore

// Message constants
const (
	MsgShort = "Put the original target back from its backup"
	MsgLong  = `Restore copies the backup made before the first patch back over the
target, byte-for-byte. The backup itself is kept, so patch/restore can be
repeated. Fails when no backup exists.`
	MsgExample = `  # Restore the discovered installation
  cctweak restore

  # Restore an explicit file
  cctweak restore --file /opt/claude/cli.js`
)
