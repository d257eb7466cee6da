package genconfig

// Message constants
const (
	MsgShort = "Write starter configuration files"
	MsgLong  = `Genconfig writes cctweak.toml (the tool settings, seeded with the current
effective values) and models.json (the role-to-model sidecar, seeded with
empty values) into the config directory. Existing files are never
overwritten.`
)
