package define

// Set at build time with -ldflags "-X saltkey/pkg/define.Version=...".
var (
	Version  = ""
	CommitID = ""
)
