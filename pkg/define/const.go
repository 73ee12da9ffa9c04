package define

const (
	// SaltEnv names the variable carrying the secret salt.
	SaltEnv = "MY_APP_SALT"

	// DefaultSalt is used when SaltEnv is absent. It is a public literal and
	// therefore a weak salt: production deployments must set SaltEnv.
	DefaultSalt = "varsayilan_yedek_tuz_degeri"

	DefaultEnvFile = ".env"
)

const (
	RandomBytesSize = 64

	// DefaultKeyLength is the library default for Derive.
	DefaultKeyLength = 32

	// DefaultCLIKeyLength is what the command line prints when no length is given.
	DefaultCLIKeyLength = 24

	DefaultKeyCount = 1
	MaxKeyCount     = 100000
)

const (
	FlagLength  = "length"
	FlagCount   = "count"
	FlagHash    = "hash"
	FlagEnvFile = "env-file"
	FlagQuiet   = "quiet"
	FlagVerbose = "verbose"
)

type SaltSource int

const (
	DefaultSaltSource SaltSource = iota
	ConfiguredSaltSource
)

func (s SaltSource) String() string {
	switch s {
	case ConfiguredSaltSource:
		return "configured"
	case DefaultSaltSource:
		return "default"
	default:
		return "unknown"
	}
}
