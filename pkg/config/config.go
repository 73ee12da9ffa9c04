// Package config resolves the salt once, at the program's entry boundary.
package config

import (
	"os"
	"saltkey/pkg/define"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Salt   string
	Source define.SaltSource
	// FromFile is set when the configured salt came from the dotenv file
	// rather than the process environment.
	FromFile bool
}

type saltEnv struct {
	Salt string `env:"MY_APP_SALT"`
}

// Load reads the salt from the process environment, falling back to the
// dotenv file at envFile and finally to define.DefaultSalt. Process
// variables always win over the file. A variable that is present but empty
// is used verbatim; only an absent one selects the default.
func Load(envFile string) (*Config, error) {
	return load(envFile, env.ToMap(os.Environ()))
}

func load(envFile string, environ map[string]string) (*Config, error) {
	fileVars, err := ReadDotEnv(envFile)
	if err != nil {
		return nil, err
	}

	merged := make(map[string]string, len(environ)+len(fileVars))
	for k, v := range fileVars {
		merged[k] = v
	}
	_, inProcess := environ[define.SaltEnv]
	for k, v := range environ {
		merged[k] = v
	}

	var raw saltEnv
	if err := ParseEnv(&raw, merged); err != nil {
		return nil, err
	}

	if _, present := merged[define.SaltEnv]; !present {
		logrus.Debugf("%s is not set, using the default salt", define.SaltEnv)
		return &Config{
			Salt:   define.DefaultSalt,
			Source: define.DefaultSaltSource,
		}, nil
	}

	return &Config{
		Salt:     raw.Salt,
		Source:   define.ConfiguredSaltSource,
		FromFile: !inProcess,
	}, nil
}
