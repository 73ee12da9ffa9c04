package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// ReadDotEnv returns the variables declared in a dotenv file. A missing file
// yields an empty map and no error. Keys are upper-cased because viper folds
// them to lower case while reading.
func ReadDotEnv(path string) (map[string]string, error) {
	if path == "" {
		return map[string]string{}, nil
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logrus.Debugf("env file %q not found, skipping", path)
			return map[string]string{}, nil
		}
		return nil, errors.Wrapf(err, "stat env file %q", path)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read env file %q", path)
	}

	vars := make(map[string]string, len(v.AllKeys()))
	for _, key := range v.AllKeys() {
		vars[strings.ToUpper(key)] = v.GetString(key)
	}
	logrus.Debugf("loaded %d variables from %q", len(vars), path)
	return vars, nil
}
