package main

import (
	"context"
	"fmt"
	"saltkey/pkg/batch"
	"saltkey/pkg/config"
	"saltkey/pkg/define"
	"saltkey/pkg/keyderiver"
	"saltkey/pkg/report"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

func generateKeys(ctx context.Context, command *cli.Command) error {
	algo, err := keyderiver.ParseHashAlgorithm(command.String(define.FlagHash))
	if err != nil {
		return fmt.Errorf("invalid --%s: %w", define.FlagHash, err)
	}

	envFile := command.String(define.FlagEnvFile)
	cfg, err := config.Load(envFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if cfg.Source == define.DefaultSaltSource {
		logrus.Warnf("%s is not set, falling back to the built-in default salt; set it for production use", define.SaltEnv)
	}

	length := command.Int(define.FlagLength)
	if length > keyderiver.EncodedLength {
		logrus.Debugf("requested length %d exceeds %d, the full key is returned", length, keyderiver.EncodedLength)
	}

	deriver := keyderiver.New(cfg.Salt, keyderiver.WithHash(algo))
	keys, err := batch.Generate(ctx, deriver, command.Int(define.FlagCount), length)
	if err != nil {
		return fmt.Errorf("failed to generate key: %w", err)
	}

	return report.Write(command.Root().Writer, report.Result{
		Source:   cfg.Source,
		FromFile: cfg.FromFile,
		EnvFile:  envFile,
		Keys:     keys,
		Quiet:    command.Bool(define.FlagQuiet),
	})
}
