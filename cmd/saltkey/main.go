package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"saltkey/pkg/define"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, os.Interrupt)
	defer stop()

	if err := newApp().Run(ctx, os.Args); err != nil {
		logrus.Fatal(err)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:        "saltkey",
		Usage:       "generate a random, salted, URL-safe key",
		UsageText:   "saltkey [flags]",
		Description: "hash 64 bytes of OS entropy, a nanosecond timestamp and the " + define.SaltEnv + " salt into a URL-safe base64 key",
		Version:     versionString(),
		Before:      earlyStage,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    define.FlagLength,
				Aliases: []string{"l"},
				Usage:   "key length in characters, at most 43 are available",
				Value:   define.DefaultCLIKeyLength,
			},
			&cli.IntFlag{
				Name:    define.FlagCount,
				Aliases: []string{"n"},
				Usage:   fmt.Sprintf("how many keys to generate, at most %d", define.MaxKeyCount),
				Value:   define.DefaultKeyCount,
			},
			&cli.StringFlag{
				Name:    define.FlagHash,
				Usage:   "hash algorithm: sha256 or blake2b-256",
				Value:   "sha256",
				Sources: cli.EnvVars("SALTKEY_HASH"),
			},
			&cli.StringFlag{
				Name:    define.FlagEnvFile,
				Usage:   "dotenv file read before the process environment, ignored when missing",
				Value:   define.DefaultEnvFile,
				Sources: cli.EnvVars("SALTKEY_ENV_FILE"),
			},
			&cli.BoolFlag{
				Name:    define.FlagQuiet,
				Aliases: []string{"q"},
				Usage:   "print only the keys, one per line",
			},
			&cli.BoolFlag{
				Name:  define.FlagVerbose,
				Usage: "enable debug logging",
			},
		},
		Action: generateKeys,
	}
}
