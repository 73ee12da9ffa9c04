package report

import (
	"fmt"
	"io"
	"saltkey/pkg/define"
	"strings"
)

type Result struct {
	Source   define.SaltSource
	FromFile bool
	EnvFile  string
	Keys     []string
	// Quiet prints bare keys, one per line.
	Quiet bool
}

func (r Result) SourceLabel() string {
	switch {
	case r.Source == define.ConfiguredSaltSource && r.FromFile:
		return fmt.Sprintf("%s file", r.EnvFile)
	case r.Source == define.ConfiguredSaltSource:
		return "environment (" + define.SaltEnv + ")"
	default:
		return "default value"
	}
}

func Write(w io.Writer, r Result) error {
	var b strings.Builder
	if r.Quiet {
		for _, key := range r.Keys {
			b.WriteString(key)
			b.WriteByte('\n')
		}
	} else {
		b.WriteString("--- Secure Key System ---\n")
		fmt.Fprintf(&b, "Salt source: %s\n", r.SourceLabel())
		for _, key := range r.Keys {
			fmt.Fprintf(&b, "Generated key: %s\n", key)
			fmt.Fprintf(&b, "Length: %d characters\n", len(key))
		}
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
