package batch

import (
	"context"
	"runtime"
	"saltkey/pkg/define"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// ErrInvalidCount is returned for a count outside [1, define.MaxKeyCount].
var ErrInvalidCount = errors.Errorf("key count must be between 1 and %d", define.MaxKeyCount)

// Deriver is satisfied by *keyderiver.KeyDeriver.
type Deriver interface {
	Derive(length int) (string, error)
}

// Generate derives count keys of the given length, in parallel, and returns
// them in index order. The first failure stops scheduling further work.
func Generate(ctx context.Context, d Deriver, count, length int) ([]string, error) {
	if count < 1 || count > define.MaxKeyCount {
		return nil, errors.Wrapf(ErrInvalidCount, "got %d", count)
	}

	keys := make([]string, count)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i := 0; i < count; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return context.Cause(gctx)
			}
			key, err := d.Derive(length)
			if err != nil {
				return errors.Wrapf(err, "derive key %d", i)
			}
			keys[i] = key
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// the loop may have stopped early on a cancelled parent without any
	// goroutine failing
	if ctx.Err() != nil {
		return nil, context.Cause(ctx)
	}
	return keys, nil
}
