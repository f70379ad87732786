package crack

import (
	"context"

	"golang.org/x/sync/errgroup"

	"shiftcrack/cipher"
)

// RecoverParallel votes all 26 keys concurrently, at most workers at a
// time (workers <= 0 means unlimited).  Each key's verdict is
// independent of the others, so picking the lowest accepted key gives
// exactly the answer Recover would.
func (r *Recoverer) RecoverParallel(ctx context.Context, lines []string, workers int) (Result, error) {
	words, res := r.prepare(lines)
	if len(words) == 0 {
		return res, nil
	}

	verdicts := make([]verdict, cipher.AlphabetLen)
	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for key := 0; key < cipher.AlphabetLen; key++ {
		key := key
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			verdicts[key] = r.tryKey(words, key, res.HitsNeeded, res.MissesNeeded)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return res, err
	}

	res.KeysTried = cipher.AlphabetLen
	for key, v := range verdicts {
		if v == accepted {
			return r.accept(res, key), nil
		}
	}
	r.Logger.Verbose("no key reached %d hits", res.HitsNeeded)
	return res, nil
}
