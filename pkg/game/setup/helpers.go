package setup

import (
	"github.com/zyedidia/generic/mapset"

	"dungeons/pkg/engine/random"
)

// percentOf returns ceil(n * pct / 100).
func percentOf(n, pct int) int {
	return (n*pct + 99) / 100
}

// pickDistinct draws count distinct indexes in [0, n), redrawing repeats.
// Each accepted index is handed to place before the next draw, so place may
// itself draw from rng.
func pickDistinct(rng random.Source, n, count int, place func(idx int) error) error {
	if count > n {
		count = n
	}
	chosen := mapset.New[int]()
	for chosen.Size() < count {
		idx, err := rng.NextInRange(0, n)
		if err != nil {
			return err
		}
		if chosen.Has(idx) {
			continue
		}
		chosen.Put(idx)
		if err := place(idx); err != nil {
			return err
		}
	}
	return nil
}
