package challenge

import "github.com/drunkirk/drunkirk-go/internal/engine"

// DefaultFavoriteBoost is the weight multiplier for favorited challenges.
const DefaultFavoriteBoost = 2.0

// Options carries the user preferences a single draw is filtered and
// weighted by. The maps are read, never written.
type Options struct {
	// Disabled marks challenge ids removed from the pool (true = disabled).
	Disabled map[string]bool
	// EnabledCategories disables a category when its entry is explicitly
	// false. A missing entry means enabled.
	EnabledCategories map[string]bool
	// Favorites marks challenge ids whose weight gets the favorite boost.
	Favorites map[string]bool
	// FavoriteBoost overrides DefaultFavoriteBoost when positive.
	FavoriteBoost float64
}

func (o Options) boost() float64 {
	if o.FavoriteBoost > 0 {
		return o.FavoriteBoost
	}
	return DefaultFavoriteBoost
}

func categoryEnabled(m map[string]bool, cat string) bool {
	v, ok := m[cat]
	return !ok || v
}

// Pick filters the pool by the options, weights the survivors and draws one
// challenge. Filtering degrades rather than starves: if the category filter
// empties the pool, the disabled-only pool is used; if that is empty too,
// the entire original pool is. Pick fails only on a malformed pool, which is
// a programmer error.
func Pick(r engine.Rand, pool []Challenge, opts Options) (Challenge, error) {
	enabledOnly := make([]Challenge, 0, len(pool))
	for _, c := range pool {
		if !opts.Disabled[c.Info().ID] {
			enabledOnly = append(enabledOnly, c)
		}
	}

	filtered := make([]Challenge, 0, len(enabledOnly))
	for _, c := range enabledOnly {
		cats := c.Info().Categories
		if len(cats) == 0 {
			filtered = append(filtered, c)
			continue
		}
		for _, cat := range cats {
			if categoryEnabled(opts.EnabledCategories, cat) {
				filtered = append(filtered, c)
				break
			}
		}
	}

	final := filtered
	if len(final) == 0 {
		final = enabledOnly
	}
	if len(final) == 0 {
		final = pool
	}

	weights := make([]float64, len(final))
	for i, c := range final {
		info := c.Info()
		w := info.Difficulty.BaseWeight()
		if opts.Favorites[info.ID] {
			w *= opts.boost()
		}
		if info.Weight != 0 {
			w *= info.Weight
		}
		weights[i] = w
	}

	return engine.WeightedPick(r, final, weights)
}
