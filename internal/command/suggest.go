package command

import (
	"github.com/agext/levenshtein"

	"github.com/vk/clibase/internal/option"
)

// maxSuggestDistance bounds how far a registered spelling may be from the
// typed flag before it stops being a plausible intent.
const maxSuggestDistance = 2

// closestOption returns the registered name or alias nearest to the typed
// identifier, or "" when nothing is close enough to suggest.
func closestOption(typed string, opts *option.Collection) string {
	best := ""
	bestDist := maxSuggestDistance + 1
	for _, opt := range opts.All() {
		for _, candidate := range append([]string{opt.Name}, opt.Aliases...) {
			if d := levenshtein.Distance(typed, candidate, nil); d < bestDist {
				best = candidate
				bestDist = d
			}
		}
	}
	return best
}
