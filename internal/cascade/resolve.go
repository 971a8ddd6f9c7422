package cascade

import (
	"fmt"

	"github.com/eugenenazirov/releasecfg/internal/model"
)

// Effective merges every packager kind of global with override.
func Effective(global, override model.Packagers) model.Packagers {
	var out model.Packagers
	for _, kind := range model.AllPackagerKinds {
		switch kind {
		case model.BrewKind:
			out.Brew = MergeBrew(global.Brew, override.Brew)
		case model.ChocolateyKind:
			out.Chocolatey = MergeChocolatey(global.Chocolatey, override.Chocolatey)
		case model.ScoopKind:
			out.Scoop = MergeScoop(global.Scoop, override.Scoop)
		case model.SnapKind:
			out.Snap = MergeSnap(global.Snap, override.Snap)
		default:
			panic(fmt.Sprintf("cascade: unhandled packager kind %s", kind))
		}
	}
	return out
}

// Resolve fills Distribution.Effective for every distribution of m. It
// reads only the global packagers and each distribution's overrides, so
// calling it again produces the same result.
func Resolve(m *model.Model) {
	if m == nil {
		return
	}
	for _, d := range m.Distributions {
		if d == nil {
			continue
		}
		d.Effective = Effective(m.Packagers, d.Packagers)
	}
}
