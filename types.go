package edgeworth

import (
	"github.com/katalvlaran/edgeworth/contract"
	"github.com/katalvlaran/edgeworth/economy"
	"github.com/katalvlaran/edgeworth/equilibrium"
	"github.com/katalvlaran/edgeworth/indifference"
)

// DefaultSurfaceResolution is the side of the square utility-surface grid.
const DefaultSurfaceResolution = 50

// Problem is one exchange economy: two utility expressions over x and y and
// the initial endowments.
type Problem struct {
	UtilityA  string            `json:"utility_a" yaml:"utility_a"`
	UtilityB  string            `json:"utility_b" yaml:"utility_b"`
	Endowment economy.Endowment `json:"endowment" yaml:"endowment"`
}

// Options bundles the per-solver options.
//
// SurfaceResolution ≤ 0 disables the utility surfaces.
type Options struct {
	Indifference      indifference.Options `json:"indifference" yaml:"indifference"`
	Contract          contract.Options     `json:"contract" yaml:"contract"`
	Equilibrium       equilibrium.Options  `json:"equilibrium" yaml:"equilibrium"`
	SurfaceResolution int                  `json:"surface_resolution" yaml:"surface_resolution"`
}

// DefaultOptions returns every solver's defaults and 50×50 surfaces.
func DefaultOptions() Options {
	return Options{
		Indifference:      indifference.DefaultOptions(),
		Contract:          contract.DefaultOptions(),
		Equilibrium:       equilibrium.DefaultOptions(),
		SurfaceResolution: DefaultSurfaceResolution,
	}
}

// Surface is a utility surface sampled on X × Y: Z[i][j] = u(X[j], Y[i]).
// Coordinates are agent A's; agent B's surface is evaluated at the
// complement bundle, so it appears inverted over the same box.
type Surface struct {
	X economy.Series   `json:"x"`
	Y economy.Series   `json:"y"`
	Z []economy.Series `json:"z"`
}

// Result carries every artefact a renderer needs.
//
// IndifferenceB is expressed in agent B's own coordinates; plot it at
// (TotalX − x, TotalY − y) to place it in the box.
type Result struct {
	Box           economy.Box               `json:"box"`
	Endowment     economy.Point             `json:"endowment"`
	IndifferenceA []indifference.Curve      `json:"indifference_a"`
	IndifferenceB []indifference.Curve      `json:"indifference_b"`
	Contract      contract.Result           `json:"contract"`
	Equilibria    []equilibrium.Equilibrium `json:"equilibria"`
	SurfaceA      *Surface                  `json:"surface_a,omitempty"`
	SurfaceB      *Surface                  `json:"surface_b,omitempty"`
}
