// Package edgeworth computes the solution structure of a two-agent,
// two-good pure exchange economy for arbitrary utility functions.
//
// 🚀 What does it compute?
//
//	Given two utility expressions and the agents' initial endowments:
//		• Indifference curves for both agents (bisection on level sets)
//		• The contract curve, the Pareto-efficient allocations (MRS_A = MRS_B)
//		• Walrasian equilibria (MRS_A = MRS_B = price ratio on the budget line)
//		• Optional utility surfaces for 3D renderers
//
// ✨ Why this layout?
//
//   - Pure solvers: every call is a function of its inputs, no shared state
//   - Bounded: all searches carry tolerances and iteration caps
//   - Deterministic: parallel sweeps merge in index order
//   - Safe expressions: a small recursive-descent parser, no code execution
//
// Subpackages, leaves first:
//
//	utility/     : expression lexer, parser and compiled evaluator
//	economy/     : Utility, Endowment, Box, Point, Series
//	mrs/         : forward-difference marginal rates of substitution
//	search/      : bisection, grid arg-min, coordinate descent
//	indifference/: level curves
//	contract/    : contract curve solver
//	equilibrium/ : Walrasian equilibrium sweep
//	config/, logger/, httpapi/, cmd/edgeworth: service and CLI plumbing
//
// Quick picture of the box (agent A's origin bottom-left, B's top-right):
//
//	    ┌──────────────B
//	    │        ·  ⁄  │
//	    │   ★   · ⁄    │   ★ endowment, ⁄ contract curve,
//	    │      ●⁄      │   ● equilibrium, · budget line
//	    │     ⁄ ·      │
//	    A──────────────┘
//
// Solve is the single entry point tying the pieces together:
//
//	res, err := edgeworth.Solve(ctx, edgeworth.Problem{
//		UtilityA:  "x**0.5 * y**0.5",
//		UtilityB:  "x**0.3 * y**0.7",
//		Endowment: economy.Endowment{AX: 10, AY: 5, BX: 5, BY: 10},
//	}, edgeworth.DefaultOptions())
package edgeworth
