// Package economy defines the shared vocabulary of a two-agent, two-good
// pure exchange economy: utilities, endowments, the Edgeworth box and the
// allocations that live inside it.
//
// 🚀 What is an Edgeworth box?
//
//	A rectangle of width TotalX and height TotalY (the aggregate endowment).
//	Every point (x, y) inside is a feasible allocation: agent A holds (x, y)
//	and agent B holds the complement (TotalX−x, TotalY−y).
//
//	   B's origin ─────────────┐
//	   │                       │
//	   │        • (x, y)       │
//	   │                       │
//	   └──────────────── A's origin
//
// ✨ Key types:
//   - Utility / UtilityFunc: anything with Eval(x, y) float64
//   - Endowment            : the four initial holdings (AX, AY, BX, BY)
//   - Box                  : the box dimensions, complement and interior tests
//   - Point                : agent A's bundle
//   - Series               : a float slice whose JSON form maps NaN/±Inf to null
//
// Every value here is immutable by convention and safe to share between
// goroutines; solvers never mutate their inputs.
package economy
