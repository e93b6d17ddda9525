// Package pointpat is your in-memory toolkit for describing planar point
// patterns — centers, dispersion, bounding shapes and the minimum
// enclosing circle.
//
// 🚀 What is pointpat?
//
//	A compact, deterministic centrography library that brings together:
//		• Core primitives: Point, Circle, Rect value types with strict validation
//		• Convex hull: counter-clockwise monotone-chain hull provider
//		• Minimum enclosing circle: Skyum's elimination algorithm over the hull
//		• Centers: mean center, weighted mean center, Manhattan & Euclidean median
//		• Dispersion: standard distance, standard deviational ellipse
//		• Bounds: axis-aligned minimum bounding rectangle
//
// ✨ Why choose pointpat?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – strict sentinel errors, no silent fallbacks
//   - Deterministic – no global state, no hidden randomness
//   - Numerically careful – tolerance-guarded degeneracy checks throughout
//
// Under the hood, everything is organized under four subpackages:
//
//	core/   — fundamental Point, Circle, Rect types & boundary normalization
//	hull/   — counter-clockwise convex hull (Andrew monotone chain)
//	mec/    — minimum enclosing circle via Skyum (1990)
//	centro/ — centrographic measures & a one-call Summarize dispatcher
//
// Quick ASCII example:
//
//	    ·  ·
//	  ·  ⊕   ·      ⊕ = mean center, ◯ = minimum enclosing circle
//	    ·  ·
//
// Dive into the per-package docs for formulas, complexity and error
// contracts.
//
//	go get github.com/katalvlaran/pointpat
package pointpat
