// Package sfclab is your in-memory playground for defining space-filling
// curves as geometric production systems and querying their structure.
//
// A curve is specified once, declaratively, as a grammar over a small set
// of states together with the column-affine transition matrices that place
// each state's children inside its parent's root polytope. Everything else
// — the curve's face lattice, its neighbor relation across facets, its
// state at an arbitrary position — is derived from that specification
// rather than hand-written per curve.
//
// Under the hood, the module is organized as:
//
//	pointmat/    — dense row-major point matrices (one point per column) and affine maps
//	natset/      — small hashable mutable sets of natural numbers
//	subspace/    — incremental orthonormal bases (Gram-Schmidt) and complements
//	multidim/    — sparse growable n-dimensional arrays, keyed by index tuple
//	completion/  — generic worklist/fixpoint traversal over expand functions
//	polytope/    — convex polytopes as explicit face lattices
//	quickhull/   — deterministic incremental convex hull construction
//	curve/       — curve specifications and the built-in curve factories
//	curveinfo/   — offline structural analysis of a curve specification
//	sfcalgo/     — table-driven O(level) neighbor-finding algorithms
//	cmd/sfcinfo/ — CLI front-end for curveinfo
//
// Quick example: analyzing the classic 2D Hilbert curve.
//
//	spec, _ := curve.Hilbert2D()
//	analysis, _ := curveinfo.Analyze(spec)
//	fmt.Println(analysis.Reachable, analysis.HasPalindrome)
package sfclab
