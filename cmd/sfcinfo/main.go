// Command sfcinfo runs the curve-information analysis on one of the named
// curve specifications and reports its reachable states, face-lattice
// sizes, and the has_palindrome / opponent_inconsistent diagnostics.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/sfclab/sfclab/curve"
	"github.com/sfclab/sfclab/curveinfo"
)

var logger = log.New(os.Stderr, "sfcinfo: ", 0)

func main() {
	name := flag.String("curve", "hilbert2d", "curve to analyze: hilbert2d, hilbert3d, morton2d, sierpinski2d, peano, custom1, gosper, betaomega")
	dim := flag.Int("d", 2, "dimension, for curves that take one (peano)")
	k := flag.Int("k", 3, "per-axis branching, for curves that take one (peano)")
	flag.Parse()

	spec, err := resolveSpec(*name, *dim, *k)
	if err != nil {
		logger.Fatalf("resolving curve %q: %v", *name, err)
	}

	analysis, err := curveinfo.Analyze(spec)
	if err != nil {
		logger.Fatalf("analyzing curve %q: %v", *name, err)
	}

	if analysis.OpponentInconsistent {
		logger.Printf("diagnostic: opponent table is inconsistent for %q; neighbor tables built on it should not be trusted", *name)
	}

	fmt.Printf("curve: %s\n", *name)
	fmt.Printf("reachable states: %v\n", analysis.Reachable)
	fmt.Printf("has_palindrome: %v\n", analysis.HasPalindrome)
	fmt.Printf("opponent_inconsistent: %v\n", analysis.OpponentInconsistent)
	for _, state := range analysis.Reachable {
		poly := analysis.PolytopesByState[state]
		fmt.Printf("state %d: euler characteristic %d\n", state, poly.EulerCharacteristic())
		for dimK := 0; dimK <= poly.AmbientDim(); dimK++ {
			faces, err := poly.Faces(dimK)
			if err != nil {
				logger.Fatalf("state %d: faces(%d): %v", state, dimK, err)
			}
			fmt.Printf("  dim %d: %d faces\n", dimK, len(faces))
		}
	}
}

func resolveSpec(name string, d, k int) (*curve.Specification, error) {
	switch name {
	case "hilbert2d":
		return curve.Hilbert2D()
	case "hilbert3d":
		return curve.Hilbert3D()
	case "morton2d":
		return curve.MortonD(2, 2)
	case "sierpinski2d":
		return curve.SierpinskiD(2)
	case "peano":
		return curve.PeanoD(d, k)
	case "custom1":
		return curve.CustomCurve1()
	case "gosper":
		return curve.GosperCurve()
	case "betaomega":
		return curve.BetaOmegaCurve()
	default:
		return nil, fmt.Errorf("unknown curve %q", name)
	}
}
