// Package core holds small types shared by the root package and its
// subpackages (metrics, trace).
package core

import "fmt"

// Kind identifies which sampling operation produced a draw.
// It is strictly 8-bit so it can be stored as a single byte in trace records.
type Kind uint8

const (
	KindUniform Kind = iota + 1
	KindNormal
	KindExponential
	KindTriangular
	KindGamma
	KindInverseGamma
	KindBeta
	KindChiSquare
	KindWeibull
	KindDirichlet
	KindLaplace
)

// MaxKind is the highest defined Kind value.
const MaxKind = KindLaplace

// Valid reports whether k is one of the defined kinds.
func (k Kind) Valid() bool {
	return k >= KindUniform && k <= MaxKind
}

func (k Kind) String() string {
	switch k {
	case KindUniform:
		return "Uniform"
	case KindNormal:
		return "Normal"
	case KindExponential:
		return "Exponential"
	case KindTriangular:
		return "Triangular"
	case KindGamma:
		return "Gamma"
	case KindInverseGamma:
		return "InverseGamma"
	case KindBeta:
		return "Beta"
	case KindChiSquare:
		return "ChiSquare"
	case KindWeibull:
		return "Weibull"
	case KindDirichlet:
		return "Dirichlet"
	case KindLaplace:
		return "Laplace"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(k))
	}
}
