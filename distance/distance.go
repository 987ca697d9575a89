package distance

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/hupe1980/aligndist/internal/simd"
)

// ErrInvalidArgument is returned for unsupported metrics, norm orders or axes.
var ErrInvalidArgument = errors.New("invalid argument")

// Epsilon guards normalization against division by zero.
// It is the float32 machine epsilon regardless of the precision in use.
const Epsilon float32 = 1.1920929e-07

// Dot calculates the dot product of two vectors.
// Assumes vectors are the same length (caller's responsibility).
func Dot(a, b []float32) float32 {
	return simd.Dot(a, b)
}

// SquaredL2 calculates the squared L2 (Euclidean) distance between two vectors.
// Assumes vectors are the same length (caller's responsibility).
func SquaredL2(a, b []float32) float32 {
	return simd.SquaredL2(a, b)
}

// NormalizeL2InPlace L2-normalizes v in place.
// Returns false if v has zero L2 norm.
func NormalizeL2InPlace(v []float32) bool {
	if len(v) == 0 {
		return false
	}
	norm2 := simd.Dot(v, v)
	if norm2 == 0 {
		return false
	}
	simd.ScaleInPlace(v, 1/simd.Sqrt(norm2))
	return true
}

// NormalizeL2Copy returns a normalized copy of src.
// Returns false if src has zero L2 norm.
func NormalizeL2Copy(src []float32) ([]float32, bool) {
	dst := slices.Clone(src)
	if !NormalizeL2InPlace(dst) {
		return nil, false
	}
	return dst, true
}

// Metric represents the pairwise comparison mode.
type Metric int

const (
	Euclidean Metric = iota
	Cosine
)

func (m Metric) String() string {
	switch m {
	case Euclidean:
		return "euclidean"
	case Cosine:
		return "cosine"
	default:
		return fmt.Sprintf("unknown(%d)", int(m))
	}
}

// ParseMetric maps "euclidean" or "cosine" to a Metric.
func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "euclidean":
		return Euclidean, nil
	case "cosine":
		return Cosine, nil
	default:
		return 0, fmt.Errorf("%w: unsupported metric %q", ErrInvalidArgument, s)
	}
}
