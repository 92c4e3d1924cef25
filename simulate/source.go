package simulate

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/distuv"
)

// RandomSource is a deterministic, seedable stream of standard normal draws.
//
// Calibration replays the same draw sequence for every trial parameter
// vector, so the source must reproduce its stream exactly: Reset rewinds to
// the construction seed, and Spawn derives an independent stream for an
// ensemble column so columns can be generated concurrently without the
// goroutine schedule leaking into the results.
type RandomSource struct {
	seed   uint64
	src    rand.Source
	normal distuv.Normal

	// Correlated-pair generator, built lazily and rebuilt if rho changes.
	pairRho float64
	pair    *distmv.Normal
	pairBuf []float64
}

// NewRandomSource returns a source whose stream is fully determined by seed.
func NewRandomSource(seed uint64) *RandomSource {
	src := rand.NewSource(seed)
	return &RandomSource{
		seed:    seed,
		src:     src,
		normal:  distuv.Normal{Mu: 0, Sigma: 1, Src: src},
		pairBuf: make([]float64, 2),
	}
}

// Normal returns one independent standard normal draw.
func (s *RandomSource) Normal() float64 {
	return s.normal.Rand()
}

// CorrelatedPair returns two standard normal draws with correlation rho.
// rho must lie in (-1, 1).
func (s *RandomSource) CorrelatedPair(rho float64) (float64, float64) {
	if s.pair == nil || rho != s.pairRho {
		cov := mat.NewSymDense(2, []float64{1, rho, rho, 1})
		pair, ok := distmv.NewNormal([]float64{0, 0}, cov, s.src)
		if !ok {
			// A 2x2 correlation matrix only fails to factor for |rho| >= 1.
			panic("simulate: pair correlation must be in (-1, 1)")
		}
		s.pair = pair
		s.pairRho = rho
	}
	s.pair.Rand(s.pairBuf)
	return s.pairBuf[0], s.pairBuf[1]
}

// Reset rewinds the stream to its construction seed.
func (s *RandomSource) Reset() {
	s.src.Seed(s.seed)
}

// Spawn derives the deterministic sub-source for ensemble column j. The
// derived seed depends only on the run seed and j, never on how much of the
// parent stream has been consumed.
func (s *RandomSource) Spawn(j int) *RandomSource {
	return NewRandomSource(columnSeed(s.seed, j))
}

// columnSeed mixes the run seed with the column index through the splitmix64
// finalizer so adjacent columns get well-separated streams.
func columnSeed(seed uint64, j int) uint64 {
	z := seed + (uint64(j)+1)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
