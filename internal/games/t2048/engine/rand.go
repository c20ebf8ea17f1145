package engine

// Source is the random source used for spawning.
// *math/rand.Rand satisfies it; tests inject seeded generators.
type Source interface {
	Intn(n int) int
	Float64() float64
}

// SampleSpawnValue returns 4 with probability p4, otherwise 2.
func SampleSpawnValue(rng Source, p4 float64) int {
	if rng.Float64() < p4 {
		return 4
	}
	return 2
}

// frozenSource backs cloned boards. It never draws from the original
// board's source: spawns land on the first empty cell with value 2.
type frozenSource struct{}

func (frozenSource) Intn(int) int     { return 0 }
func (frozenSource) Float64() float64 { return 1 }
