package pagerank

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/floats"
)

// Classic random-surfer parameters.
const (
	DefaultDamping = 0.85
	DefaultSamples = 10000
	DefaultEpsilon = 0.001
)

// Config controls both estimators.
type Config struct {
	Damping       float64 // chance of following an outlink instead of jumping anywhere
	Samples       int     // surfer steps taken by SampleRank
	Epsilon       float64 // IterateRank stops once no rank moves by more than this
	MaxIterations int     // 0 means iterate until convergence
}

// Default returns the standard configuration: damping 0.85, 10000 samples,
// convergence at 0.001.
func Default() Config {
	return Config{Damping: DefaultDamping, Samples: DefaultSamples, Epsilon: DefaultEpsilon}
}

func (c Config) validate() error {
	if c.Damping <= 0 || c.Damping > 1 {
		return fmt.Errorf("damping must be in (0, 1], got %v", c.Damping)
	}
	if c.Samples <= 0 {
		return fmt.Errorf("samples must be positive, got %d", c.Samples)
	}
	if c.Epsilon <= 0 {
		return fmt.Errorf("epsilon must be positive, got %v", c.Epsilon)
	}
	return nil
}

// TransitionModel returns the distribution over the surfer's next page: with
// probability damping it follows one of page's outlinks uniformly, otherwise
// it jumps to any corpus page uniformly. A page with no outlinks yields the
// uniform distribution over the whole corpus.
func TransitionModel(corpus Corpus, page string, damping float64) (map[string]float64, error) {
	links, ok := corpus[page]
	if !ok {
		return nil, fmt.Errorf("page %q not in corpus", page)
	}

	n := float64(len(corpus))
	dist := make(map[string]float64, len(corpus))
	if len(links) == 0 {
		for p := range corpus {
			dist[p] = 1 / n
		}
		return dist, nil
	}

	for p := range corpus {
		dist[p] = (1 - damping) / n
	}
	share := damping / float64(len(links))
	for p := range links {
		dist[p] += share
	}
	return dist, nil
}

// SampleRank estimates ranks by walking cfg.Samples steps of the surfer
// chain, starting on a uniformly random page, and counting visits. A nil rng
// is seeded from the clock; pass a seeded one for reproducible walks.
func SampleRank(corpus Corpus, cfg Config, rng *rand.Rand) (Ranks, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if len(corpus) == 0 {
		return nil, fmt.Errorf("empty corpus")
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	pages := corpus.Pages()
	counts := make(map[string]int, len(pages))

	page := pages[rng.Intn(len(pages))]
	counts[page]++
	for i := 1; i < cfg.Samples; i++ {
		dist, err := TransitionModel(corpus, page, cfg.Damping)
		if err != nil {
			return nil, err
		}
		page = weightedChoice(rng, pages, dist)
		counts[page]++
	}

	ranks := make(Ranks, len(pages))
	for _, p := range pages {
		ranks[p] = float64(counts[p]) / float64(cfg.Samples)
	}
	return ranks, nil
}

// weightedChoice draws one page from dist. Pages are scanned in sorted order
// so a fixed seed always yields the same walk.
func weightedChoice(rng *rand.Rand, pages []string, dist map[string]float64) string {
	r := rng.Float64()
	var cum float64
	for _, p := range pages {
		cum += dist[p]
		if r < cum {
			return p
		}
	}
	// Rounding can leave cum a hair under 1.
	return pages[len(pages)-1]
}

// IterateRank starts every page at rank 1/N and applies
//
//	PR(p) = (1-d)/N + d * sum over i linking to p of PR(i)/outdegree(i)
//
// until no rank moves by more than cfg.Epsilon between rounds. A page with
// no outlinks is treated as linking to every page, itself included.
func IterateRank(corpus Corpus, cfg Config) (Ranks, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	n := len(corpus)
	if n == 0 {
		return nil, fmt.Errorf("empty corpus")
	}

	pages := corpus.Pages()
	index := make(map[string]int, n)
	for i, p := range pages {
		index[p] = i
	}

	// incoming[j] holds the indices of pages linking to pages[j]; outdeg is
	// the effective outdegree, with dangling pages linking everywhere.
	incoming := make([][]int, n)
	outdeg := make([]float64, n)
	for p, links := range corpus {
		i := index[p]
		if len(links) == 0 {
			outdeg[i] = float64(n)
			for j := range incoming {
				incoming[j] = append(incoming[j], i)
			}
			continue
		}
		outdeg[i] = float64(len(links))
		for target := range links {
			incoming[index[target]] = append(incoming[index[target]], i)
		}
	}

	ranks := make([]float64, n)
	next := make([]float64, n)
	for i := range ranks {
		ranks[i] = 1 / float64(n)
	}

	base := (1 - cfg.Damping) / float64(n)
	for round := 0; ; round++ {
		if cfg.MaxIterations > 0 && round >= cfg.MaxIterations {
			return nil, fmt.Errorf("no convergence after %d iterations", cfg.MaxIterations)
		}
		for j := range next {
			var sum float64
			for _, i := range incoming[j] {
				sum += ranks[i] / outdeg[i]
			}
			next[j] = base + cfg.Damping*sum
		}
		delta := floats.Distance(ranks, next, math.Inf(1))
		copy(ranks, next)
		if delta <= cfg.Epsilon {
			break
		}
	}

	out := make(Ranks, n)
	for i, p := range pages {
		out[p] = ranks[i]
	}
	return out, nil
}

// Sum returns the total mass of a rank distribution. Both estimators produce
// values that sum to 1 up to rounding.
func (r Ranks) Sum() float64 {
	vals := make([]float64, 0, len(r))
	for _, v := range r {
		vals = append(vals, v)
	}
	return floats.Sum(vals)
}
