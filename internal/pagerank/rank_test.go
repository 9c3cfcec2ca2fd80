package pagerank

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestTransitionModel(t *testing.T) {
	corpus := Corpus{
		"1.html": {"2.html": true, "3.html": true},
		"2.html": {"3.html": true},
		"3.html": {"2.html": true},
	}

	tests := []struct {
		name string
		page string
		want map[string]float64
	}{
		{
			name: "two outlinks",
			page: "1.html",
			want: map[string]float64{"1.html": 0.05, "2.html": 0.475, "3.html": 0.475},
		},
		{
			name: "single outlink",
			page: "2.html",
			want: map[string]float64{"1.html": 0.05, "2.html": 0.05, "3.html": 0.90},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TransitionModel(corpus, tt.page, 0.85)
			if err != nil {
				t.Fatalf("TransitionModel: %v", err)
			}
			for page, want := range tt.want {
				if !almostEqual(got[page], want, 1e-9) {
					t.Errorf("P(%s) = %v, want %v", page, got[page], want)
				}
			}
			var sum float64
			for _, p := range got {
				sum += p
			}
			if !almostEqual(sum, 1, 1e-9) {
				t.Errorf("distribution sums to %v, want 1", sum)
			}
		})
	}
}

func TestTransitionModelDangling(t *testing.T) {
	corpus := Corpus{
		"1.html": {"2.html": true},
		"2.html": {},
	}
	got, err := TransitionModel(corpus, "2.html", 0.85)
	if err != nil {
		t.Fatalf("TransitionModel: %v", err)
	}
	for page, p := range got {
		if !almostEqual(p, 0.5, 1e-9) {
			t.Errorf("P(%s) = %v, want 0.5", page, p)
		}
	}
}

func TestTransitionModelUnknownPage(t *testing.T) {
	corpus := Corpus{"1.html": {}}
	if _, err := TransitionModel(corpus, "ghost.html", 0.85); err == nil {
		t.Error("expected error for unknown page")
	}
}

func TestIterateRank(t *testing.T) {
	tests := []struct {
		name   string
		corpus Corpus
		want   map[string]float64
	}{
		{
			name:   "single page",
			corpus: Corpus{"a.html": {}},
			want:   map[string]float64{"a.html": 1},
		},
		{
			name: "mutual pair",
			corpus: Corpus{
				"a.html": {"b.html": true},
				"b.html": {"a.html": true},
			},
			want: map[string]float64{"a.html": 0.5, "b.html": 0.5},
		},
		{
			// Exact solution: PR(1) = 0.05, PR(2) = PR(3) = 0.475.
			name: "three pages",
			corpus: Corpus{
				"1.html": {"2.html": true, "3.html": true},
				"2.html": {"3.html": true},
				"3.html": {"2.html": true},
			},
			want: map[string]float64{"1.html": 0.05, "2.html": 0.475, "3.html": 0.475},
		},
		{
			// The dangling page counts as linking to both pages, so the
			// exact solution is PR(1) = 0.3509, PR(2) = 0.6491.
			name: "dangling page",
			corpus: Corpus{
				"1.html": {"2.html": true},
				"2.html": {},
			},
			want: map[string]float64{"1.html": 0.3509, "2.html": 0.6491},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IterateRank(tt.corpus, Default())
			if err != nil {
				t.Fatalf("IterateRank: %v", err)
			}
			for page, want := range tt.want {
				if !almostEqual(got[page], want, 0.01) {
					t.Errorf("PR(%s) = %v, want %v", page, got[page], want)
				}
			}
			if !almostEqual(got.Sum(), 1, 0.01) {
				t.Errorf("ranks sum to %v, want ~1", got.Sum())
			}
		})
	}
}

func TestIterateRankErrors(t *testing.T) {
	corpus := Corpus{
		"1.html": {"2.html": true, "3.html": true},
		"2.html": {"3.html": true},
		"3.html": {"2.html": true},
	}

	cfg := Default()
	cfg.MaxIterations = 1
	if _, err := IterateRank(corpus, cfg); err == nil {
		t.Error("expected convergence error with MaxIterations 1")
	}

	if _, err := IterateRank(Corpus{}, Default()); err == nil {
		t.Error("expected error for empty corpus")
	}

	bad := Default()
	bad.Damping = 1.5
	if _, err := IterateRank(corpus, bad); err == nil {
		t.Error("expected error for damping outside (0, 1]")
	}
}

func TestSampleRankDeterministic(t *testing.T) {
	corpus := Corpus{
		"1.html": {"2.html": true, "3.html": true},
		"2.html": {"3.html": true},
		"3.html": {"2.html": true},
	}

	first, err := SampleRank(corpus, Default(), rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("SampleRank: %v", err)
	}
	second, err := SampleRank(corpus, Default(), rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("SampleRank: %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("same seed produced different ranks (-first +second):\n%s", diff)
	}
	if !almostEqual(first.Sum(), 1, 1e-9) {
		t.Errorf("ranks sum to %v, want 1", first.Sum())
	}
}

func TestSampleRankTracksIteration(t *testing.T) {
	corpus := Corpus{
		"1.html": {"2.html": true, "3.html": true},
		"2.html": {"3.html": true},
		"3.html": {"2.html": true},
	}

	sampled, err := SampleRank(corpus, Default(), rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("SampleRank: %v", err)
	}
	iterated, err := IterateRank(corpus, Default())
	if err != nil {
		t.Fatalf("IterateRank: %v", err)
	}
	for page, want := range iterated {
		if !almostEqual(sampled[page], want, 0.04) {
			t.Errorf("sampled PR(%s) = %v, iterated %v", page, sampled[page], want)
		}
	}
}

func TestSampleRankValidation(t *testing.T) {
	corpus := Corpus{"1.html": {}}

	bad := Default()
	bad.Samples = 0
	if _, err := SampleRank(corpus, bad, rand.New(rand.NewSource(1))); err == nil {
		t.Error("expected error for zero samples")
	}

	if _, err := SampleRank(Corpus{}, Default(), rand.New(rand.NewSource(1))); err == nil {
		t.Error("expected error for empty corpus")
	}
}
