package analysis_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/crntk/analysis"
	"github.com/katalvlaran/crntk/generate"
)

func BenchmarkAnalyzeNetwork(b *testing.B) {
	shapes := []struct {
		name string
		ctor generate.Constructor
		opts []generate.Option
	}{
		{"enzyme=8", generate.Enzyme(8), nil},
		{"complete=12", generate.Complete(12), nil},
		{"random=20x40", generate.RandomSparse(20, 40), []generate.Option{generate.WithSeed(1)}},
	}
	for _, s := range shapes {
		net, err := generate.Network(s.ctor, s.opts...)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(s.name, func(b *testing.B) {
			svc := analysis.NewService()
			for i := 0; i < b.N; i++ {
				if _, err := svc.AnalyzeNetwork(context.Background(), net, nil); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkConservationLaws_Cached(b *testing.B) {
	net, err := generate.Network(generate.Enzyme(16))
	if err != nil {
		b.Fatal(err)
	}
	svc := analysis.NewService(analysis.WithCache(analysis.NewMemoryCache(0)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := svc.ConservationLaws(context.Background(), net, nil); err != nil {
			b.Fatal(err)
		}
	}
}
