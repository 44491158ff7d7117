package ktuple_test

import (
	"testing"

	"github.com/katalvlaran/primefun/ktuple"
	"github.com/katalvlaran/primefun/sieve"
)

// BenchmarkScan measures the scanner alone over a pre-built Prime List.
func BenchmarkScan(b *testing.B) {
	primes, err := sieve.Primes(1_000_000)
	if err != nil {
		b.Fatalf("Primes failed: %v", err)
	}
	for _, p := range ktuple.Patterns() {
		p := p
		b.Run(p.Key, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = ktuple.Scan(primes, p)
			}
		})
	}
}
