// Package sieve generates primes with the Sieve of Eratosthenes and answers
// single primality queries on top of it.
//
// 🚀 What is the sieve?
//
//	Starting from a table where every index ≥ 2 is marked prime, each
//	still-prime i ≤ ⌊√bound⌋ crosses out its multiples from i·i upward.
//	Smaller multiples were already crossed out by smaller prime factors.
//
// ✨ Entry points:
//   - Table(bound)   — raw primality flags, len = bound+1, [0]=[1]=false
//   - Primes(bound)  — ascending primes ≤ bound (the Prime List)
//   - Compact(table) — Prime List from an existing table
//   - IsPrime(n)     — one lookup in Table(n+1), with fast paths for 0..3
//
// Every call allocates its own table; nothing is cached between calls, so
// concurrent callers never share memory.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/primefun/sieve"
//
//	ps, err := sieve.Primes(100) // [2 3 5 7 … 97]
//	ok, err := sieve.IsPrime(97) // true
//
// Performance:
//
//   - Time:   O(n·log log n)
//   - Memory: O(n) bytes for the table
package sieve
