// Package primefun computes primes up to a bound and the structured
// patterns they form: twin primes, cousin and sexy pairs, and prime
// k-tuples from triplets up to 13-tuples.
//
// 🚀 What is in the box?
//
//	• guard/  — validation of candidate bounds (type, integrality, range, sign)
//	• sieve/  — Sieve of Eratosthenes (table or Prime List) + IsPrime
//	• twins/  — twin prime pairs (p, p+2)
//	• ktuple/ — canonical pattern table and the two-pointer tuple scanner
//
// This package is the flat call surface over those four. Every call is
// synchronous, allocates its own sieve table and keeps nothing afterwards,
// so it is safe to call from any number of goroutines.
//
// Quick example:
//
//	ps, _ := primefun.Sieve(30)                 // [2 3 5 7 11 13 17 19 23 29]
//	ok, _ := primefun.IsPrime(97)               // true
//	tw, _ := primefun.TwinPrimes(20)            // [[3 5] [5 7] [11 13] [17 19]]
//	q4, _ := primefun.TupleTemplate(100, "4")   // [[3 5 7 11] [5 7 11 13] [11 13 17 19]]
//
// A command-line front end lives in cmd/primefun.
//
//	go install github.com/katalvlaran/primefun/cmd/primefun@latest
package primefun
