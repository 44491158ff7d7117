// Command primefun exposes the sieve, primality test, twin primes and
// k-tuple scanner on the command line.
//
//	primefun sieve 100
//	primefun sieve 10 --table
//	primefun isprime 97
//	primefun twins 109 --format json
//	primefun tuples 100 cousin
//	primefun tuples 100 4 --format yaml
//	primefun patterns
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
