// Package sieve implements the stages of the segmented Sieve of
// Eratosthenes: base-prime generation, block bound computation, range
// sieving, and prime extraction.
//
// All stages are pure functions over immutable inputs. The only mutation is
// to a freshly allocated range-local bitmap that is never shared before the
// stage returns, which is what makes per-block sieving safe to run in
// parallel without locks.
package sieve
