// Package prime classifies integers and finds the next prime, which the
// table uses to size its slot array.
package prime

import (
	"math"
	"sort"

	kprime "github.com/kavehmz/prime"
)

// Primality is the result of classifying an integer.
type Primality int

const (
	// Undefined is reported for integers below 2.
	Undefined Primality = iota - 1
	Composite
	Prime
)

func (p Primality) String() string {
	switch p {
	case Prime:
		return "prime"
	case Composite:
		return "composite"
	default:
		return "undefined"
	}
}

// Oracle answers primality questions for slot-array sizing.
type Oracle interface {
	Classify(n int) Primality
	Next(n int) int
}

// TrialDivision is the stateless reference oracle.
type TrialDivision struct{}

// Classify reports whether n is prime by trial division with odd divisors up
// to floor(sqrt(n)).
func (TrialDivision) Classify(n int) Primality {
	return classify(n)
}

// Next returns the smallest prime >= n.
func (TrialDivision) Next(n int) int {
	if n < 2 {
		n = 2
	}
	for classify(n) != Prime {
		n++
	}
	return n
}

func classify(n int) Primality {
	if n < 2 {
		return Undefined
	}
	if n < 4 {
		return Prime
	}
	if n%2 == 0 {
		return Composite
	}
	limit := int(math.Floor(math.Sqrt(float64(n))))
	for i := 3; i <= limit; i += 2 {
		if n%i == 0 {
			return Composite
		}
	}
	return Prime
}

// Sieve answers from a precomputed table of every prime up to its limit and
// falls back to trial division above it.
type Sieve struct {
	limit  int
	primes []int
}

// NewSieve builds a Sieve covering [0, limit].
func NewSieve(limit int) *Sieve {
	if limit < 2 {
		return &Sieve{limit: limit}
	}
	// SieveOfEratosthenes keeps no shared state between calls, unlike
	// Primes, whose segment pool breaks when a later call asks for more.
	raw := kprime.SieveOfEratosthenes(uint64(limit) + 1)
	primes := make([]int, 0, len(raw))
	for _, p := range raw {
		if int(p) > limit {
			break
		}
		primes = append(primes, int(p))
	}
	return &Sieve{limit: limit, primes: primes}
}

// Limit is the largest integer answered from the table.
func (s *Sieve) Limit() int { return s.limit }

func (s *Sieve) Classify(n int) Primality {
	if n < 2 {
		return Undefined
	}
	if n > s.limit {
		return classify(n)
	}
	i := sort.SearchInts(s.primes, n)
	if i < len(s.primes) && s.primes[i] == n {
		return Prime
	}
	return Composite
}

func (s *Sieve) Next(n int) int {
	if n < 2 {
		n = 2
	}
	if n <= s.limit {
		if i := sort.SearchInts(s.primes, n); i < len(s.primes) {
			return s.primes[i]
		}
	}
	return TrialDivision{}.Next(n)
}
