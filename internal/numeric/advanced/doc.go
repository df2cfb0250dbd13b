// Package advanced implements number theory over the generic numeric
// engine: primality, prime factorization, greatest common factor, least
// common multiple and factorial.
//
// The routines work for any type with modulo, division and comparison,
// including floating-point types holding integral values. Non-integral
// input is rejected with numeric.ErrDomain.
package advanced
