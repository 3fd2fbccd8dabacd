package dyckprng

import "errors"

// Sentinel errors returned by the generators, sources and the runner.
// Callers match them with errors.Is; context is added with %w wrapping.
var (
	// ErrInvalidLength is returned when a requested path half-length or
	// log2 string length is out of range.
	ErrInvalidLength = errors.New("dyckprng: invalid length")

	// ErrBadWidth is returned when a source reports a bit width outside 1..64.
	ErrBadWidth = errors.New("dyckprng: source bit width must be in 1..64")

	// ErrBitRange is returned by the slicing decorators for an empty or
	// out-of-range bit selection.
	ErrBitRange = errors.New("dyckprng: invalid bit range")

	// ErrUnknownSource is returned by New for a name nobody registered.
	ErrUnknownSource = errors.New("dyckprng: unknown source")

	// ErrUnknownCipher is returned for an unsupported keystream cipher name.
	ErrUnknownCipher = errors.New("dyckprng: unknown cipher")

	// ErrBadModulus is returned when a quadratic-residue modulus is not the
	// product of two primes congruent to 3 mod 4.
	ErrBadModulus = errors.New("dyckprng: modulus factors must be primes congruent to 3 mod 4")

	// ErrSeedFile is returned when a seed list cannot be parsed.
	ErrSeedFile = errors.New("dyckprng: malformed seed list")
)
