// Package fusion implements the fusion resolution engine: the deterministic
// pair hash, the template-based fallback generator, the AI candidate
// validation contract, and the in-process result cache.
package fusion

import "unicode/utf16"

// PairHash folds an unordered pair of strings into a stable non-negative
// seed. The pair is sorted before combining, so PairHash(a, b) == PairHash(b, a).
//
// The accumulator is a 32-bit signed integer updated as h = h*31 + unit over
// the UTF-16 code units of the sorted, pipe-joined pair, with wraparound.
// Downstream modulo indexing depends on the exact bit pattern, so the
// wraparound semantics are part of the contract and must not change.
func PairHash(a, b string) int {
	if a > b {
		a, b = b, a
	}

	var h int32
	for _, u := range utf16.Encode([]rune(a + "|" + b)) {
		h = h*31 + int32(u)
	}

	v := int64(h)
	if v < 0 {
		v = -v
	}
	return int(v)
}
