// Package decoders implements constant-time transversal decoders for the
// Steane and repetition codes, plus the bit-string enumerator used to
// tabulate them.
//
// A record is the list of single-qubit measurement outcomes (false = 0,
// true = 1) read out transversally from one code block, in qubit order.
package decoders

import (
	"errors"
	"fmt"
)

// ErrRecordLength is returned when a record does not match the code size.
var ErrRecordLength = errors.New("decoders: wrong record length")

// steaneLength is the number of qubits in a Steane block.
const steaneLength = 7

// steaneChecks are the Hamming-code parity checks applied to a transversal
// Steane record. The syndrome bits (s1,s2,s3) spell the binary position
// (plus one) of a single flipped bit.
var steaneChecks = [3][4]int{
	{3, 4, 5, 6},
	{1, 2, 5, 6},
	{0, 2, 4, 6},
}

// BitStrings returns all 2^n bit strings of length n in lexicographic
// order (the last position varies fastest). n ≤ 0 yields no strings.
func BitStrings(n int) [][]bool {
	if n <= 0 {
		return [][]bool{}
	}
	out := make([][]bool, 0, 1<<n)
	for v := 0; v < 1<<n; v++ {
		bs := make([]bool, n)
		for i := 0; i < n; i++ {
			bs[i] = v>>(n-1-i)&1 == 1
		}
		out = append(out, bs)
	}

	return out
}

// parity returns the XOR of rec.
func parity(rec []bool) bool {
	p := false
	for _, b := range rec {
		p = p != b
	}
	return p
}

// SteaneSyndrome computes the Hamming syndrome (s1, s2, s3) of a
// seven-bit transversal record.
func SteaneSyndrome(rec []bool) ([3]bool, error) {
	var s [3]bool
	if len(rec) != steaneLength {
		return s, fmt.Errorf("%w: Steane record has %d bits, want %d", ErrRecordLength, len(rec), steaneLength)
	}
	for i, check := range steaneChecks {
		for _, q := range check {
			s[i] = s[i] != rec[q]
		}
	}

	return s, nil
}

// SteaneErrorPosition reads a syndrome as the position of the single
// flipped bit; ok is false for the trivial syndrome.
func SteaneErrorPosition(s [3]bool) (pos int, ok bool) {
	v := 0
	for _, bit := range s {
		v <<= 1
		if bit {
			v |= 1
		}
	}
	if v == 0 {
		return 0, false
	}

	return v - 1, true
}

// SteaneDecode returns the logical outcome of a transversal Steane
// measurement: the record parity, flipped when the syndrome is non-trivial
// (a single error is assumed, and any single flip changes the parity).
func SteaneDecode(rec []bool) (bool, error) {
	s, err := SteaneSyndrome(rec)
	if err != nil {
		return false, err
	}
	p := parity(rec)
	if s[0] || s[1] || s[2] {
		return !p, nil
	}

	return p, nil
}

// RepetitionXDecode decodes a transversal X measurement of a bit-flip
// repetition block: the product of ±1 outcomes, i.e. the record parity.
func RepetitionXDecode(rec []bool) bool {
	return parity(rec)
}

// RepetitionZDecode decodes a transversal Z measurement of a bit-flip
// repetition block by majority vote; ties resolve to false.
func RepetitionZDecode(rec []bool) bool {
	ones := 0
	for _, b := range rec {
		if b {
			ones++
		}
	}

	return ones > len(rec)/2
}
