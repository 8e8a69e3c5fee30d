// Package random seeds the dice generator for a game session.
//
// Every roll in a session is drawn from a single math/rand generator so
// seeded games replay deterministically.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// NewRng returns the generator a game session rolls with. A zero seed
// is replaced with one drawn from crypto/rand, so unseeded play is
// unpredictable while explicit seeds stay replayable.
func NewRng(seed int64) (*rand.Rand, error) {
	if seed == 0 {
		var b [8]byte
		if _, err := crand.Read(b[:]); err != nil {
			return nil, fmt.Errorf("read random seed: %w", err)
		}
		seed = int64(binary.LittleEndian.Uint64(b[:]))
	}

	return rand.New(rand.NewSource(seed)), nil
}
