package ecs

import (
	"fmt"
	"math/bits"
	"strings"
)

// Signature is a bit set over component kinds. Each bit records whether the
// corresponding component is logically present on an entity.
type Signature uint64

// Component flags. Every known component kind owns exactly one bit.
const (
	PositionFlag Signature = 1 << iota
	VelocityFlag
)

var flagNames = [...]struct {
	flag Signature
	name string
}{
	{PositionFlag, "Position"},
	{VelocityFlag, "Velocity"},
}

// Set sets every bit in flag.
func (s *Signature) Set(flag Signature) {
	*s |= flag
}

// Unset clears every bit in flag.
func (s *Signature) Unset(flag Signature) {
	*s &^= flag
}

// Flip toggles every bit in flag.
func (s *Signature) Flip(flag Signature) {
	*s ^= flag
}

// HasAll reports whether every bit of mask is also set in s.
func (s Signature) HasAll(mask Signature) bool {
	return s&mask == mask
}

// HasAny reports whether s and mask share at least one bit.
func (s Signature) HasAny(mask Signature) bool {
	return s&mask != 0
}

// Equals reports whether s and mask are identical.
func (s Signature) Equals(mask Signature) bool {
	return s == mask
}

// IsZero reports whether no bit is set.
func (s Signature) IsZero() bool {
	return s == 0
}

// Count returns the number of set bits.
func (s Signature) Count() int {
	return bits.OnesCount64(uint64(s))
}

func (s Signature) String() string {
	if s == 0 {
		return "None"
	}

	var parts []string
	rest := s
	for _, f := range flagNames {
		if s&f.flag != 0 {
			parts = append(parts, f.name)
			rest &^= f.flag
		}
	}
	if rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%X", uint64(rest)))
	}
	return strings.Join(parts, "|")
}

// Matches reports whether an entity with the given signature satisfies a
// required mask: every bit required must be present in the signature.
func Matches(required, signature Signature) bool {
	return required&signature == required
}
