package ecs

// System is a behaviour run once per tick over a whole table. Mask is fixed
// when the system is built; Tick acts only on entities whose signature
// contains every bit of it.
type System interface {
	Mask() Signature
	Tick(table *Table)
}

// SystemMatches reports whether system would act on an entity with the given
// signature.
func SystemMatches(system System, signature Signature) bool {
	return Matches(system.Mask(), signature)
}
