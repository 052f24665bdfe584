package typesystem

// Subst maps type-variable names to replacement types.
type Subst map[string]Type

// Substitute replaces each free TypeVar named in s with its mapped type,
// recursing structurally. Variables bound by an enclosing ForallType are
// shadowed: substitution neither replaces nor renames under a binder that
// captures the name. TypeVarSlots are presentation data and are never
// rewritten.
func Substitute(t Type, s Subst) Type {
	if len(s) == 0 {
		return t
	}
	switch typ := t.(type) {
	case TypeVar:
		if replacement, ok := s[typ.Name]; ok {
			return replacement
		}
		return typ
	case ForallType:
		inner := shadow(s, typ.Slots)
		if len(inner) == 0 {
			return typ
		}
		return ForallType{Slots: typ.Slots, Body: Substitute(typ.Body, inner)}
	default:
		return StructureMap(t, func(p Type) Type {
			return Substitute(p, s)
		})
	}
}

// Occurs reports whether a free occurrence of the named type variable exists
// in t. Names rebound by an enclosing ForallType are shadowed and do not
// count as occurring.
func Occurs(name string, t Type) bool {
	switch typ := t.(type) {
	case TypeVar:
		return typ.Name == name
	case ForallType:
		for _, slot := range typ.Slots {
			if !slot.Hole && slot.Name == name {
				return false
			}
		}
		return Occurs(name, typ.Body)
	case ConcreteType:
		for _, p := range typ.Params {
			if Occurs(name, p) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// shadow returns s without the names bound by the given slots. Returns s
// itself when nothing is shadowed.
func shadow(s Subst, slots []TypeVarSlot) Subst {
	bound := 0
	for _, slot := range slots {
		if !slot.Hole {
			if _, ok := s[slot.Name]; ok {
				bound++
			}
		}
	}
	if bound == 0 {
		return s
	}
	inner := make(Subst, len(s))
	for name, t := range s {
		inner[name] = t
	}
	for _, slot := range slots {
		if !slot.Hole {
			delete(inner, slot.Name)
		}
	}
	return inner
}
