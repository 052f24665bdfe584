package evaluator

import "github.com/grovelang/grove/internal/diagnostics"

// Producer lazily computes the value for a global definition. It returns an
// *Error object on failure, any other object on success.
type Producer func() Object

// Defines is the session-wide table of top-level definitions. Producers run
// at most once per name per session, so definitions may reference each other
// forward and mutually regardless of the order their trees were created in.
type Defines struct {
	producers map[string]Producer
	cells     map[string]*Cell
	inFlight  map[string]bool
}

func NewDefines() *Defines {
	return &Defines{
		producers: make(map[string]Producer),
		cells:     make(map[string]*Cell),
		inFlight:  make(map[string]bool),
	}
}

// Add registers a lazy producer for name. A later registration overwrites an
// earlier one, modeling redefinition; a cell already forced for the name
// stays referentially stable for the rest of the session.
func (d *Defines) Add(name string, producer Producer) {
	d.producers[name] = producer
}

// Has reports whether name is known, forced or not.
func (d *Defines) Has(name string) bool {
	if _, ok := d.cells[name]; ok {
		return true
	}
	_, ok := d.producers[name]
	return ok
}

// Get forces the producer for name on first access and caches the resulting
// cell; repeated lookups return the same cell. A producer that looks up its
// own name before populating its cell fails with UnboundVariable instead of
// recursing forever.
func (d *Defines) Get(name string) (*Cell, Object) {
	if cell, ok := d.cells[name]; ok {
		return cell, nil
	}
	if d.inFlight[name] {
		return nil, newError(diagnostics.UnboundVariable,
			"definition of %s refers to itself before it is initialized", name)
	}
	producer, ok := d.producers[name]
	if !ok {
		return nil, newError(diagnostics.UnboundVariable, "undefined name: %s", name)
	}

	d.inFlight[name] = true
	val := producer()
	delete(d.inFlight, name)

	if isError(val) {
		return nil, val
	}
	cell := FilledCell(val)
	d.cells[name] = cell
	return cell, nil
}
