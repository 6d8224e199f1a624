package graph

import (
	"fmt"
	"math"
)

// Value is one result of an evaluator. An undefined value marks a domain gap.
type Value struct {
	Y       float64
	Defined bool
}

// Defined returns a defined value.
func Defined(y float64) Value {
	return Value{y, true}
}

// Undefined is the value returned outside the domain of an equation.
var Undefined = Value{}

// Evaluator computes the y values of an equation for a given x. It may return no values or undefined values where the equation has no solution. The first value is the primary branch that gets plotted.
type Evaluator interface {
	Evaluate(x float64) ([]Value, error)
}

// EvaluatorFunc adapts an ordinary function into an Evaluator.
type EvaluatorFunc func(x float64) ([]Value, error)

// Evaluate calls f(x).
func (f EvaluatorFunc) Evaluate(x float64) ([]Value, error) {
	return f(x)
}

// Editor is the handle to the editor of an equation, notified when its equation fails to evaluate.
type Editor interface {
	SetInvalid()
}

// primary evaluates ev at x and returns the primary branch. It returns false for domain gaps, including non-finite values. A panicking evaluator is reported as an error.
func primary(ev Evaluator, x float64) (y float64, ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			y, ok, err = 0.0, false, fmt.Errorf("panic: %v", r)
		}
	}()

	vals, err := ev.Evaluate(x)
	if err != nil {
		return 0.0, false, err
	} else if len(vals) == 0 || !vals[0].Defined || math.IsNaN(vals[0].Y) || math.IsInf(vals[0].Y, 0) {
		return 0.0, false, nil
	}
	return vals[0].Y, true, nil
}

////////////////////////////////////////////////////////////////

// Slot is an equation in the registry.
type Slot struct {
	ID        int
	Evaluator Evaluator
	Editor    Editor
}

// Registry holds equations by their externally assigned id. Ids need not be contiguous, removing an equation leaves an empty slot and never shifts the others.
type Registry struct {
	slots []*Slot
}

// MaxID is the largest equation id, slots are stored densely up to the largest id in use.
const MaxID = 1<<16 - 1

// Add stores the equation at id, replacing any previous one. The editor may be nil.
func (r *Registry) Add(id int, ev Evaluator, ed Editor) error {
	if id < 0 || MaxID < id {
		return fmt.Errorf("%w: %d", ErrInvalidID, id)
	} else if ev == nil {
		return fmt.Errorf("equation %d: nil evaluator", id)
	}
	for len(r.slots) <= id {
		r.slots = append(r.slots, nil)
	}
	r.slots[id] = &Slot{id, ev, ed}
	return nil
}

// Remove clears the slot at id. Removing an empty or unknown slot does nothing.
func (r *Registry) Remove(id int) {
	if 0 <= id && id < len(r.slots) {
		r.slots[id] = nil
	}
}

// Change replaces the evaluator of the equation at id and keeps its editor.
func (r *Registry) Change(id int, ev Evaluator) error {
	if id < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidID, id)
	} else if ev == nil {
		return fmt.Errorf("equation %d: nil evaluator", id)
	} else if id >= len(r.slots) || r.slots[id] == nil {
		return fmt.Errorf("%w: %d", ErrUnknownEquation, id)
	}
	r.slots[id].Evaluator = ev
	return nil
}

// Renumber moves the equation at from to id to, replacing any equation at to.
func (r *Registry) Renumber(from, to int) error {
	if from < 0 || to < 0 || MaxID < to {
		return fmt.Errorf("%w: %d to %d", ErrInvalidID, from, to)
	} else if from >= len(r.slots) || r.slots[from] == nil {
		return fmt.Errorf("%w: %d", ErrUnknownEquation, from)
	} else if from == to {
		return nil
	}
	slot := r.slots[from]
	r.slots[from] = nil
	for len(r.slots) <= to {
		r.slots = append(r.slots, nil)
	}
	slot.ID = to
	r.slots[to] = slot
	return nil
}

// Get returns the equation at id.
func (r *Registry) Get(id int) (Slot, bool) {
	if id < 0 || id >= len(r.slots) || r.slots[id] == nil {
		return Slot{}, false
	}
	return *r.slots[id], true
}

// Live returns the stored equations in ascending id order.
func (r *Registry) Live() []Slot {
	live := make([]Slot, 0, len(r.slots))
	for _, slot := range r.slots {
		if slot != nil {
			live = append(live, *slot)
		}
	}
	return live
}

// Len returns the capacity of the registry, that is the highest id ever stored plus one, including empty slots.
func (r *Registry) Len() int {
	return len(r.slots)
}

// Count returns the number of stored equations.
func (r *Registry) Count() int {
	n := 0
	for _, slot := range r.slots {
		if slot != nil {
			n++
		}
	}
	return n
}
