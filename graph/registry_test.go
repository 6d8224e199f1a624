package graph

import (
	"errors"
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestRegistry(t *testing.T) {
	r := Registry{}
	test.Error(t, r.Add(2, constant(2.0), nil))
	test.T(t, r.Len(), 3)
	test.T(t, r.Count(), 1)

	_, ok := r.Get(0)
	test.That(t, !ok, "padding slots are empty")

	ed := &editor{}
	test.Error(t, r.Add(0, constant(0.0), ed))
	r.Remove(2)
	r.Remove(7)
	r.Remove(-1)
	test.T(t, r.Len(), 3, "removal does not compact")
	test.T(t, r.Count(), 1)

	test.Error(t, r.Add(5, constant(5.0), nil))
	live := r.Live()
	test.T(t, len(live), 2)
	test.T(t, live[0].ID, 0)
	test.T(t, live[1].ID, 5)
	test.That(t, live[0].Editor == Editor(ed))

	test.Error(t, r.Add(MaxID, constant(1.0), nil))
	test.That(t, errors.Is(r.Add(MaxID+1, constant(1.0), nil), ErrInvalidID))
	test.That(t, errors.Is(r.Add(1<<40, constant(1.0), nil), ErrInvalidID))
	test.That(t, errors.Is(r.Renumber(0, 1<<40), ErrInvalidID))
	test.T(t, r.Len(), MaxID+1)
	test.T(t, r.Count(), 3)
}

func TestRegistryChange(t *testing.T) {
	r := Registry{}
	ed := &editor{}
	test.Error(t, r.Add(1, constant(1.0), ed))
	test.Error(t, r.Change(1, constant(3.0)))

	slot, ok := r.Get(1)
	test.That(t, ok)
	y, _, _ := primary(slot.Evaluator, 0.0)
	test.T(t, y, 3.0)
	test.That(t, slot.Editor == Editor(ed), "editor is kept")

	test.That(t, errors.Is(r.Change(0, constant(0.0)), ErrUnknownEquation))
	test.That(t, errors.Is(r.Change(9, constant(0.0)), ErrUnknownEquation))
	test.That(t, errors.Is(r.Change(-1, constant(0.0)), ErrInvalidID))
	test.That(t, errors.Is(r.Add(-1, constant(0.0), nil), ErrInvalidID))
	test.That(t, r.Add(0, nil, nil) != nil)
}

func TestRegistryRenumber(t *testing.T) {
	r := Registry{}
	test.Error(t, r.Add(0, constant(0.0), nil))
	test.Error(t, r.Add(1, constant(1.0), nil))

	test.Error(t, r.Renumber(0, 4))
	live := r.Live()
	test.T(t, len(live), 2)
	test.T(t, live[0].ID, 1)
	test.T(t, live[1].ID, 4)
	y, _, _ := primary(live[1].Evaluator, 0.0)
	test.T(t, y, 0.0)

	test.Error(t, r.Renumber(4, 1))
	test.T(t, r.Count(), 1, "renumbering onto a live id replaces it")
	slot, _ := r.Get(1)
	test.T(t, slot.ID, 1)

	test.Error(t, r.Renumber(1, 1))
	test.That(t, errors.Is(r.Renumber(3, 0), ErrUnknownEquation))
	test.That(t, errors.Is(r.Renumber(1, -2), ErrInvalidID))
}

func TestPrimary(t *testing.T) {
	y, ok, err := primary(sqrtEvaluator(), 4.0)
	test.Error(t, err)
	test.That(t, ok)
	test.T(t, y, 2.0)

	_, ok, err = primary(sqrtEvaluator(), -1.0)
	test.Error(t, err)
	test.That(t, !ok, "no values")

	undefined := EvaluatorFunc(func(x float64) ([]Value, error) {
		return []Value{Undefined, Defined(1.0)}, nil
	})
	_, ok, _ = primary(undefined, 0.0)
	test.That(t, !ok, "undefined primary branch")

	nan := EvaluatorFunc(func(x float64) ([]Value, error) {
		return []Value{Defined(math.NaN())}, nil
	})
	_, ok, _ = primary(nan, 0.0)
	test.That(t, !ok, "NaN")

	_, _, err = primary(failing(-1.0), 0.0)
	test.That(t, errors.Is(err, errEval))

	panicking := EvaluatorFunc(func(x float64) ([]Value, error) {
		panic("division by zero")
	})
	_, ok, err = primary(panicking, 0.0)
	test.That(t, !ok)
	test.T(t, err.Error(), "panic: division by zero")
}
