package ecs

import "github.com/milk9111/bulletboss/ecs/component"

// First returns the first live entity holding kind.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, bool) {
	s := w.store(kind.ID(), false)
	if s == nil {
		return NoEntity, false
	}
	for _, id := range s.ids {
		if e, ok := w.entities.handle(id); ok {
			return e, true
		}
	}
	return NoEntity, false
}

// Count returns how many entities hold kind.
func Count[T any](w *World, kind component.ComponentKind[T]) int {
	return w.store(kind.ID(), false).Len()
}

// Query returns the live entities holding kind.
func Query[T any](w *World, kind component.ComponentKind[T]) []Entity {
	var out []Entity
	ForEach(w, kind, func(e Entity, _ *T) { out = append(out, e) })
	return out
}

// ForEach calls fn for every entity holding kind. The walk runs over a
// snapshot, so fn may create or destroy entities; destroyed entities are
// skipped.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	s := w.store(kind.ID(), false)
	for _, e := range w.snapshot(s) {
		if !w.entities.isAlive(e) {
			continue
		}
		id := e.id()
		a, ok := s.Get(id).(*T)
		if !ok {
			continue
		}
		fn(e, a)
	}
}

func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	sa, sb := w.store(ka.ID(), false), w.store(kb.ID(), false)
	if sa == nil || sb == nil {
		return
	}
	for _, e := range w.snapshot(smallest(sa, sb)) {
		if !w.entities.isAlive(e) {
			continue
		}
		id := e.id()
		a, okA := sa.Get(id).(*A)
		b, okB := sb.Get(id).(*B)
		if !okA || !okB {
			continue
		}
		fn(e, a, b)
	}
}

func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	sa, sb, sc := w.store(ka.ID(), false), w.store(kb.ID(), false), w.store(kc.ID(), false)
	if sa == nil || sb == nil || sc == nil {
		return
	}
	for _, e := range w.snapshot(smallest(sa, sb, sc)) {
		if !w.entities.isAlive(e) {
			continue
		}
		id := e.id()
		a, okA := sa.Get(id).(*A)
		b, okB := sb.Get(id).(*B)
		c, okC := sc.Get(id).(*C)
		if !okA || !okB || !okC {
			continue
		}
		fn(e, a, b, c)
	}
}

func ForEach4[A, B, C, D any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], kd component.ComponentKind[D], fn func(Entity, *A, *B, *C, *D)) {
	sa, sb, sc, sd := w.store(ka.ID(), false), w.store(kb.ID(), false), w.store(kc.ID(), false), w.store(kd.ID(), false)
	if sa == nil || sb == nil || sc == nil || sd == nil {
		return
	}
	for _, e := range w.snapshot(smallest(sa, sb, sc, sd)) {
		if !w.entities.isAlive(e) {
			continue
		}
		id := e.id()
		a, okA := sa.Get(id).(*A)
		b, okB := sb.Get(id).(*B)
		c, okC := sc.Get(id).(*C)
		d, okD := sd.Get(id).(*D)
		if !okA || !okB || !okC || !okD {
			continue
		}
		fn(e, a, b, c, d)
	}
}

// snapshot captures the live handles in s, so entities destroyed (or ids
// recycled) during a walk are skipped.
func (w *World) snapshot(s *SparseSet) []Entity {
	ids := s.snapshot()
	out := make([]Entity, 0, len(ids))
	for _, id := range ids {
		if e, ok := w.entities.handle(id); ok {
			out = append(out, e)
		}
	}
	return out
}

// smallest picks the set to drive an intersection walk.
func smallest(sets ...*SparseSet) *SparseSet {
	best := sets[0]
	for _, s := range sets[1:] {
		if s.Len() < best.Len() {
			best = s
		}
	}
	return best
}
