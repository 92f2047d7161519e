package mosaic

import "github.com/fathom/blinker/internal/eye"

// worklist holds the indices of eyes with a property still off target.
// Eyes register themselves through eye.Worklist.
type worklist struct {
	ids    []int
	queued []bool
}

func (w *worklist) grow(n int) {
	for len(w.queued) < n {
		w.queued = append(w.queued, false)
	}
}

func (w *worklist) Register(id int) {
	w.grow(id + 1)
	if w.queued[id] {
		return
	}
	w.queued[id] = true
	w.ids = append(w.ids, id)
}

func (w *worklist) drop(id int) {
	if id >= len(w.queued) || !w.queued[id] {
		return
	}
	w.queued[id] = false
	for i, v := range w.ids {
		if v == id {
			w.ids = append(w.ids[:i], w.ids[i+1:]...)
			return
		}
	}
}

// advance updates every queued eye, then removes the ones that settled.
// Removal runs as a second pass so the slice is never edited mid-iteration.
func (w *worklist) advance(eyes []*eye.Eye) {
	for _, id := range w.ids {
		eyes[id].Update()
	}

	kept := w.ids[:0]
	for _, id := range w.ids {
		if eyes[id].NeedsUpdate() {
			kept = append(kept, id)
			continue
		}
		w.queued[id] = false
	}
	w.ids = kept
}

func (w *worklist) clear() {
	for _, id := range w.ids {
		w.queued[id] = false
	}
	w.ids = w.ids[:0]
}

func (w *worklist) contains(id int) bool {
	return id < len(w.queued) && w.queued[id]
}
