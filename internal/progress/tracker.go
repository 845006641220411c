// Package progress tracks completion of learning resources across a
// session. Resources are identified by the roadmap entry's URL field.
package progress

import (
	"math"
	"sync"

	"github.com/rithwika/career-advisor/internal/types"
)

// Tracker owns the set of completed resource identifiers. Membership
// changes only through Toggle; the set never shrinks automatically and
// is cleared only at logout.
type Tracker struct {
	mu        sync.Mutex
	completed map[string]struct{}
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{completed: make(map[string]struct{})}
}

// Toggle flips membership for a resource id: inserts if absent, removes
// if present. A double toggle is a no-op.
func (t *Tracker) Toggle(resourceID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.completed[resourceID]; ok {
		delete(t.completed, resourceID)
		return
	}
	t.completed[resourceID] = struct{}{}
}

// Done reports whether a resource id is marked complete.
func (t *Tracker) Done(resourceID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.completed[resourceID]
	return ok
}

// Completed returns the completed ids in no particular order.
func (t *Tracker) Completed() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, 0, len(t.completed))
	for id := range t.completed {
		out = append(out, id)
	}
	return out
}

// Completion computes the completion percentage for the roadmap
// resources across the given skill gaps. Zero total resources is
// vacuously complete (100). The value is recomputed on every call since
// the completed set mutates independently.
func (t *Tracker) Completion(gaps []types.SkillGap) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	total := 0
	done := 0
	for _, gap := range gaps {
		for _, res := range gap.LearningRoadmap {
			total++
			if _, ok := t.completed[res.ID()]; ok {
				done++
			}
		}
	}

	if total == 0 {
		return 100
	}
	return int(math.Round(100 * float64(done) / float64(total)))
}

// Clear empties the completed set. Only logout calls this.
func (t *Tracker) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.completed = make(map[string]struct{})
}
