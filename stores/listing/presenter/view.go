package presenter

import (
	"sync"

	bCtx "github.com/farbarter/goapi/base/ctx"
	"github.com/farbarter/goapi/base/log"
	"github.com/farbarter/goapi/domain"
)

// Ticket identifies one resolution started on a View.
type Ticket uint64

// View is what a single consumer currently shows for a listing. A result is
// applied only if it belongs to the latest Begin and the consumer is still
// open, late results are dropped.
type View struct {
	mu     sync.Mutex
	seq    uint64
	closed bool
	state  ViewState
}

func NewView() *View {
	return &View{state: Loading()}
}

// Begin moves the view to loading and supersedes any outstanding ticket.
func (v *View) Begin() Ticket {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.seq++
	v.state = Loading()
	return Ticket(v.seq)
}

// Commit reports whether the result was applied.
func (v *View) Commit(c bCtx.Ctx, t Ticket, details *domain.ListingDetails, err error) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed || uint64(t) != v.seq {
		c.WithFields(log.Fields{
			"ticket": uint64(t),
			"latest": v.seq,
			"closed": v.closed,
		}).Info("dropping stale listing result")
		return false
	}
	v.state = ToViewState(details, err)
	return true
}

// Close marks the consumer gone, nothing is committed afterwards.
func (v *View) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.closed = true
}

func (v *View) State() ViewState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}
