package fetchstate

import (
	"context"
	"errors"
	"sync"

	"github.com/GoSim-25-26J-441/projects-overview/internal/projects/domain"
)

// ErrClosed is returned by Wait once the loader has been closed.
var ErrClosed = errors.New("fetchstate: loader closed")

// FetchFunc performs one read of the project collection.
type FetchFunc func(ctx context.Context) ([]domain.Project, error)

// Loader owns the fetch state of one mounted view.
//
// Every read carries a sequence number. Refetch cancels the read in flight
// and only the newest read may settle the state, so a slow earlier read can
// never overwrite a later result.
type Loader struct {
	fetch FetchFunc

	ctx        context.Context
	cancel     context.CancelFunc
	stopOnDone func() bool

	mu         sync.Mutex
	state      State
	seq        uint64
	cancelRead context.CancelFunc
	changed    chan struct{}
	subs       map[int]chan State
	nextSub    int
	closed     bool
	done       chan struct{}

	wg sync.WaitGroup
}

// NewLoader mounts a loader: the state starts at Loading and the first
// read is issued immediately. Cancelling ctx closes the loader.
func NewLoader(ctx context.Context, fetch FetchFunc) *Loader {
	mctx, cancel := context.WithCancel(ctx)
	l := &Loader{
		fetch:   fetch,
		ctx:     mctx,
		cancel:  cancel,
		state:   Loading{},
		changed: make(chan struct{}),
		subs:    make(map[int]chan State),
		done:    make(chan struct{}),
	}

	l.mu.Lock()
	l.stopOnDone = context.AfterFunc(ctx, l.Close)
	l.startLocked()
	l.mu.Unlock()

	return l
}

// State returns the current state.
func (l *Loader) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// Output returns the current state flattened for rendering.
func (l *Loader) Output() Output {
	return OutputOf(l.State())
}

// Refetch moves the loader back to Loading and issues a new read.
// It does nothing after Close.
func (l *Loader) Refetch() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return
	}
	l.startLocked()
}

// Subscribe returns a channel that holds the newest state. The current
// state is available immediately; a slow reader only misses intermediate
// states, never the latest one. The channel is closed by the returned
// cancel func or by Close.
func (l *Loader) Subscribe() (<-chan State, func()) {
	ch := make(chan State, 1)

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		close(ch)
		return ch, func() {}
	}

	id := l.nextSub
	l.nextSub++
	l.subs[id] = ch
	ch <- l.state

	return ch, func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		if c, ok := l.subs[id]; ok {
			delete(l.subs, id)
			close(c)
		}
	}
}

// Wait blocks until the loader holds a settled state (Success or Failure)
// and returns it.
func (l *Loader) Wait(ctx context.Context) (State, error) {
	for {
		l.mu.Lock()
		st, changed, closed := l.state, l.changed, l.closed
		l.mu.Unlock()

		if _, loading := st.(Loading); !loading {
			return st, nil
		}
		if closed {
			return st, ErrClosed
		}

		select {
		case <-changed:
		case <-l.done:
		case <-ctx.Done():
			return st, ctx.Err()
		}
	}
}

// Close unmounts the loader: the read in flight is cancelled, subscriber
// channels are closed and Close returns once no read goroutine is left.
// Every caller waits, including those that find the loader already closed.
func (l *Loader) Close() {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		l.wg.Wait()
		return
	}
	l.closed = true
	l.cancel()
	for id, ch := range l.subs {
		delete(l.subs, id)
		close(ch)
	}
	close(l.done)
	stop := l.stopOnDone
	l.mu.Unlock()

	stop()
	l.wg.Wait()
}

func (l *Loader) startLocked() {
	if l.cancelRead != nil {
		l.cancelRead()
	}

	l.seq++
	seq := l.seq
	rctx, cancel := context.WithCancel(l.ctx)
	l.cancelRead = cancel
	l.setLocked(Loading{})

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		defer cancel()

		data, err := l.fetch(rctx)
		l.settle(seq, data, err)
	}()
}

func (l *Loader) settle(seq uint64, data []domain.Project, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed || seq != l.seq || l.ctx.Err() != nil {
		return
	}
	l.cancelRead = nil

	if err != nil {
		fe, ok := domain.AsFetchError(err)
		if !ok {
			fe = domain.NewFetchError(err.Error())
		}
		l.setLocked(Failure{Err: fe})
		return
	}
	l.setLocked(Success{Data: domain.CloneProjects(data)})
}

func (l *Loader) setLocked(s State) {
	l.state = s
	close(l.changed)
	l.changed = make(chan struct{})

	for _, ch := range l.subs {
		select {
		case <-ch:
		default:
		}
		ch <- s
	}
}
