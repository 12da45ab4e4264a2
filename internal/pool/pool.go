package pool

import (
	"errors"
	"sync"
)

// ErrTerminated rejects every task still pending when the pool shuts down.
var ErrTerminated = errors.New("pool terminated")

// Future resolves exactly once with the Result of one submitted Task.
type Future struct {
	ch   chan Result
	once sync.Once
}

func newFuture() *Future { return &Future{ch: make(chan Result, 1)} }

// Wait blocks until the task completes or is rejected.
func (f *Future) Wait() Result { return <-f.ch }

func (f *Future) resolve(res Result) {
	f.once.Do(func() { f.ch <- res })
}

type pending struct {
	task Task
	fut  *Future
}

type slot struct {
	w    Worker
	busy bool
	cur  *pending
}

// Pool is a bounded-concurrency executor over a Host's workers. Tasks are
// dispatched FIFO; workers are created lazily up to the bound, then reused
// and kept idle between tasks. A worker error rejects only its own task.
type Pool struct {
	mu         sync.Mutex
	host       Host
	max        int
	slots      []*slot
	queue      []*pending
	terminated bool
}

// New builds a pool over host. A non-positive max falls back to the host's
// reported parallelism.
func New(host Host, max int) *Pool {
	if max <= 0 {
		max = host.Parallelism()
	}
	if max < 1 {
		max = 1
	}
	return &Pool{host: host, max: max}
}

// Submit enqueues a task and returns its Future. Submissions after
// Terminate resolve immediately with ErrTerminated.
func (p *Pool) Submit(t Task) *Future {
	fut := newFuture()
	p.mu.Lock()
	if p.terminated {
		p.mu.Unlock()
		fut.resolve(Result{TaskID: t.ID, Err: ErrTerminated})
		return fut
	}
	p.queue = append(p.queue, &pending{task: t, fut: fut})
	p.dispatchLocked()
	p.mu.Unlock()
	return fut
}

// Workers reports how many execution contexts have been created so far.
func (p *Pool) Workers() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.slots)
}

// Terminate rejects every queued and in-flight task with ErrTerminated and
// releases all workers. Idempotent.
func (p *Pool) Terminate() {
	p.mu.Lock()
	if p.terminated {
		p.mu.Unlock()
		return
	}
	p.terminated = true
	queued := p.queue
	p.queue = nil
	slots := p.slots
	p.slots = nil
	var inflight []*pending
	for _, s := range slots {
		if s.cur != nil {
			inflight = append(inflight, s.cur)
			s.cur = nil
		}
	}
	p.mu.Unlock()

	for _, pn := range queued {
		pn.fut.resolve(Result{TaskID: pn.task.ID, Err: ErrTerminated})
	}
	for _, pn := range inflight {
		pn.fut.resolve(Result{TaskID: pn.task.ID, Err: ErrTerminated})
	}
	for _, s := range slots {
		s.w.Close()
	}
}

// dispatchLocked assigns queued tasks to idle workers, spawning new ones
// while the bound allows. Caller holds p.mu.
func (p *Pool) dispatchLocked() {
	for len(p.queue) > 0 {
		s := p.idleSlotLocked()
		if s == nil {
			return
		}
		pn := p.queue[0]
		p.queue = p.queue[1:]
		s.busy = true
		s.cur = pn
		s.w.Post(pn.task)
	}
}

func (p *Pool) idleSlotLocked() *slot {
	for _, s := range p.slots {
		if !s.busy {
			return s
		}
	}
	if len(p.slots) < p.max {
		s := &slot{w: p.host.Spawn()}
		p.slots = append(p.slots, s)
		go p.pump(s)
		return s
	}
	return nil
}

// pump relays one slot's results to their futures and returns the worker to
// the idle set after each task, regardless of task success.
func (p *Pool) pump(s *slot) {
	for res := range s.w.Results() {
		p.mu.Lock()
		pn := s.cur
		s.cur = nil
		s.busy = false
		if !p.terminated {
			p.dispatchLocked()
		}
		p.mu.Unlock()
		if pn != nil {
			pn.fut.resolve(res)
		}
	}
}
