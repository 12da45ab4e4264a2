package pool

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/daniel-ldg/simple-nonogram-solver/internal/domain"
)

// Task is one unit of line-solving work: a hint sequence plus a snapshot of
// the line's current cells. Immutable once created; the ID pairs it with
// exactly one pending result.
type Task struct {
	ID    string
	Hints domain.Hints
	Cells []domain.Cell
}

// Result is a worker's answer to one Task, tagged with the same ID.
type Result struct {
	TaskID string
	Cells  []domain.Cell
	Probes int
	Err    error
}

// Worker is an isolated execution context. It accepts posted tasks one at a
// time and emits one Result per task on its Results channel. Close releases
// the context; Results is closed once the context has drained.
type Worker interface {
	Post(Task)
	Results() <-chan Result
	Close()
}

// Host spawns workers and reports how many can usefully run in parallel.
// The pool never depends on how a spawned context is implemented.
type Host interface {
	Spawn() Worker
	Parallelism() int
}

// GoroutineHost runs each worker as a goroutine executing Run.
type GoroutineHost struct {
	Run func(Task) Result
}

func NewGoroutineHost(run func(Task) Result) *GoroutineHost {
	return &GoroutineHost{Run: run}
}

func (h *GoroutineHost) Parallelism() int { return runtime.NumCPU() }

func (h *GoroutineHost) Spawn() Worker {
	w := &goroutineWorker{
		tasks:   make(chan Task, 1),
		results: make(chan Result, 1),
	}
	go w.loop(h.Run)
	return w
}

type goroutineWorker struct {
	tasks   chan Task
	results chan Result
	once    sync.Once
}

func (w *goroutineWorker) loop(run func(Task) Result) {
	for t := range w.tasks {
		w.results <- runGuarded(run, t)
	}
	close(w.results)
}

func (w *goroutineWorker) Post(t Task)            { w.tasks <- t }
func (w *goroutineWorker) Results() <-chan Result { return w.results }
func (w *goroutineWorker) Close()                 { w.once.Do(func() { close(w.tasks) }) }

// runGuarded converts a panic inside Run into a task-scoped error so a bad
// task never takes the worker down with it.
func runGuarded(run func(Task) Result, t Task) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = Result{TaskID: t.ID, Err: fmt.Errorf("worker: task %s panicked: %v", t.ID, r)}
		}
	}()
	return run(t)
}
