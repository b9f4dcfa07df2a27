// Package autosave сохраняет редактируемый документ с задержкой и только при реальном изменении.
package autosave

import (
	"context"
	"sync"
	"time"

	"ResumeBuilder/internal/document"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"go.uber.org/zap"
)

// DefaultDelay — пауза без изменений, после которой документ сохраняется.
const DefaultDelay = time.Second

// MaxRetryDelay — верхняя граница паузы между повторами неудачного сохранения.
const MaxRetryDelay = time.Minute

// State — состояние сессии автосохранения.
type State int

const (
	Idle State = iota
	Dirty
	Saving
	SaveFailed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dirty:
		return "dirty"
	case Saving:
		return "saving"
	case SaveFailed:
		return "save-failed"
	}
	return "unknown"
}

// Store — то, куда уходят сохранения. Реализации: HTTP-клиент CLI, сервис в тестах.
type Store interface {
	SaveContent(ctx context.Context, id string, doc document.Document) error
	SaveTemplate(ctx context.Context, id, templateID string) error
}

// Option настраивает Reconciler.
type Option func(*Reconciler)

func WithDelay(d time.Duration) Option {
	return func(r *Reconciler) { r.delay = d }
}

func WithLogger(l *zap.SugaredLogger) Option {
	return func(r *Reconciler) { r.logger = l }
}

// OnError вызывается при каждой неудачной попытке сохранения.
func OnError(fn func(error)) Option {
	return func(r *Reconciler) { r.onError = fn }
}

// OnSaved вызывается после успешного сохранения с сохранённым снимком.
func OnSaved(fn func(document.Document)) Option {
	return func(r *Reconciler) { r.onSaved = fn }
}

// Reconciler отслеживает последний снимок документа и сохраняет его после паузы.
// Одновременно выполняется не больше одного сохранения; сохраняется только самый свежий снимок.
type Reconciler struct {
	store  Store
	id     string
	delay  time.Duration
	logger *zap.SugaredLogger

	onError func(error)
	onSaved func(document.Document)

	mu        sync.Mutex
	state     State
	pending   document.Document
	persisted document.Document
	// busy закрывает окно от начала сохранения до выхода из Saving/SaveFailed
	busy bool
	// изменение пришло во время сохранения
	changedInFlight bool
	// подряд неудачных сохранений, от него растёт пауза повтора
	failures        int
	timer           *time.Timer
	gen             uint64
	closed          bool
	inflight        sync.WaitGroup
}

// New создаёт Reconciler для записи id. initial — содержимое, которое уже лежит в хранилище.
func New(store Store, id string, initial document.Document, opts ...Option) *Reconciler {
	r := &Reconciler{
		store:     store,
		id:        id,
		delay:     DefaultDelay,
		logger:    zap.NewNop().Sugar(),
		pending:   initial.Clone(),
		persisted: initial.Clone(),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Update записывает новый снимок и перезапускает таймер.
func (r *Reconciler) Update(doc document.Document) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	r.pending = doc.Clone()
	if r.busy {
		r.changedInFlight = true
	} else {
		r.state = Dirty
	}
	r.armLocked()
}

// Tick — то же, что срабатывание таймера: сохраняет снимок, если он отличается от сохранённого.
// Выполняется синхронно в вызывающей горутине.
func (r *Reconciler) Tick(ctx context.Context) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.stopLocked()
	r.mu.Unlock()
	r.flush(ctx)
}

// State возвращает текущее состояние.
func (r *Reconciler) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Persisted возвращает последний успешно сохранённый снимок.
func (r *Reconciler) Persisted() document.Document {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.persisted.Clone()
}

// Close отменяет ожидающий таймер и дожидается сохранения, которое уже идёт.
func (r *Reconciler) Close() {
	r.mu.Lock()
	r.closed = true
	r.stopLocked()
	r.mu.Unlock()
	r.inflight.Wait()
}

func (r *Reconciler) flush(ctx context.Context) {
	r.mu.Lock()
	if r.closed {
		// таймер успел сработать до Close
		r.mu.Unlock()
		return
	}
	if r.busy {
		// второе сохранение не запускаем, попробуем после текущего
		r.changedInFlight = true
		r.armLocked()
		r.mu.Unlock()
		return
	}
	if equalDocs(r.pending, r.persisted) {
		r.state = Idle
		r.mu.Unlock()
		return
	}
	snapshot := r.pending.Clone()
	r.state = Saving
	r.busy = true
	r.changedInFlight = false
	r.inflight.Add(1)
	r.mu.Unlock()
	defer r.inflight.Done()

	// уже начатое сохранение не отменяется вместе с сессией
	err := r.store.SaveContent(context.WithoutCancel(ctx), r.id, snapshot)

	r.mu.Lock()
	if err != nil {
		r.state = SaveFailed
		r.mu.Unlock()

		r.logger.Warnw("autosave failed", "id", r.id, "error", err)
		if r.onError != nil {
			r.onError(err)
		}

		r.mu.Lock()
		r.failures++
		r.settleLocked()
		if r.state == Idle && !r.closed {
			// тот же снимок уйдёт повторно, без новой правки
			r.armAfterLocked(r.retryDelay())
		}
		r.mu.Unlock()
		return
	}
	r.persisted = snapshot
	r.failures = 0
	r.settleLocked()
	r.mu.Unlock()

	r.logger.Debugw("autosave done", "id", r.id)
	if r.onSaved != nil {
		r.onSaved(snapshot.Clone())
	}
}

// settleLocked выходит из Saving/SaveFailed: в Dirty, если за время сохранения пришли правки, иначе в Idle.
func (r *Reconciler) settleLocked() {
	r.busy = false
	if r.changedInFlight && !r.closed {
		r.changedInFlight = false
		r.state = Dirty
		r.armLocked()
		return
	}
	r.changedInFlight = false
	r.state = Idle
}

func (r *Reconciler) armLocked() {
	r.armAfterLocked(r.delay)
}

func (r *Reconciler) armAfterLocked(d time.Duration) {
	r.stopLocked()
	r.gen++
	gen := r.gen
	r.timer = time.AfterFunc(d, func() { r.fire(gen) })
}

// retryDelay удваивает паузу на каждую неудачу подряд, не выше MaxRetryDelay.
func (r *Reconciler) retryDelay() time.Duration {
	d := r.delay
	for i := 1; i < r.failures && d < MaxRetryDelay; i++ {
		d *= 2
	}
	return min(d, MaxRetryDelay)
}

func (r *Reconciler) stopLocked() {
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
	r.gen++
}

func (r *Reconciler) fire(gen uint64) {
	r.mu.Lock()
	if r.closed || gen != r.gen {
		// таймер уже перезапущен или сессия закрыта
		r.mu.Unlock()
		return
	}
	r.timer = nil
	r.mu.Unlock()
	r.flush(context.Background())
}

func equalDocs(a, b document.Document) bool {
	return cmp.Equal(a, b, cmpopts.EquateEmpty())
}
