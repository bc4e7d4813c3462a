// Package adform is the state machine behind the "post your ad" form: field
// values, photo slots, location resolution, validation and submission.
//
// Engine methods are safe for concurrent use. The engine lock is never held
// while a photo decodes, a location is looked up or a submission is sent.
package adform

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Abdurahmanit/GroupProject/property-service/internal/property/contract"
	"github.com/Abdurahmanit/GroupProject/property-service/internal/property/domain"
	"github.com/Abdurahmanit/GroupProject/property-service/internal/selection"
	"github.com/Abdurahmanit/GroupProject/property-service/internal/taxonomy"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultPhotoSlots         = 12
	MaxPhotoSlots             = 20
	DefaultGeolocationTimeout = 10 * time.Second
	DefaultAutoCloseDelay     = 3 * time.Second
)

// Submitter sends a finished draft. A nil error means the server answered.
type Submitter interface {
	SubmitProperty(ctx context.Context, payload *contract.PropertyPayload) (*contract.SubmitResponse, error)
}

type Config struct {
	PhotoSlots         int
	GeolocationTimeout time.Duration
	AutoCloseDelay     time.Duration
	// Tree is used for the category badge and the in-form picker.
	Tree taxonomy.Tree
	// Locator may be nil when the device has no geolocation.
	Locator Locator
	// OnClose runs once, after auto-close or Cancel, with the view to return to.
	OnClose func(selection.View)
}

type Engine struct {
	id        string
	cfg       Config
	submitter Submitter
	store     *selection.Store
	logger    *zap.Logger

	mu         sync.Mutex
	selection  selection.Selection
	origin     selection.View
	pickerOpen bool
	fields     map[string]string
	slots      []Slot
	gens       []uint64
	location   locationState
	outcome    Outcome
	closed     bool
	closeTimer *time.Timer
	done       chan struct{}

	bg sync.WaitGroup
}

// New opens a form for the store's current selection, or the default
// Properties selection when none was made.
func New(cfg Config, submitter Submitter, store *selection.Store, log *zap.Logger) (*Engine, error) {
	if cfg.PhotoSlots == 0 {
		cfg.PhotoSlots = DefaultPhotoSlots
	}
	if cfg.PhotoSlots < 0 || cfg.PhotoSlots > MaxPhotoSlots {
		return nil, fmt.Errorf("%w: %d (max %d)", ErrTooManySlots, cfg.PhotoSlots, MaxPhotoSlots)
	}
	if cfg.GeolocationTimeout <= 0 {
		cfg.GeolocationTimeout = DefaultGeolocationTimeout
	}
	if cfg.AutoCloseDelay <= 0 {
		cfg.AutoCloseDelay = DefaultAutoCloseDelay
	}
	if store == nil {
		store = selection.NewStore()
	}
	if log == nil {
		log = zap.NewNop()
	}

	id := uuid.NewString()
	e := &Engine{
		id:        id,
		cfg:       cfg,
		submitter: submitter,
		store:     store,
		logger:    log.Named("adform").With(zap.String("draft_id", id)),
		selection: store.OrDefault(),
		origin:    store.Origin(),
		fields:    newDraft(),
		slots:     make([]Slot, cfg.PhotoSlots),
		gens:      make([]uint64, cfg.PhotoSlots),
		location:  locationState{mode: ListMode},
		done:      make(chan struct{}),
	}
	e.logger.Debug("Draft opened",
		zap.String("category", e.selection.Category),
		zap.String("subcategory", e.selection.Subcategory))
	return e, nil
}

func (e *Engine) ID() string { return e.id }

// Selection is the category the draft will be filed under.
func (e *Engine) Selection() selection.Selection {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.selection
}

// Badge is the category label, "" when the selection is not in the tree.
func (e *Engine) Badge() string {
	sel := e.Selection()
	return taxonomy.Badge(e.cfg.Tree, sel.Category, sel.Subcategory)
}

// ChangeCategory refiles the draft. Field values are untouched and the picker
// closes.
func (e *Engine) ChangeCategory(category, subcategory string) error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return ErrClosed
	}
	e.selection = selection.Select(category, subcategory)
	e.pickerOpen = false
	e.mu.Unlock()

	e.store.Select(category, subcategory)
	return nil
}

func (e *Engine) OpenCategoryPicker() {
	e.mu.Lock()
	e.pickerOpen = true
	e.mu.Unlock()
}

func (e *Engine) CloseCategoryPicker() {
	e.mu.Lock()
	e.pickerOpen = false
	e.mu.Unlock()
}

func (e *Engine) PickerOpen() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pickerOpen
}

// PickerCategories is the full tree shown by the in-form picker.
func (e *Engine) PickerCategories() []domain.Category {
	return taxonomy.All(e.cfg.Tree)
}

// Wait blocks until background photo decodes and abandoned location lookups
// have returned.
func (e *Engine) Wait() {
	e.bg.Wait()
}

// Done is closed when the form closes.
func (e *Engine) Done() <-chan struct{} {
	return e.done
}

// Cancel discards the draft and closes the form now.
func (e *Engine) Cancel() {
	e.close("cancelled")
}

// close destroys the draft exactly once and notifies OnClose outside the lock.
func (e *Engine) close(reason string) {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	if e.closeTimer != nil {
		e.closeTimer.Stop()
	}
	e.fields = map[string]string{}
	for i := range e.slots {
		e.slots[i] = Slot{}
		e.gens[i]++
	}
	e.location = locationState{mode: ListMode}
	e.pickerOpen = false
	origin := e.origin
	close(e.done)
	e.mu.Unlock()

	e.logger.Debug("Draft closed", zap.String("reason", reason), zap.String("origin", string(origin)))
	if e.cfg.OnClose != nil {
		e.cfg.OnClose(origin)
	}
}
