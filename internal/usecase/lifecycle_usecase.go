package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"bizportal/internal/domain/entities"
	"bizportal/internal/usecase/interfaces"
	"bizportal/pkg/money"

	"github.com/rs/zerolog/log"
)

var (
	ErrInvalidProductID        = errors.New("invalid product id")
	ErrInvalidQuantity         = errors.New("invalid quantity")
	ErrInvalidAmount           = errors.New("invalid amount")
	ErrInvalidQuoteID          = errors.New("invalid quote id")
	ErrInvalidQuoteAction      = errors.New("invalid quote action")
	ErrInvalidNegotiationPrice = errors.New("invalid negotiation price")
	ErrInvalidOrderID          = errors.New("invalid order id")
	ErrOrderNotFound           = errors.New("order not found")
	ErrInvalidInvoiceID        = errors.New("invalid invoice id")
	ErrInvoiceNotFound         = errors.New("invoice not found")
	ErrIDSpaceExhausted        = errors.New("could not allocate a free id")
)

const (
	maxIDAttempts    = 64
	subscriberBuffer = 16
)

// QuoteActionKind is the user's answer to a quote.
type QuoteActionKind string

const (
	QuoteActionApprove   QuoteActionKind = "approve"
	QuoteActionDecline   QuoteActionKind = "decline"
	QuoteActionNegotiate QuoteActionKind = "negotiate"
)

type QuoteAction struct {
	Kind        QuoteActionKind
	TargetPrice float64
}

func ApproveAction() QuoteAction { return QuoteAction{Kind: QuoteActionApprove} }

func DeclineAction() QuoteAction { return QuoteAction{Kind: QuoteActionDecline} }

func NegotiateAction(targetPrice float64) QuoteAction {
	return QuoteAction{Kind: QuoteActionNegotiate, TargetPrice: targetPrice}
}

type SubmitQuoteCommand struct {
	ProductID    string
	ProductTitle string
	Quantity     int
	Amount       float64
	Notes        string
}

// RespondResult reports what a quote action did.
//
// Applied is false when the quote was unknown or already terminal. Order is
// set only when the quote was approved.
type RespondResult struct {
	Applied bool
	Quote   entities.Quote
	Order   *entities.Order
}

type TickReport struct {
	Advanced  []string
	Delivered []string
	Invoiced  []entities.Invoice
}

func (r TickReport) Changed() bool {
	return len(r.Advanced) > 0 || len(r.Invoiced) > 0
}

// Snapshot is a point-in-time copy of the three lifecycle collections.
type Snapshot struct {
	Quotes   []entities.Quote   `json:"quotes"`
	Orders   []entities.Order   `json:"orders"`
	Invoices []entities.Invoice `json:"invoices"`
	TakenAt  time.Time          `json:"taken_at"`
}

func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Quotes:   make([]entities.Quote, len(s.Quotes)),
		Orders:   make([]entities.Order, len(s.Orders)),
		Invoices: make([]entities.Invoice, len(s.Invoices)),
		TakenAt:  s.TakenAt,
	}
	for i, q := range s.Quotes {
		out.Quotes[i] = q.Clone()
	}
	copy(out.Orders, s.Orders)
	for i, inv := range s.Invoices {
		out.Invoices[i] = inv.Clone()
	}
	return out
}

// LifecycleConfig carries the simulation constants.
type LifecycleConfig struct {
	TickInterval             time.Duration
	QuoteResponseDelay       time.Duration
	NegotiationResponseDelay time.Duration
	CounterOfferDiscount     float64
	VATRate                  float64
	InvoiceDueDays           int
	OrderLeadDays            int
}

func DefaultLifecycleConfig() LifecycleConfig {
	return LifecycleConfig{
		TickInterval:             5 * time.Second,
		QuoteResponseDelay:       5 * time.Second,
		NegotiationResponseDelay: 4 * time.Second,
		CounterOfferDiscount:     0.05,
		VATRate:                  0.20,
		InvoiceDueDays:           30,
		OrderLeadDays:            30,
	}
}

// ILifecycleUseCase is the command and query surface of the lifecycle engine.
//
//   - SubmitQuote / RespondToQuote are the user intents
//   - Tick advances orders and invoices completed ones
//   - the remaining methods are read views returning copies
type ILifecycleUseCase interface {
	SubmitQuote(ctx context.Context, cmd SubmitQuoteCommand) (entities.Quote, error)
	RespondToQuote(ctx context.Context, quoteID string, action QuoteAction) (RespondResult, error)
	Tick(ctx context.Context) (TickReport, error)
	Snapshot(ctx context.Context) (Snapshot, error)
	ListQuotes(ctx context.Context) ([]entities.Quote, error)
	ListOrders(ctx context.Context) ([]entities.Order, error)
	GetOrder(ctx context.Context, id string) (entities.Order, error)
	ListInvoices(ctx context.Context) ([]entities.Invoice, error)
	GetInvoice(ctx context.Context, id string) (entities.Invoice, error)
}

// ILifecycleRunner controls the background side of the engine.
type ILifecycleRunner interface {
	Start(ctx context.Context) error
	Stop()
	Running() bool
	Subscribe() (<-chan Snapshot, func())
}

type LifecycleOption func(*LifecycleUseCase)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) LifecycleOption {
	return func(u *LifecycleUseCase) { u.now = now }
}

// WithIDSource replaces the random source used for entity ids. It must
// return a value in [0, n).
func WithIDSource(intN func(n int) int) LifecycleOption {
	return func(u *LifecycleUseCase) { u.intN = intN }
}

type pendingTransition struct {
	quoteID string
	cancel  func()
}

// deferredTransition is a one-shot admin response bound to a quote revision.
// It re-reads the quote when it fires and applies only while the quote still
// exists, carries the same revision and satisfies applies.
type deferredTransition struct {
	name     string
	quoteID  string
	revision int
	delay    time.Duration
	applies  func(entities.Quote) bool
	apply    func(*entities.Quote)
}

// LifecycleUseCase owns the Quotes, Orders and Invoices collections.
//
// Every command, deferred transition and tick runs under mu, so each one
// completes before the next starts.
type LifecycleUseCase struct {
	mu sync.Mutex

	cfg       LifecycleConfig
	quotes    interfaces.IQuoteRepository
	orders    interfaces.IOrderRepository
	invoices  interfaces.IInvoiceRepository
	scheduler interfaces.IScheduler

	now  func() time.Time
	intN func(n int) int

	issued       map[string]struct{}
	deferred     map[uint64]pendingTransition
	nextDeferred uint64

	stopTick func()
	tickGen  uint64

	subscribers    map[uint64]chan Snapshot
	nextSubscriber uint64
}

var (
	_ ILifecycleUseCase = (*LifecycleUseCase)(nil)
	_ ILifecycleRunner  = (*LifecycleUseCase)(nil)
)

func NewLifecycleUseCase(
	quotes interfaces.IQuoteRepository,
	orders interfaces.IOrderRepository,
	invoices interfaces.IInvoiceRepository,
	scheduler interfaces.IScheduler,
	cfg LifecycleConfig,
	opts ...LifecycleOption,
) *LifecycleUseCase {
	u := &LifecycleUseCase{
		cfg:         cfg,
		quotes:      quotes,
		orders:      orders,
		invoices:    invoices,
		scheduler:   scheduler,
		now:         time.Now,
		intN:        rand.IntN,
		issued:      make(map[string]struct{}),
		deferred:    make(map[uint64]pendingTransition),
		subscribers: make(map[uint64]chan Snapshot),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Seed loads initial collections. Each slice is given newest first, the way
// it should be displayed.
func (u *LifecycleUseCase) Seed(ctx context.Context, quotes []entities.Quote, orders []entities.Order, invoices []entities.Invoice) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	for i := len(quotes) - 1; i >= 0; i-- {
		if _, err := u.quotes.Prepend(ctx, quotes[i]); err != nil {
			return fmt.Errorf("seed quote %s: %w", quotes[i].ID, err)
		}
		u.issued[quotes[i].ID] = struct{}{}
	}
	for i := len(orders) - 1; i >= 0; i-- {
		if _, err := u.orders.Prepend(ctx, orders[i]); err != nil {
			return fmt.Errorf("seed order %s: %w", orders[i].ID, err)
		}
		u.issued[orders[i].ID] = struct{}{}
	}
	for i := len(invoices) - 1; i >= 0; i-- {
		if _, err := u.invoices.Prepend(ctx, invoices[i]); err != nil {
			return fmt.Errorf("seed invoice %s: %w", invoices[i].ID, err)
		}
		u.issued[invoices[i].ID] = struct{}{}
	}
	log.Info().Int("quotes", len(quotes)).Int("orders", len(orders)).Int("invoices", len(invoices)).Msg("lifecycle: collections seeded")
	return nil
}

func (u *LifecycleUseCase) SubmitQuote(ctx context.Context, cmd SubmitQuoteCommand) (entities.Quote, error) {
	productID := strings.TrimSpace(cmd.ProductID)
	if productID == "" {
		return entities.Quote{}, ErrInvalidProductID
	}
	if cmd.Quantity < 1 {
		return entities.Quote{}, ErrInvalidQuantity
	}
	if cmd.Amount < 0 || math.IsNaN(cmd.Amount) || math.IsInf(cmd.Amount, 0) {
		return entities.Quote{}, ErrInvalidAmount
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	id, err := u.allocateIDLocked("QT", 0, 10000)
	if err != nil {
		return entities.Quote{}, err
	}

	q := entities.Quote{
		ID:           id,
		ProductID:    productID,
		ProductTitle: strings.TrimSpace(cmd.ProductTitle),
		Date:         entities.FormatDate(u.now()),
		Status:       entities.QuoteStatusInReview,
		Amount:       money.Round(cmd.Amount),
		Quantity:     cmd.Quantity,
		Notes:        strings.TrimSpace(cmd.Notes),
		LastActionBy: entities.ActorUser,
	}
	created, err := u.quotes.Prepend(ctx, q)
	if err != nil {
		log.Error().Err(err).Str("quote_id", q.ID).Msg("lifecycle: failed to store quote")
		return entities.Quote{}, err
	}

	discount := u.cfg.CounterOfferDiscount
	u.scheduleLocked(deferredTransition{
		name:     "submission-response",
		quoteID:  created.ID,
		revision: created.Revision,
		delay:    u.cfg.QuoteResponseDelay,
		applies:  func(entities.Quote) bool { return true },
		apply: func(q *entities.Quote) {
			q.Status = entities.QuoteStatusActionRequired
			q.Amount = money.Discount(q.Amount, discount)
		},
	})

	log.Info().Str("quote_id", created.ID).Str("product_id", created.ProductID).Int("quantity", created.Quantity).Float64("amount", created.Amount).Msg("lifecycle: quote submitted")
	u.publishLocked(ctx)
	return created, nil
}

func (u *LifecycleUseCase) RespondToQuote(ctx context.Context, quoteID string, action QuoteAction) (RespondResult, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return RespondResult{}, ErrInvalidQuoteID
	}
	switch action.Kind {
	case QuoteActionApprove, QuoteActionDecline:
	case QuoteActionNegotiate:
		if !(action.TargetPrice > 0) || math.IsInf(action.TargetPrice, 0) {
			return RespondResult{}, ErrInvalidNegotiationPrice
		}
	default:
		return RespondResult{}, ErrInvalidQuoteAction
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	q, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return RespondResult{}, err
	}
	if q.ID == "" {
		log.Debug().Str("quote_id", quoteID).Str("action", string(action.Kind)).Msg("lifecycle: quote not found; ignoring action")
		return RespondResult{}, nil
	}
	if q.Status.IsTerminal() {
		log.Debug().Str("quote_id", quoteID).Str("status", string(q.Status)).Str("action", string(action.Kind)).Msg("lifecycle: quote is terminal; ignoring action")
		return RespondResult{Quote: q}, nil
	}

	switch action.Kind {
	case QuoteActionApprove:
		return u.approveLocked(ctx, q)
	case QuoteActionDecline:
		q.Status = entities.QuoteStatusRejected
		q.LastActionBy = entities.ActorUser
		q.Revision++
		updated, err := u.quotes.Update(ctx, q)
		if err != nil {
			return RespondResult{}, err
		}
		u.cancelDeferredLocked(q.ID)
		log.Info().Str("quote_id", q.ID).Msg("lifecycle: quote declined")
		u.publishLocked(ctx)
		return RespondResult{Applied: true, Quote: updated}, nil
	default:
		return u.negotiateLocked(ctx, q, money.Round(action.TargetPrice))
	}
}

func (u *LifecycleUseCase) negotiateLocked(ctx context.Context, q entities.Quote, target float64) (RespondResult, error) {
	q.Status = entities.QuoteStatusInReview
	q.LastActionBy = entities.ActorUser
	q.NegotiationPrice = &target
	q.Revision++
	updated, err := u.quotes.Update(ctx, q)
	if err != nil {
		return RespondResult{}, err
	}

	u.scheduleLocked(deferredTransition{
		name:     "negotiation-response",
		quoteID:  updated.ID,
		revision: updated.Revision,
		delay:    u.cfg.NegotiationResponseDelay,
		applies:  func(q entities.Quote) bool { return q.Status == entities.QuoteStatusInReview },
		apply: func(q *entities.Quote) {
			q.Status = entities.QuoteStatusActionRequired
			q.Amount = target
		},
	})

	log.Info().Str("quote_id", q.ID).Float64("target_price", target).Msg("lifecycle: quote negotiation requested")
	u.publishLocked(ctx)
	return RespondResult{Applied: true, Quote: updated}, nil
}

func (u *LifecycleUseCase) approveLocked(ctx context.Context, q entities.Quote) (RespondResult, error) {
	id, err := u.allocateIDLocked("ORD", 10000, 90000)
	if err != nil {
		return RespondResult{}, err
	}

	now := u.now()
	order := entities.Order{
		ID:                  id,
		Date:                entities.FormatDate(now),
		Item:                q.ProductTitle,
		Amount:              q.Amount,
		Status:              entities.OrderStatusInProgress,
		TrackingStage:       0,
		EstimatedCompletion: entities.FormatCompletion(now.AddDate(0, 0, u.cfg.OrderLeadDays)),
	}
	created, err := u.orders.Prepend(ctx, order)
	if err != nil {
		log.Error().Err(err).Str("quote_id", q.ID).Msg("lifecycle: failed to create order from quote")
		return RespondResult{}, err
	}
	if _, err := u.quotes.Delete(ctx, q.ID); err != nil {
		return RespondResult{}, err
	}
	u.cancelDeferredLocked(q.ID)

	q.Status = entities.QuoteStatusApproved
	q.LastActionBy = entities.ActorUser
	q.Revision++

	log.Info().Str("quote_id", q.ID).Str("order_id", created.ID).Float64("amount", created.Amount).Msg("lifecycle: quote approved; order created")
	u.publishLocked(ctx)
	return RespondResult{Applied: true, Quote: q, Order: &created}, nil
}

// Tick advances every in-progress order by one stage, then invoices every
// order sitting on the final stage that has no invoice yet. Both phases run
// under one lock acquisition.
func (u *LifecycleUseCase) Tick(ctx context.Context) (TickReport, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	report, err := u.tickLocked(ctx)
	if report.Changed() {
		u.publishLocked(ctx)
	}
	return report, err
}

func (u *LifecycleUseCase) tickLocked(ctx context.Context) (TickReport, error) {
	var report TickReport

	orders, err := u.orders.List(ctx)
	if err != nil {
		return report, err
	}
	for _, o := range orders {
		if o.Status != entities.OrderStatusInProgress || o.TrackingStage >= entities.FinalTrackingStage {
			continue
		}
		o.TrackingStage++
		if o.TrackingStage == entities.FinalTrackingStage {
			o.Status = entities.OrderStatusDelivered
			report.Delivered = append(report.Delivered, o.ID)
		}
		if _, err := u.orders.Update(ctx, o); err != nil {
			return report, err
		}
		report.Advanced = append(report.Advanced, o.ID)
		log.Debug().Str("order_id", o.ID).Int("stage", o.TrackingStage).Msg("lifecycle: order advanced")
	}

	orders, err = u.orders.List(ctx)
	if err != nil {
		return report, err
	}
	for _, o := range orders {
		if o.TrackingStage != entities.FinalTrackingStage {
			continue
		}
		existing, err := u.invoices.GetByOrderID(ctx, o.ID)
		if err != nil {
			return report, err
		}
		if existing.ID != "" {
			continue
		}
		inv, err := u.newInvoiceLocked(o)
		if err != nil {
			return report, err
		}
		created, err := u.invoices.Prepend(ctx, inv)
		if err != nil {
			return report, err
		}
		report.Invoiced = append(report.Invoiced, created)
		log.Info().Str("order_id", o.ID).Str("invoice_id", created.ID).Float64("total", created.Total).Msg("lifecycle: invoice generated")
	}
	return report, nil
}

func (u *LifecycleUseCase) newInvoiceLocked(o entities.Order) (entities.Invoice, error) {
	id, err := u.allocateIDLocked("INV", 10000, 90000)
	if err != nil {
		return entities.Invoice{}, err
	}
	now := u.now()
	vat := money.Percent(o.Amount, u.cfg.VATRate)
	return entities.Invoice{
		ID:      id,
		OrderID: o.ID,
		Date:    entities.FormatDate(now),
		DueDate: entities.FormatDate(now.AddDate(0, 0, u.cfg.InvoiceDueDays)),
		Amount:  o.Amount,
		VAT:     vat,
		Total:   money.Add(o.Amount, vat),
		Status:  entities.InvoiceStatusUnpaid,
		Items: []entities.InvoiceItem{
			{Description: o.Item, Quantity: 1, UnitPrice: o.Amount},
		},
	}, nil
}

func (u *LifecycleUseCase) Snapshot(ctx context.Context) (Snapshot, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.snapshotLocked(ctx)
}

func (u *LifecycleUseCase) snapshotLocked(ctx context.Context) (Snapshot, error) {
	quotes, err := u.quotes.List(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	orders, err := u.orders.List(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	invoices, err := u.invoices.List(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{Quotes: quotes, Orders: orders, Invoices: invoices, TakenAt: u.now().UTC()}, nil
}

func (u *LifecycleUseCase) ListQuotes(ctx context.Context) ([]entities.Quote, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.quotes.List(ctx)
}

func (u *LifecycleUseCase) ListOrders(ctx context.Context) ([]entities.Order, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.orders.List(ctx)
}

func (u *LifecycleUseCase) GetOrder(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	o, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *LifecycleUseCase) ListInvoices(ctx context.Context) ([]entities.Invoice, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.invoices.List(ctx)
}

func (u *LifecycleUseCase) GetInvoice(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	inv, err := u.invoices.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

// Start schedules the periodic tick. Calling it on a running engine is a no-op.
func (u *LifecycleUseCase) Start(_ context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.stopTick != nil {
		return nil
	}
	u.tickGen++
	gen := u.tickGen
	stop, err := u.scheduler.Every(u.cfg.TickInterval, func() { u.scheduledTick(gen) })
	if err != nil {
		log.Error().Err(err).Dur("interval", u.cfg.TickInterval).Msg("lifecycle: failed to start tick")
		return err
	}
	u.stopTick = stop
	log.Info().Dur("interval", u.cfg.TickInterval).Msg("lifecycle: tick started")
	return nil
}

// Stop cancels the periodic tick and every pending deferred transition.
func (u *LifecycleUseCase) Stop() {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.stopTick != nil {
		u.stopTick()
		u.stopTick = nil
		log.Info().Msg("lifecycle: tick stopped")
	}
	for key, p := range u.deferred {
		p.cancel()
		delete(u.deferred, key)
	}
}

func (u *LifecycleUseCase) Running() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.stopTick != nil
}

// Subscribe returns a channel receiving a snapshot after every mutation.
// Snapshots are dropped for subscribers that fall behind.
func (u *LifecycleUseCase) Subscribe() (<-chan Snapshot, func()) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.nextSubscriber++
	key := u.nextSubscriber
	ch := make(chan Snapshot, subscriberBuffer)
	u.subscribers[key] = ch

	return ch, func() {
		u.mu.Lock()
		defer u.mu.Unlock()
		if ch, ok := u.subscribers[key]; ok {
			delete(u.subscribers, key)
			close(ch)
		}
	}
}

func (u *LifecycleUseCase) scheduledTick(gen uint64) {
	ctx := context.Background()

	u.mu.Lock()
	defer u.mu.Unlock()

	// A tick that was already waiting on the lock when Stop ran must not
	// mutate anything.
	if u.stopTick == nil || u.tickGen != gen {
		return
	}
	report, err := u.tickLocked(ctx)
	if err != nil {
		log.Error().Err(err).Msg("lifecycle: tick failed")
	}
	if report.Changed() {
		u.publishLocked(ctx)
	}
}

func (u *LifecycleUseCase) scheduleLocked(t deferredTransition) {
	u.nextDeferred++
	key := u.nextDeferred
	cancel := u.scheduler.After(t.delay, func() { u.runDeferred(key, t) })
	u.deferred[key] = pendingTransition{quoteID: t.quoteID, cancel: cancel}
	log.Debug().Str("quote_id", t.quoteID).Str("transition", t.name).Dur("delay", t.delay).Msg("lifecycle: deferred transition scheduled")
}

func (u *LifecycleUseCase) cancelDeferredLocked(quoteID string) {
	for key, p := range u.deferred {
		if p.quoteID == quoteID {
			p.cancel()
			delete(u.deferred, key)
		}
	}
}

func (u *LifecycleUseCase) runDeferred(key uint64, t deferredTransition) {
	ctx := context.Background()

	u.mu.Lock()
	defer u.mu.Unlock()

	if _, ok := u.deferred[key]; !ok {
		return
	}
	delete(u.deferred, key)

	q, err := u.quotes.GetByID(ctx, t.quoteID)
	if err != nil {
		log.Error().Err(err).Str("quote_id", t.quoteID).Str("transition", t.name).Msg("lifecycle: failed to load quote for deferred transition")
		return
	}
	if q.ID == "" {
		log.Debug().Str("quote_id", t.quoteID).Str("transition", t.name).Msg("lifecycle: quote gone; deferred transition skipped")
		return
	}
	if q.Revision != t.revision || !t.applies(q) {
		log.Debug().Str("quote_id", t.quoteID).Str("transition", t.name).Int("revision", q.Revision).Int("expected_revision", t.revision).Msg("lifecycle: quote changed; deferred transition skipped")
		return
	}

	t.apply(&q)
	q.LastActionBy = entities.ActorAdmin
	q.Revision++
	if _, err := u.quotes.Update(ctx, q); err != nil {
		log.Error().Err(err).Str("quote_id", q.ID).Str("transition", t.name).Msg("lifecycle: failed to apply deferred transition")
		return
	}
	log.Info().Str("quote_id", q.ID).Str("transition", t.name).Str("status", string(q.Status)).Float64("amount", q.Amount).Msg("lifecycle: admin responded to quote")
	u.publishLocked(ctx)
}

func (u *LifecycleUseCase) publishLocked(ctx context.Context) {
	if len(u.subscribers) == 0 {
		return
	}
	snap, err := u.snapshotLocked(ctx)
	if err != nil {
		log.Error().Err(err).Msg("lifecycle: failed to build snapshot")
		return
	}
	for key, ch := range u.subscribers {
		select {
		case ch <- snap.Clone():
		default:
			log.Warn().Uint64("subscriber", key).Msg("lifecycle: subscriber is behind; snapshot dropped")
		}
	}
}

// allocateIDLocked draws "<prefix>-<n>" with n in [lo, lo+span) until it finds
// an id never handed out before, so stale deferred transitions can never
// match a newer entity.
func (u *LifecycleUseCase) allocateIDLocked(prefix string, lo, span int) (string, error) {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id := fmt.Sprintf("%s-%d", prefix, lo+u.intN(span))
		if _, taken := u.issued[id]; taken {
			continue
		}
		u.issued[id] = struct{}{}
		return id, nil
	}
	return "", ErrIDSpaceExhausted
}
