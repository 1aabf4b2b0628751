package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"bizportal/internal/domain/entities"
	"bizportal/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
)

var ErrTicketInvalid = errors.New("invalid ticket")

type RaiseTicketCommand struct {
	Subject     string
	Description string
	Category    string
}

type ITicketUseCase interface {
	List(ctx context.Context) ([]entities.Ticket, error)
	Raise(ctx context.Context, cmd RaiseTicketCommand) (entities.Ticket, error)
}

// TicketUseCase is the mock support desk. Tickets are never worked on, so
// every raised ticket stays Open.
type TicketUseCase struct {
	mu      sync.Mutex
	tickets interfaces.ITicketRepository
	now     func() time.Time
}

var _ ITicketUseCase = (*TicketUseCase)(nil)

func NewTicketUseCase(tickets interfaces.ITicketRepository, now func() time.Time) *TicketUseCase {
	if now == nil {
		now = time.Now
	}
	return &TicketUseCase{tickets: tickets, now: now}
}

func (u *TicketUseCase) List(ctx context.Context) ([]entities.Ticket, error) {
	return u.tickets.List(ctx)
}

func (u *TicketUseCase) Raise(ctx context.Context, cmd RaiseTicketCommand) (entities.Ticket, error) {
	subject := strings.TrimSpace(cmd.Subject)
	if subject == "" {
		return entities.Ticket{}, fmt.Errorf("%w: subject is required", ErrTicketInvalid)
	}
	category, ok := ticketCategory(cmd.Category)
	if !ok {
		return entities.Ticket{}, fmt.Errorf("%w: unknown category %q", ErrTicketInvalid, cmd.Category)
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	existing, err := u.tickets.List(ctx)
	if err != nil {
		return entities.Ticket{}, err
	}

	now := u.now()
	t := entities.Ticket{
		ID:          nextTicketID(existing, now.Year()),
		Subject:     subject,
		Description: strings.TrimSpace(cmd.Description),
		Category:    category,
		Status:      entities.TicketStatusOpen,
		Date:        entities.FormatDate(now),
	}
	created, err := u.tickets.Prepend(ctx, t)
	if err != nil {
		return entities.Ticket{}, err
	}
	log.Info().Str("ticket_id", created.ID).Str("category", created.Category).Msg("support: ticket raised")
	return created, nil
}

func ticketCategory(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	for _, c := range entities.TicketCategories {
		if strings.EqualFold(c, raw) {
			return c, true
		}
	}
	return "", false
}

// nextTicketID returns TCK-<year>-<nnn>, one past the highest sequence used
// in that year.
func nextTicketID(existing []entities.Ticket, year int) string {
	prefix := fmt.Sprintf("TCK-%d-", year)
	highest := 0
	for _, t := range existing {
		if !strings.HasPrefix(t.ID, prefix) {
			continue
		}
		if n, err := strconv.Atoi(strings.TrimPrefix(t.ID, prefix)); err == nil && n > highest {
			highest = n
		}
	}
	return fmt.Sprintf("%s%03d", prefix, highest+1)
}
