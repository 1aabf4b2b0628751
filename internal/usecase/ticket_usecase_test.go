package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"bizportal/internal/adapter/persistence/repository"
	"bizportal/internal/domain/entities"
	mock_interfaces "bizportal/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestTicketUseCase_Raise(t *testing.T) {
	now := func() time.Time { return time.Date(2023, time.November, 24, 9, 0, 0, 0, time.UTC) }

	t.Run("missing subject", func(t *testing.T) {
		uc := NewTicketUseCase(nil, now)
		_, err := uc.Raise(context.Background(), RaiseTicketCommand{Subject: "  ", Category: "Technical"})
		if !errors.Is(err, ErrTicketInvalid) {
			t.Fatalf("expected ErrTicketInvalid, got %v", err)
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		uc := NewTicketUseCase(nil, now)
		_, err := uc.Raise(context.Background(), RaiseTicketCommand{Subject: "VPN down", Category: "Catering"})
		if !errors.Is(err, ErrTicketInvalid) {
			t.Fatalf("expected ErrTicketInvalid, got %v", err)
		}
	})

	t.Run("continues the yearly sequence", func(t *testing.T) {
		repo := repository.NewTicketMemoryRepository(
			entities.Ticket{ID: "TCK-2023-001", Subject: "a", Category: "Technical", Status: entities.TicketStatusOpen},
			entities.Ticket{ID: "TCK-2023-002", Subject: "b", Category: "Billing", Status: entities.TicketStatusClosed},
			entities.Ticket{ID: "TCK-2022-041", Subject: "c", Category: "Sales", Status: entities.TicketStatusClosed},
		)
		uc := NewTicketUseCase(repo, now)

		got, err := uc.Raise(context.Background(), RaiseTicketCommand{Subject: " VPN down ", Description: "since 9am", Category: "technical"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "TCK-2023-003" || got.Subject != "VPN down" || got.Category != "Technical" ||
			got.Status != entities.TicketStatusOpen || got.Date != "2023-11-24" {
			t.Fatalf("unexpected ticket: %+v", got)
		}

		list, _ := uc.List(context.Background())
		if len(list) != 4 || list[0].ID != "TCK-2023-003" {
			t.Fatalf("expected new ticket first, got %+v", list)
		}
	})

	t.Run("first ticket of the year", func(t *testing.T) {
		uc := NewTicketUseCase(repository.NewTicketMemoryRepository(), now)
		got, err := uc.Raise(context.Background(), RaiseTicketCommand{Subject: "Invoice copy", Category: "Billing"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "TCK-2023-001" {
			t.Fatalf("unexpected id: %s", got.ID)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockITicketRepository(ctrl)
		uc := NewTicketUseCase(repo, now)

		repo.EXPECT().List(gomock.Any()).Return(nil, nil)
		repo.EXPECT().Prepend(gomock.Any(), gomock.AssignableToTypeOf(entities.Ticket{})).Return(entities.Ticket{}, errors.New("db"))

		_, err := uc.Raise(context.Background(), RaiseTicketCommand{Subject: "x", Category: "Account"})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
