package handlers

import (
	"net/http"
	"testing"
	"time"

	"bizportal/internal/adapter/http/handlers/mocks"
	"bizportal/internal/domain/entities"
	"bizportal/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newPortalRouter(h *PortalHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/session", h.Login)
	r.POST("/v1/session/register", h.Register)
	r.GET("/v1/session", h.CurrentSession)
	r.DELETE("/v1/session", h.Logout)
	r.GET("/v1/tickets", h.ListTickets)
	r.POST("/v1/tickets", h.RaiseTicket)
	return r
}

func TestPortalHandler_Session(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("login", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mocks.NewMockISessionUseCase(ctrl)
		h := NewPortalHandler(sessions, nil)

		sessions.EXPECT().Login(gomock.Any(), usecase.LoginCommand{Email: "a@b.test", Password: "pw"}).
			Return(entities.Session{ID: "s-1", CompanyName: "Phoenix Enterprises", StartedAt: time.Now()}, nil)

		w := doJSON(newPortalRouter(h), http.MethodPost, "/v1/session", `{"email":"a@b.test","password":"pw"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("login missing fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mocks.NewMockISessionUseCase(ctrl)
		h := NewPortalHandler(sessions, nil)

		sessions.EXPECT().Login(gomock.Any(), gomock.Any()).Return(entities.Session{}, usecase.ErrMissingCredentials)

		w := doJSON(newPortalRouter(h), http.MethodPost, "/v1/session", `{"email":"a@b.test"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("register password mismatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mocks.NewMockISessionUseCase(ctrl)
		h := NewPortalHandler(sessions, nil)

		sessions.EXPECT().Register(gomock.Any(), gomock.Any()).Return(entities.Session{}, usecase.ErrPasswordMismatch)

		w := doJSON(newPortalRouter(h), http.MethodPost, "/v1/session/register", `{"email":"a@b.test","password":"x","confirm_password":"y"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("logout without session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mocks.NewMockISessionUseCase(ctrl)
		h := NewPortalHandler(sessions, nil)

		sessions.EXPECT().Logout(gomock.Any()).Return(usecase.ErrSessionNotFound)

		w := doJSON(newPortalRouter(h), http.MethodDelete, "/v1/session", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("logout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mocks.NewMockISessionUseCase(ctrl)
		h := NewPortalHandler(sessions, nil)

		sessions.EXPECT().Logout(gomock.Any()).Return(nil)

		w := doJSON(newPortalRouter(h), http.MethodDelete, "/v1/session", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("current", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mocks.NewMockISessionUseCase(ctrl)
		h := NewPortalHandler(sessions, nil)

		sessions.EXPECT().Current(gomock.Any()).Return(entities.Session{ID: "s-1"}, nil)

		w := doJSON(newPortalRouter(h), http.MethodGet, "/v1/session", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestPortalHandler_Tickets(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("raise without subject", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewPortalHandler(nil, mocks.NewMockITicketUseCase(ctrl))

		w := doJSON(newPortalRouter(h), http.MethodPost, "/v1/tickets", `{"category":"Technical"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("raise with unknown category", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tickets := mocks.NewMockITicketUseCase(ctrl)
		h := NewPortalHandler(nil, tickets)

		tickets.EXPECT().Raise(gomock.Any(), usecase.RaiseTicketCommand{Subject: "x", Category: "Catering"}).Return(entities.Ticket{}, usecase.ErrTicketInvalid)

		w := doJSON(newPortalRouter(h), http.MethodPost, "/v1/tickets", `{"subject":"x","category":"Catering"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("raise", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tickets := mocks.NewMockITicketUseCase(ctrl)
		h := NewPortalHandler(nil, tickets)

		tickets.EXPECT().Raise(gomock.Any(), gomock.Any()).Return(entities.Ticket{ID: "TCK-2023-003", Status: entities.TicketStatusOpen}, nil)

		w := doJSON(newPortalRouter(h), http.MethodPost, "/v1/tickets", `{"subject":"VPN","category":"Technical"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tickets := mocks.NewMockITicketUseCase(ctrl)
		h := NewPortalHandler(nil, tickets)

		tickets.EXPECT().List(gomock.Any()).Return([]entities.Ticket{{ID: "TCK-2023-001"}}, nil)

		w := doJSON(newPortalRouter(h), http.MethodGet, "/v1/tickets", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
