package handlers

import (
	"errors"
	"net/http"

	request "bizportal/internal/adapter/http/dto/request"
	response "bizportal/internal/adapter/http/dto/response"
	"bizportal/internal/usecase"
	"bizportal/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidTicketPayload  = pkg.NewDomainErrorSimple("INVALID_TICKET_INPUT", "Invalid ticket payload", http.StatusBadRequest)
	errInvalidSessionPayload = pkg.NewDomainErrorSimple("INVALID_SESSION_INPUT", "Invalid sign in payload", http.StatusBadRequest)
)

// PortalHandler covers the account and support pages around the lifecycle.
type PortalHandler struct {
	sessions usecase.ISessionUseCase
	tickets  usecase.ITicketUseCase
}

func NewPortalHandler(sessions usecase.ISessionUseCase, tickets usecase.ITicketUseCase) *PortalHandler {
	return &PortalHandler{sessions: sessions, tickets: tickets}
}

// Login godoc
// @Summary      Sign in and start the lifecycle simulation
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      request.LoginRequest  true  "Credentials"
// @Success      201   {object}  response.SessionResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /session [post]
func (h *PortalHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}

	s, err := h.sessions.Login(c.Request.Context(), usecase.LoginCommand{Email: payload.Email, Password: payload.Password})
	if err != nil {
		appErr := mapPortalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromSession(s))
}

// Register godoc
// @Summary      Register a business account
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      request.RegisterRequest  true  "Registration"
// @Success      201   {object}  response.SessionResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /session/register [post]
func (h *PortalHandler) Register(c *gin.Context) {
	var payload request.RegisterRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}

	s, err := h.sessions.Register(c.Request.Context(), usecase.RegisterCommand{
		Email:           payload.Email,
		Password:        payload.Password,
		ConfirmPassword: payload.ConfirmPassword,
		CompanyName:     payload.CompanyName,
		Phone:           payload.Phone,
	})
	if err != nil {
		appErr := mapPortalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromSession(s))
}

// CurrentSession godoc
// @Summary      Current session
// @Tags         session
// @Produce      json
// @Success      200  {object}  response.SessionResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /session [get]
func (h *PortalHandler) CurrentSession(c *gin.Context) {
	s, err := h.sessions.Current(c.Request.Context())
	if err != nil {
		appErr := mapPortalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}

// Logout godoc
// @Summary      Sign out and pause the simulation
// @Tags         session
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Router       /session [delete]
func (h *PortalHandler) Logout(c *gin.Context) {
	if err := h.sessions.Logout(c.Request.Context()); err != nil {
		appErr := mapPortalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// ListTickets godoc
// @Summary      List support tickets
// @Tags         tickets
// @Produce      json
// @Success      200  {array}  response.TicketResponse
// @Router       /tickets [get]
func (h *PortalHandler) ListTickets(c *gin.Context) {
	tickets, err := h.tickets.List(c.Request.Context())
	if err != nil {
		appErr := mapPortalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTickets(tickets))
}

// RaiseTicket godoc
// @Summary      Raise a support ticket
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Param        body  body      request.RaiseTicketRequest  true  "Ticket"
// @Success      201   {object}  response.TicketResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /tickets [post]
func (h *PortalHandler) RaiseTicket(c *gin.Context) {
	var payload request.RaiseTicketRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTicketPayload.HTTPStatus, errInvalidTicketPayload.ToHTTPError())
		return
	}

	t, err := h.tickets.Raise(c.Request.Context(), usecase.RaiseTicketCommand{
		Subject:     payload.Subject,
		Description: payload.Description,
		Category:    payload.Category,
	})
	if err != nil {
		appErr := mapPortalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromTicket(t))
}

func mapPortalError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingCredentials):
		return pkg.NewDomainErrorSimple("MISSING_CREDENTIALS", "Please fill in all fields.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPasswordMismatch):
		return pkg.NewDomainErrorSimple("PASSWORD_MISMATCH", "Passwords do not match.", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "No active session", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTicketInvalid):
		return pkg.NewDomainErrorSimple("INVALID_TICKET", "Invalid ticket", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
