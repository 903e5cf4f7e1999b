package handler

import (
	"errors"
	"net/http"
	"strconv"

	"legalconnect/api/middleware"
	"legalconnect/internal/dto"
	"legalconnect/internal/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type UserHandler struct {
	Service *service.AuthService
	Logger  logrus.FieldLogger
}

func NewUserHandler(svc *service.AuthService, logger logrus.FieldLogger) *UserHandler {
	return &UserHandler{Service: svc, Logger: logger}
}

// Profile returns the caller's own account, whichever kind it is. The
// gate already stripped the password hash.
func (h *UserHandler) Profile(c echo.Context) error {
	account, ok := middleware.AccountFromContext(c)
	if !ok {
		return writeError(c, http.StatusNotFound, errors.New("user not found or not authenticated"))
	}
	return c.JSON(http.StatusOK, dto.AccountResponse(account))
}

// PublicLawyer serves the unauthenticated lawyer profile page. A
// malformed id reads the same as a miss.
func (h *UserHandler) PublicLawyer(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return writeError(c, http.StatusNotFound, errors.New("lawyer not found (invalid id format)"))
	}
	lawyer, err := h.Service.PublicLawyer(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, h.Logger, err)
	}
	return c.JSON(http.StatusOK, dto.PublicLawyerResponseFromEntity(lawyer))
}

func (h *UserHandler) VerifyLawyer(c echo.Context) error {
	actor, ok := middleware.AccountFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return writeError(c, http.StatusNotFound, errors.New("lawyer not found (invalid id format)"))
	}
	lawyer, err := h.Service.VerifyLawyer(c.Request().Context(), id, actor.Ref())
	if err != nil {
		return writeServiceError(c, h.Logger, err)
	}
	return c.JSON(http.StatusOK, dto.LawyerResponseFromEntity(lawyer))
}

func (h *UserHandler) ListUsers(c echo.Context) error {
	limit, offset := parseLimitOffset(c)
	users, err := h.Service.ListUsers(c.Request().Context(), limit, offset)
	if err != nil {
		return writeServiceError(c, h.Logger, err)
	}
	return c.JSON(http.StatusOK, dto.UserResponsesFromEntities(users))
}

func (h *UserHandler) ListLawyers(c echo.Context) error {
	limit, offset := parseLimitOffset(c)
	lawyers, err := h.Service.ListLawyers(c.Request().Context(), limit, offset)
	if err != nil {
		return writeServiceError(c, h.Logger, err)
	}
	return c.JSON(http.StatusOK, dto.LawyerResponsesFromEntities(lawyers))
}

func parseLimitOffset(c echo.Context) (int, int) {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))
	return limit, offset
}
