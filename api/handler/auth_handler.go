package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"time"

	"legalconnect/internal/dto"
	"legalconnect/internal/service"
	"legalconnect/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

const stateCookieName = "oauth_state"

type AuthHandler struct {
	Service       *service.AuthService
	OAuth         *service.OAuthService
	Google        service.GoogleProvider
	Validate      *validator.Validate
	Logger        logrus.FieldLogger
	FrontendURL   string
	SecureCookies bool
}

func NewAuthHandler(
	svc *service.AuthService,
	oauth *service.OAuthService,
	google service.GoogleProvider,
	validate *validator.Validate,
	logger logrus.FieldLogger,
	frontendURL string,
) *AuthHandler {
	return &AuthHandler{
		Service:       svc,
		OAuth:         oauth,
		Google:        google,
		Validate:      validate,
		Logger:        logger,
		FrontendURL:   frontendURL,
		SecureCookies: true,
	}
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.validate(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	input := service.RegisterInput{
		Role:              req.Role,
		FullName:          req.FullName,
		Email:             req.Email,
		Password:          req.Password,
		PhoneNumber:       req.PhoneNumber,
		State:             req.State,
		PreferredLanguage: req.PreferredLanguage,
		Specialization:    req.Specialization,
		BarCouncilID:      req.BarCouncilID,
		ExperienceYears:   req.ExperienceYears,
		StateOfPractice:   req.StateOfPractice,
		Language:          req.Language,
		Bio:               req.Bio,
		IPAddress:         stringPtr(c.RealIP()),
	}
	result, err := h.Service.Register(c.Request().Context(), input)
	if err != nil {
		return h.writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, dto.AuthResponseFromResult(result))
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.validate(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	input := service.LoginInput{
		Email:     req.Email,
		Password:  req.Password,
		IPAddress: stringPtr(c.RealIP()),
	}
	result, err := h.Service.Login(c.Request().Context(), input)
	if err != nil {
		return h.writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.AuthResponseFromResult(result))
}

// GoogleStart redirects to the provider's consent screen with a state
// nonce pinned to a short-lived cookie.
func (h *AuthHandler) GoogleStart(c echo.Context) error {
	state, err := utils.GenerateRandomToken(24)
	if err != nil {
		return h.writeServiceError(c, err)
	}
	c.SetCookie(&http.Cookie{
		Name:     stateCookieName,
		Value:    utils.HashToken(state),
		Path:     "/auth/google",
		MaxAge:   int((10 * time.Minute).Seconds()),
		HttpOnly: true,
		Secure:   h.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	return c.Redirect(http.StatusFound, h.Google.AuthCodeURL(state))
}

// GoogleCallback runs the bridge: verify state, exchange the code, map
// the profile onto an existing account, then hand the continuation to
// CompleteOAuth and redirect to the front end. Failures never surface as
// API errors; they redirect to the front-end error route.
func (h *AuthHandler) GoogleCallback(c echo.Context) error {
	state := c.QueryParam("state")
	cookie, err := c.Cookie(stateCookieName)
	if err != nil || state == "" || cookie.Value != utils.HashToken(state) {
		return h.redirectError(c, "invalid_state", "oauth state mismatch")
	}
	h.clearStateCookie(c)

	if errParam := c.QueryParam("error"); errParam != "" {
		return h.redirectError(c, "oauth_failed", errParam)
	}
	code := c.QueryParam("code")
	if code == "" {
		return h.redirectError(c, "oauth_failed", "missing authorization code")
	}

	profile, err := h.Google.FetchProfile(c.Request().Context(), code)
	if err != nil {
		h.Logger.WithError(err).Error("google code exchange failed")
		return h.redirectError(c, "oauth_failed", "could not verify google account")
	}

	account, err := h.OAuth.ResolveProfile(c.Request().Context(), profile)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrGoogleEmailNotRegistered):
			return h.redirectError(c, "not_registered", err.Error())
		case errors.Is(err, service.ErrGoogleEmailMissing):
			return h.redirectError(c, "oauth_failed", err.Error())
		default:
			h.Logger.WithError(err).Error("google profile resolution failed")
			return h.redirectError(c, "server_error", "server error during google sign-in")
		}
	}

	continuation, err := h.OAuth.BeginContinuation(account)
	if err != nil {
		h.Logger.WithError(err).Error("oauth continuation issue failed")
		return h.redirectError(c, "server_error", "server error during google sign-in")
	}
	result, err := h.OAuth.CompleteOAuth(c.Request().Context(), continuation)
	if err != nil {
		h.Logger.WithError(err).Error("oauth completion failed")
		return h.redirectError(c, "server_error", "server error during google sign-in")
	}

	query := url.Values{}
	query.Set("token", result.Token)
	query.Set("id", result.ID)
	query.Set("name", result.FullName)
	query.Set("email", result.Email)
	query.Set("role", string(result.Role))
	return c.Redirect(http.StatusFound, h.FrontendURL+"/auth/google/success?"+query.Encode())
}

func (h *AuthHandler) redirectError(c echo.Context, code string, message string) error {
	query := url.Values{}
	query.Set("code", code)
	query.Set("message", message)
	return c.Redirect(http.StatusFound, h.FrontendURL+"/auth/google/error?"+query.Encode())
}

func (h *AuthHandler) clearStateCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     stateCookieName,
		Value:    "",
		Path:     "/auth/google",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) validate(payload any) error {
	if h.Validate == nil {
		return nil
	}
	return h.Validate.Struct(payload)
}

func (h *AuthHandler) writeServiceError(c echo.Context, err error) error {
	return writeServiceError(c, h.Logger, err)
}

func decodeJSON(c echo.Context, target any) error {
	decoder := json.NewDecoder(c.Request().Body)
	return decoder.Decode(target)
}

func writeError(c echo.Context, status int, err error) error {
	return c.JSON(status, map[string]string{"message": err.Error()})
}

// writeServiceError maps resolver errors onto the HTTP taxonomy.
// Unrecognized errors become an opaque 500; the detail is logged only.
func writeServiceError(c echo.Context, logger logrus.FieldLogger, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrInvalidRole),
		errors.Is(err, service.ErrMissingUserFields),
		errors.Is(err, service.ErrMissingLawyerFields),
		errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrBarCouncilIDTaken):
		return writeError(c, http.StatusBadRequest, err)
	case errors.Is(err, service.ErrInvalidCredentials):
		return writeError(c, http.StatusUnauthorized, err)
	case errors.Is(err, service.ErrLawyerNotFound),
		errors.Is(err, service.ErrAccountNotFound):
		return writeError(c, http.StatusNotFound, err)
	default:
		if logger != nil {
			logger.WithError(err).Error("unexpected service error")
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Server error. Please try again later."})
	}
}

func stringPtr(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
