package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"schoolhub/internal/dto"
	"schoolhub/internal/entity"
	"schoolhub/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "access-token"

type AccountHandler struct {
	Service          *service.AccountService
	Validate         *validator.Validate
	CookieDomain     string
	SecureCookies    bool
	SessionCookieTTL time.Duration
}

func NewAccountHandler(svc *service.AccountService, validate *validator.Validate) *AccountHandler {
	return &AccountHandler{
		Service:          svc,
		Validate:         validate,
		SecureCookies:    true,
		SessionCookieTTL: 7 * 24 * time.Hour,
	}
}

func (h *AccountHandler) Signup(c echo.Context) error {
	var req dto.SignupRequest
	if err := decodeJSON(c, &req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest)
	}
	if err := h.validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest)
	}
	input := service.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Role:      entity.AccountRole(req.Role),
	}
	account, err := h.Service.Register(c.Request().Context(), input)
	if err != nil {
		return writeServiceError(c, err)
	}
	return respond(c, http.StatusOK, "account created, please verify your email", dto.AccountResponseFromEntity(account))
}

func (h *AccountHandler) Signin(c echo.Context) error {
	var req dto.SigninRequest
	if err := decodeJSON(c, &req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest)
	}
	if err := h.validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest)
	}
	input := service.CredentialsInput{
		Email:     req.Email,
		Password:  req.Password,
		IPAddress: stringPtr(c.RealIP()),
	}
	result, err := h.Service.Authenticate(c.Request().Context(), input)
	if err != nil {
		return writeServiceError(c, err)
	}
	if result.VerificationSent {
		return respond(c, http.StatusOK, "verification code sent", nil)
	}
	h.setSessionCookie(c, result.SessionToken)
	return respond(c, http.StatusOK, "signed in", echo.Map{"accessToken": result.SessionToken})
}

func (h *AccountHandler) Verify(c echo.Context) error {
	var req dto.VerifyRequest
	if err := decodeJSON(c, &req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest)
	}
	if err := h.validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest)
	}
	if err := h.Service.VerifyOTP(c.Request().Context(), req.Email, req.OTP); err != nil {
		return writeServiceError(c, err)
	}
	return respond(c, http.StatusOK, "account verified", nil)
}

func (h *AccountHandler) Update(c echo.Context) error {
	token := h.readSessionCookie(c)
	if token == "" {
		return echo.NewHTTPError(http.StatusUnauthorized)
	}
	var req dto.UpdateProfileRequest
	if err := decodeJSON(c, &req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest)
	}
	if err := h.validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest)
	}
	dateOfBirth, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil || dateOfBirth.After(time.Now()) {
		return echo.NewHTTPError(http.StatusBadRequest)
	}
	input := service.ProfileInput{
		Phone:        req.Phone,
		Address:      req.Address,
		DateOfBirth:  dateOfBirth,
		Gender:       entity.Gender(req.Gender),
		ProfileImage: req.ProfileImage,
	}
	account, err := h.Service.UpdateProfile(c.Request().Context(), token, input)
	if err != nil {
		return writeServiceError(c, err)
	}
	return respond(c, http.StatusOK, "profile updated", dto.AccountResponseFromEntity(account))
}

func (h *AccountHandler) Logout(c echo.Context) error {
	token := h.readSessionCookie(c)
	if token == "" {
		return echo.NewHTTPError(http.StatusBadRequest)
	}
	if err := h.Service.Logout(c.Request().Context(), token, stringPtr(c.RealIP())); err != nil {
		return writeServiceError(c, err)
	}
	h.clearSessionCookie(c)
	return respond(c, http.StatusOK, "signed out", nil)
}

func (h *AccountHandler) validate(payload any) error {
	if h.Validate == nil {
		return nil
	}
	return h.Validate.Struct(payload)
}

// The cookie is cross-site capable: SameSite=None with Secure, per the
// front-end contract.
func (h *AccountHandler) setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Domain:   h.CookieDomain,
		MaxAge:   int(h.SessionCookieTTL.Seconds()),
		Expires:  time.Now().Add(h.SessionCookieTTL),
		HttpOnly: true,
		Secure:   h.SecureCookies,
		SameSite: http.SameSiteNoneMode,
	})
}

func (h *AccountHandler) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		Domain:   h.CookieDomain,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.SecureCookies,
		SameSite: http.SameSiteNoneMode,
	})
}

func (h *AccountHandler) readSessionCookie(c echo.Context) string {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func decodeJSON(c echo.Context, target any) error {
	decoder := json.NewDecoder(c.Request().Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(target)
}

func respond(c echo.Context, status int, message string, data any) error {
	return c.JSON(status, dto.Envelope{Message: message, Data: data})
}

// writeServiceError maps expected failures to their status; anything else
// surfaces as a bare 500 through the centralized error handler.
func writeServiceError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrAccountExists):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrAccountNotFound), errors.Is(err, service.ErrClassNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidOTP),
		errors.Is(err, service.ErrInvalidToken):
		status = http.StatusUnauthorized
	case errors.Is(err, service.ErrOTPExpired):
		status = http.StatusGone
	case errors.Is(err, service.ErrRoleMismatch):
		status = http.StatusUnprocessableEntity
	}
	return echo.NewHTTPError(status)
}

func stringPtr(value string) *string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return &value
}
