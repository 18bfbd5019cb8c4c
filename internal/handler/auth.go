package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-tracker/internal/config"
	"github.com/iliyamo/movie-tracker/internal/utils"
)

// AuthHandler implements the single-admin session endpoints.  There is no
// registration and no user table: the admin identity lives in configuration
// and the session is a signed JWT in an httpOnly cookie.
type AuthHandler struct {
	Cfg config.Config
}

func NewAuthHandler(cfg config.Config) *AuthHandler {
	return &AuthHandler{Cfg: cfg}
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login verifies the configured admin credentials and sets the session
// cookie.  Wrong email and wrong password respond identically.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}

	if !h.checkCredentials(req.Email, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	tok, err := utils.NewSessionToken(h.Cfg.SessionSecret, req.Email, h.Cfg.SessionTTLHours)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue session failed"})
	}

	c.SetCookie(&http.Cookie{
		Name:     utils.SessionCookieName,
		Value:    tok.Token,
		Path:     "/",
		Expires:  tok.Exp,
		HttpOnly: true,
		Secure:   h.Cfg.Env == "prod",
		SameSite: http.SameSiteStrictMode,
	})
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

// Logout clears the session cookie.  It succeeds whether or not a session
// was present.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     utils.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.Cfg.Env == "prod",
		SameSite: http.SameSiteStrictMode,
	})
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

// Me reports whether the caller holds a valid admin session.  It always
// answers 200 so the UI can poll it without error handling.
func (h *AuthHandler) Me(c echo.Context) error {
	ck, err := c.Cookie(utils.SessionCookieName)
	if err != nil || ck.Value == "" {
		return c.JSON(http.StatusOK, echo.Map{"admin": false})
	}
	email, err := utils.ParseSessionToken(h.Cfg.SessionSecret, ck.Value)
	if err != nil {
		return c.JSON(http.StatusOK, echo.Map{"admin": false})
	}
	return c.JSON(http.StatusOK, echo.Map{"admin": true, "email": email})
}

// checkCredentials compares against the configured admin account.  When a
// bcrypt hash is configured it wins over the plain password.
func (h *AuthHandler) checkCredentials(email, password string) bool {
	if h.Cfg.AdminEmail == "" || email != h.Cfg.AdminEmail {
		return false
	}
	if h.Cfg.AdminPasswordHash != "" {
		return utils.VerifyPassword(h.Cfg.AdminPasswordHash, password)
	}
	return h.Cfg.AdminPassword != "" && utils.SecureCompare(password, h.Cfg.AdminPassword)
}
