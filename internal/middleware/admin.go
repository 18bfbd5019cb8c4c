package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/movie-tracker/internal/utils"
)

// AdminOnly returns an Echo middleware that validates the session cookie
// and injects the admin's email into the request context under
// "admin_email".  The session is a signed JWT, so validation is stateless;
// no lookup against a session store happens here.  Wrap the list write
// routes with this so handlers can assume an authenticated admin.
func AdminOnly(secret string) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            ck, err := c.Cookie(utils.SessionCookieName)
            if err != nil || ck.Value == "" {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
            }
            email, err := utils.ParseSessionToken(secret, ck.Value)
            if err != nil {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid session"})
            }
            c.Set("admin_email", email)
            return next(c)
        }
    }
}
