package handler

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	sessionName   = "blog_session"
	sessionMaxAge = 24 * 60 * 60
)

// rememberLogin records the last authenticated username in the cookie session.
// The token stays the only credential; routes without the session
// middleware simply skip this.
func rememberLogin(c echo.Context, username string) {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return
	}
	sess.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	sess.Values["username"] = username
	_ = sess.Save(c.Request(), c.Response())
}
