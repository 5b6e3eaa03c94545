// Package session keeps the logged-in identity in a signed session cookie.
package session

import (
	"encoding/gob"
	"net/http"

	"github.com/shopdesk/shopdesk/database/model"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	// CookieName is the name of the session cookie.
	CookieName = "shopdesk"
	loginUser  = "LOGIN_USER"
)

// Identity is what the cookie carries about the logged-in account. It never
// includes the password hash.
type Identity struct {
	Id       int
	Username string
}

func init() {
	gob.Register(Identity{})
}

// Options returns the cookie options for a session lasting maxAge seconds.
// Zero keeps the cookie until the browser closes; a negative value deletes it.
func Options(maxAge int, secure bool) sessions.Options {
	return sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		Secure:   secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// SetLoginUser stores user as the session identity in a cookie lasting
// maxAge seconds.
func SetLoginUser(c *gin.Context, user *model.Account, maxAge int) error {
	s := sessions.Default(c)
	s.Options(Options(maxAge, c.Request.TLS != nil))
	s.Set(loginUser, Identity{Id: user.Id, Username: user.Username})
	return s.Save()
}

// GetLoginUser returns the identity carried by the request's verified
// session cookie, or nil.
func GetLoginUser(c *gin.Context) *Identity {
	s := sessions.Default(c)
	if obj := s.Get(loginUser); obj != nil {
		if user, ok := obj.(Identity); ok {
			return &user
		}
	}
	return nil
}

func IsLogin(c *gin.Context) bool {
	return GetLoginUser(c) != nil
}

// ClearSession drops the identity and expires the cookie.
func ClearSession(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	s.Options(Options(-1, c.Request.TLS != nil))
	return s.Save()
}
