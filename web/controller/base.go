// Package controller provides the HTTP handlers of the shopdesk panel: login,
// the landing page and the customer, product and cart pages.
package controller

import (
	"net/http"

	"github.com/shopdesk/shopdesk/web/locale"
	"github.com/shopdesk/shopdesk/web/session"

	"github.com/gin-gonic/gin"
)

// BaseController provides common functionality for all controllers, including authentication checks.
type BaseController struct{}

// checkLogin rejects requests without a logged-in session by redirecting them
// to the login page.
func (a *BaseController) checkLogin(c *gin.Context) {
	if !session.IsLogin(c) {
		c.Redirect(http.StatusSeeOther, "/")
		c.Abort()
	} else {
		c.Next()
	}
}

// I18nWeb translates key with the localizer chosen for this request.
func I18nWeb(c *gin.Context, name string, params ...string) string {
	return locale.I18n(locale.FromContext(c), name, params...)
}
