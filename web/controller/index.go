package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/shopdesk/shopdesk/logger"
	"github.com/shopdesk/shopdesk/web/entity"
	"github.com/shopdesk/shopdesk/web/service"
	"github.com/shopdesk/shopdesk/web/session"

	"github.com/gin-gonic/gin"
)

// IndexController handles login, logout and the landing page.
type IndexController struct {
	BaseController

	userService   service.UserService
	sessionMaxAge int
}

// NewIndexController creates an IndexController and registers its routes.
// sessionMaxAge is the session cookie lifetime in seconds.
func NewIndexController(g *gin.RouterGroup, sessionMaxAge int) *IndexController {
	a := &IndexController{sessionMaxAge: sessionMaxAge}
	a.initRouter(g)
	return a
}

func (a *IndexController) initRouter(g *gin.RouterGroup) {
	g.GET("/", a.index)
	g.POST("/", a.login)
	g.GET("/logout", a.logout)

	g.GET("/home", a.checkLogin, a.home)
}

// index shows the login page, or sends logged-in users to the landing page.
func (a *IndexController) index(c *gin.Context) {
	if session.IsLogin(c) {
		c.Redirect(http.StatusSeeOther, "/home")
		return
	}
	html(c, http.StatusOK, "login.html", "pages.login.title", nil)
}

func (a *IndexController) login(c *gin.Context) {
	var form entity.LoginForm
	if err := c.ShouldBind(&form); err != nil || strings.TrimSpace(form.Username) == "" || form.Password == "" {
		a.loginFailed(c, form, "pages.login.emptyForm")
		return
	}

	user, err := a.userService.CheckUser(c.Request.Context(), form.Username, form.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		logger.Warningf("wrong login for user %q, IP: %s", form.Username, getRemoteIp(c))
		a.loginFailed(c, form, "pages.login.invalid")
		return
	} else if err != nil {
		renderError(c, err)
		return
	}

	if err := session.SetLoginUser(c, user, a.sessionMaxAge); err != nil {
		renderError(c, err)
		return
	}
	logger.Infof("%s logged in successfully, IP: %s", user.Username, getRemoteIp(c))
	c.Redirect(http.StatusSeeOther, "/home")
}

// loginFailed re-renders the login page keeping the submitted username.
func (a *IndexController) loginFailed(c *gin.Context, form entity.LoginForm, msg string) {
	html(c, http.StatusUnauthorized, "login.html", "pages.login.title", gin.H{
		"error":    I18nWeb(c, msg),
		"username": form.Username,
	})
}

func (a *IndexController) logout(c *gin.Context) {
	if user := session.GetLoginUser(c); user != nil {
		logger.Infof("%s logged out successfully", user.Username)
	}
	if err := session.ClearSession(c); err != nil {
		logger.Warning("Unable to save session after clearing:", err)
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (a *IndexController) home(c *gin.Context) {
	html(c, http.StatusOK, "home.html", "pages.home.title", nil)
}
