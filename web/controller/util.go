package controller

import (
	"errors"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/shopdesk/shopdesk/config"
	"github.com/shopdesk/shopdesk/logger"
	"github.com/shopdesk/shopdesk/web/locale"
	"github.com/shopdesk/shopdesk/web/service"
	"github.com/shopdesk/shopdesk/web/session"

	"github.com/gin-gonic/gin"
)

// getRemoteIp extracts the real IP address from the request headers or remote address.
func getRemoteIp(c *gin.Context) string {
	value := c.GetHeader("X-Real-IP")
	if value != "" {
		return value
	}
	value = c.GetHeader("X-Forwarded-For")
	if value != "" {
		ips := strings.Split(value, ",")
		return strings.TrimSpace(ips[0])
	}
	addr := c.Request.RemoteAddr
	ip, _, _ := net.SplitHostPort(addr)
	return ip
}

// html renders the template name with status. The localizer, the number
// printer, the logged-in user and the translated title are added to data.
func html(c *gin.Context, status int, name string, title string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["loc"] = locale.FromContext(c)
	data["printer"] = locale.PrinterFromContext(c)
	data["title"] = I18nWeb(c, title)
	data["request_uri"] = c.Request.RequestURI
	if user := session.GetLoginUser(c); user != nil {
		data["user"] = user
	}
	c.HTML(status, name, getContext(data))
}

// getContext adds version and other context data to the provided gin.H.
func getContext(h gin.H) gin.H {
	a := gin.H{
		"app_name": config.GetName(),
		"cur_ver":  config.GetVersion(),
	}
	for key, value := range h {
		a[key] = value
	}
	return a
}

// validationMessage translates a validation error, naming the field by its
// translated label.
func validationMessage(c *gin.Context, verr *service.ValidationError) string {
	field := I18nWeb(c, "formFields."+verr.Field)
	return I18nWeb(c, verr.Key, "Field=="+field, "Max=="+verr.Param)
}

// renderError renders not-found and internal errors. Internal errors are
// logged and shown as a generic page.
func renderError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrNotFound) {
		html(c, http.StatusNotFound, "error.html", "errors.title", gin.H{
			"error": I18nWeb(c, "errors.notFound"),
		})
		return
	}
	logger.Errorf("%s %s failed [request %s]: %v", c.Request.Method, c.Request.URL.Path, c.GetString("request_id"), err)
	html(c, http.StatusInternalServerError, "error.html", "errors.title", gin.H{
		"error": I18nWeb(c, "errors.internal"),
	})
}

// bindForm binds the request form into obj. The forms hold only strings, so
// binding fails only on an unreadable body, which is answered with 400.
func bindForm(c *gin.Context, obj any) bool {
	if err := c.ShouldBind(obj); err != nil {
		logger.Warningf("%s %s bad form [request %s]: %v", c.Request.Method, c.Request.URL.Path, c.GetString("request_id"), err)
		html(c, http.StatusBadRequest, "error.html", "errors.title", gin.H{
			"error": I18nWeb(c, "errors.badRequest"),
		})
		return false
	}
	return true
}

// paramId parses the :id path parameter. A malformed id is reported as not
// found.
func paramId(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		renderError(c, service.ErrNotFound)
		return 0, false
	}
	return id, true
}
