package controller

import (
	"net/http"
	"strconv"

	"github.com/shopdesk/shopdesk/web/entity"
	"github.com/shopdesk/shopdesk/web/service"

	"github.com/gin-gonic/gin"
)

// CustomerController serves the customer pages under /clientes.
type CustomerController struct {
	customerService service.CustomerService
}

func NewCustomerController(g *gin.RouterGroup) *CustomerController {
	a := &CustomerController{}
	a.initRouter(g)
	return a
}

func (a *CustomerController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/clientes")

	g.GET("", a.list)
	g.GET("/add", a.addForm)
	g.POST("/add", a.add)
	g.GET("/edit/:id", a.editForm)
	g.POST("/edit/:id", a.edit)
	g.GET("/delete/:id", a.delete)
	g.POST("/delete/:id", a.delete)
}

func (a *CustomerController) list(c *gin.Context) {
	customers, err := a.customerService.GetAll(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	html(c, http.StatusOK, "clientes.html", "pages.customers.title", gin.H{
		"customers": customers,
	})
}

func (a *CustomerController) addForm(c *gin.Context) {
	a.renderForm(c, http.StatusOK, "/clientes/add", "pages.customers.new", entity.CustomerForm{}, "")
}

func (a *CustomerController) add(c *gin.Context) {
	var form entity.CustomerForm
	if !bindForm(c, &form) {
		return
	}
	if _, err := a.customerService.Add(c.Request.Context(), &form); err != nil {
		a.handleFormError(c, "/clientes/add", "pages.customers.new", form, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/clientes")
}

func (a *CustomerController) editForm(c *gin.Context) {
	id, ok := paramId(c)
	if !ok {
		return
	}
	customer, err := a.customerService.Get(c.Request.Context(), id)
	if err != nil {
		renderError(c, err)
		return
	}
	form := entity.CustomerForm{Name: customer.Name, Email: customer.Email}
	a.renderForm(c, http.StatusOK, editPath("/clientes", id), "pages.customers.edit", form, "")
}

func (a *CustomerController) edit(c *gin.Context) {
	id, ok := paramId(c)
	if !ok {
		return
	}
	var form entity.CustomerForm
	if !bindForm(c, &form) {
		return
	}
	if err := a.customerService.Update(c.Request.Context(), id, &form); err != nil {
		a.handleFormError(c, editPath("/clientes", id), "pages.customers.edit", form, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/clientes")
}

func (a *CustomerController) delete(c *gin.Context) {
	id, ok := paramId(c)
	if !ok {
		return
	}
	if err := a.customerService.Delete(c.Request.Context(), id); err != nil {
		renderError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/clientes")
}

func (a *CustomerController) handleFormError(c *gin.Context, action string, title string, form entity.CustomerForm, err error) {
	if verr, ok := service.AsValidationError(err); ok {
		a.renderForm(c, http.StatusBadRequest, action, title, form, validationMessage(c, verr))
		return
	}
	renderError(c, err)
}

func (a *CustomerController) renderForm(c *gin.Context, status int, action string, title string, form entity.CustomerForm, msg string) {
	html(c, status, "cliente_form.html", title, gin.H{
		"action": action,
		"form":   form,
		"error":  msg,
	})
}

func editPath(base string, id int) string {
	return base + "/edit/" + strconv.Itoa(id)
}
