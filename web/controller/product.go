package controller

import (
	"net/http"

	"github.com/shopdesk/shopdesk/web/entity"
	"github.com/shopdesk/shopdesk/web/service"

	"github.com/gin-gonic/gin"
)

// ProductController serves the product pages under /produtos.
type ProductController struct {
	productService service.ProductService
}

func NewProductController(g *gin.RouterGroup) *ProductController {
	a := &ProductController{}
	a.initRouter(g)
	return a
}

func (a *ProductController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/produtos")

	g.GET("", a.list)
	g.GET("/add", a.addForm)
	g.POST("/add", a.add)
	g.GET("/edit/:id", a.editForm)
	g.POST("/edit/:id", a.edit)
	g.GET("/delete/:id", a.delete)
	g.POST("/delete/:id", a.delete)
}

func (a *ProductController) list(c *gin.Context) {
	products, err := a.productService.GetAll(c.Request.Context())
	if err != nil {
		renderError(c, err)
		return
	}
	html(c, http.StatusOK, "produtos.html", "pages.products.title", gin.H{
		"products": products,
	})
}

func (a *ProductController) addForm(c *gin.Context) {
	a.renderForm(c, http.StatusOK, "/produtos/add", "pages.products.new", entity.ProductForm{}, "")
}

func (a *ProductController) add(c *gin.Context) {
	var form entity.ProductForm
	if !bindForm(c, &form) {
		return
	}
	if _, err := a.productService.Add(c.Request.Context(), &form); err != nil {
		a.handleFormError(c, "/produtos/add", "pages.products.new", form, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/produtos")
}

func (a *ProductController) editForm(c *gin.Context) {
	id, ok := paramId(c)
	if !ok {
		return
	}
	product, err := a.productService.Get(c.Request.Context(), id)
	if err != nil {
		renderError(c, err)
		return
	}
	form := entity.NewProductForm(product.Name, product.Price)
	a.renderForm(c, http.StatusOK, editPath("/produtos", id), "pages.products.edit", form, "")
}

func (a *ProductController) edit(c *gin.Context) {
	id, ok := paramId(c)
	if !ok {
		return
	}
	var form entity.ProductForm
	if !bindForm(c, &form) {
		return
	}
	if err := a.productService.Update(c.Request.Context(), id, &form); err != nil {
		a.handleFormError(c, editPath("/produtos", id), "pages.products.edit", form, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/produtos")
}

func (a *ProductController) delete(c *gin.Context) {
	id, ok := paramId(c)
	if !ok {
		return
	}
	if err := a.productService.Delete(c.Request.Context(), id); err != nil {
		renderError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/produtos")
}

func (a *ProductController) handleFormError(c *gin.Context, action string, title string, form entity.ProductForm, err error) {
	if verr, ok := service.AsValidationError(err); ok {
		a.renderForm(c, http.StatusBadRequest, action, title, form, validationMessage(c, verr))
		return
	}
	renderError(c, err)
}

func (a *ProductController) renderForm(c *gin.Context, status int, action string, title string, form entity.ProductForm, msg string) {
	html(c, status, "produto_form.html", title, gin.H{
		"action": action,
		"form":   form,
		"error":  msg,
	})
}
