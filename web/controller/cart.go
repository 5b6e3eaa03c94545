package controller

import (
	"net/http"

	"github.com/shopdesk/shopdesk/web/entity"
	"github.com/shopdesk/shopdesk/web/service"

	"github.com/gin-gonic/gin"
)

// CartController serves the cart page under /carrinho.
type CartController struct {
	cartService     service.CartService
	customerService service.CustomerService
	productService  service.ProductService
}

func NewCartController(g *gin.RouterGroup) *CartController {
	a := &CartController{}
	a.initRouter(g)
	return a
}

func (a *CartController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/carrinho")

	g.GET("", a.list)
	g.POST("/add", a.add)
	g.GET("/delete/:id", a.delete)
	g.POST("/delete/:id", a.delete)
}

func (a *CartController) list(c *gin.Context) {
	a.render(c, http.StatusOK, entity.CartItemForm{}, "")
}

func (a *CartController) add(c *gin.Context) {
	var form entity.CartItemForm
	if !bindForm(c, &form) {
		return
	}
	if _, err := a.cartService.Add(c.Request.Context(), &form); err != nil {
		if verr, ok := service.AsValidationError(err); ok {
			a.render(c, http.StatusBadRequest, form, validationMessage(c, verr))
			return
		}
		renderError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/carrinho")
}

func (a *CartController) delete(c *gin.Context) {
	id, ok := paramId(c)
	if !ok {
		return
	}
	if err := a.cartService.Delete(c.Request.Context(), id); err != nil {
		renderError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/carrinho")
}

// render shows the joined cart listing together with the add form and its
// customer and product choices.
func (a *CartController) render(c *gin.Context, status int, form entity.CartItemForm, msg string) {
	ctx := c.Request.Context()
	lines, err := a.cartService.GetAllWithJoins(ctx)
	if err != nil {
		renderError(c, err)
		return
	}
	customers, err := a.customerService.GetAll(ctx)
	if err != nil {
		renderError(c, err)
		return
	}
	products, err := a.productService.GetAll(ctx)
	if err != nil {
		renderError(c, err)
		return
	}

	var total float64
	for _, line := range lines {
		total += line.Subtotal()
	}

	html(c, status, "carrinho.html", "pages.cart.title", gin.H{
		"lines":     lines,
		"customers": customers,
		"products":  products,
		"total":     total,
		"form":      form,
		"error":     msg,
	})
}
