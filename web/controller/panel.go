package controller

import (
	"github.com/gin-gonic/gin"
)

// PanelController groups the pages that require a logged-in session.
type PanelController struct {
	BaseController

	customerController *CustomerController
	productController  *ProductController
	cartController     *CartController
}

func NewPanelController(g *gin.RouterGroup) *PanelController {
	a := &PanelController{}
	a.initRouter(g)
	return a
}

func (a *PanelController) initRouter(g *gin.RouterGroup) {
	g = g.Group("")
	g.Use(a.checkLogin)

	a.customerController = NewCustomerController(g)
	a.productController = NewProductController(g)
	a.cartController = NewCartController(g)
}
