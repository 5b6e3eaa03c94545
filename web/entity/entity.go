// Package entity defines the form payloads bound from HTTP requests.
// Numeric fields arrive as raw strings and are parsed by the service layer.
package entity

import "strconv"

// LoginForm represents the login request.
type LoginForm struct {
	Username string `form:"usuario"`
	Password string `form:"senha"`
}

type CustomerForm struct {
	Name  string `form:"nome"`
	Email string `form:"email"`
}

type ProductForm struct {
	Name  string `form:"nome"`
	Price string `form:"preco"`
}

// CartItemForm carries the ids of the selected customer and product.
type CartItemForm struct {
	CustomerId string `form:"cliente"`
	ProductId  string `form:"produto"`
	Quantity   string `form:"quantidade"`
}

// NewProductForm fills a form from stored values, for the edit page.
func NewProductForm(name string, price float64) ProductForm {
	return ProductForm{
		Name:  name,
		Price: strconv.FormatFloat(price, 'f', -1, 64),
	}
}
