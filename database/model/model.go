// Package model defines the rows stored by shopdesk.
package model

// Account is an administrative login. The password is only ever stored as a
// bcrypt hash.
type Account struct {
	Id           int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Username     string `json:"username" gorm:"not null"`
	PasswordHash string `json:"-" gorm:"column:password_hash;not null"`
}

type Customer struct {
	Id    int    `json:"id" form:"id" gorm:"primaryKey;autoIncrement"`
	Name  string `json:"name" form:"nome" gorm:"not null" validate:"required"`
	Email string `json:"email" form:"email" gorm:"not null" validate:"required"`
}

type Product struct {
	Id    int     `json:"id" form:"id" gorm:"primaryKey;autoIncrement"`
	Name  string  `json:"name" form:"nome" gorm:"not null" validate:"required"`
	Price float64 `json:"price" form:"preco" gorm:"not null" validate:"gte=0,lte=1000000000"`
}

// CartItem links a customer to a product. The references are not enforced by
// the store: rows may outlive the customer or product they point at.
type CartItem struct {
	Id         int `json:"id" form:"id" gorm:"primaryKey;autoIncrement"`
	CustomerId int `json:"customerId" form:"cliente" gorm:"column:customer_id" validate:"gt=0"`
	ProductId  int `json:"productId" form:"produto" gorm:"column:product_id" validate:"gt=0"`
	Quantity   int `json:"quantity" form:"quantidade" gorm:"not null" validate:"gt=0,lte=1000000"`
}

// CartLine is a cart item joined with its customer and product.
type CartLine struct {
	Id           int     `json:"id"`
	CustomerName string  `json:"customerName"`
	ProductName  string  `json:"productName"`
	Price        float64 `json:"price"`
	Quantity     int     `json:"quantity"`
}

func (l CartLine) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}
