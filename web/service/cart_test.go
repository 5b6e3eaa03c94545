package service

import (
	"strconv"
	"testing"

	"github.com/shopdesk/shopdesk/web/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartJoinScenario(t *testing.T) {
	ctx := setup(t)
	products := ProductService{}
	customers := CustomerService{}
	cart := CartService{}

	productId, err := products.Add(ctx, &entity.ProductForm{Name: "Widget", Price: "9.99"})
	require.NoError(t, err)
	assert.Equal(t, 1, productId)

	customerId, err := customers.Add(ctx, &entity.CustomerForm{Name: "Ann", Email: "a@x.com"})
	require.NoError(t, err)
	assert.Equal(t, 1, customerId)

	_, err = cart.Add(ctx, &entity.CartItemForm{CustomerId: "1", ProductId: "1", Quantity: "3"})
	require.NoError(t, err)

	lines, err := cart.GetAllWithJoins(ctx)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "Ann", lines[0].CustomerName)
	assert.Equal(t, "Widget", lines[0].ProductName)
	assert.InDelta(t, 9.99, lines[0].Price, 1e-9)
	assert.Equal(t, 3, lines[0].Quantity)
	assert.InDelta(t, 29.97, lines[0].Subtotal(), 1e-9)

	require.NoError(t, products.Delete(ctx, productId))

	lines, err = cart.GetAllWithJoins(ctx)
	require.NoError(t, err)
	assert.Empty(t, lines)

	items, err := cart.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 1, "the dangling item itself is kept")
}

func TestCartItemReferencingDeletedCustomer(t *testing.T) {
	ctx := setup(t)
	products := ProductService{}
	customers := CustomerService{}
	cart := CartService{}

	productId, err := products.Add(ctx, &entity.ProductForm{Name: "Widget", Price: "1"})
	require.NoError(t, err)
	annId, err := customers.Add(ctx, &entity.CustomerForm{Name: "Ann", Email: "a@x.com"})
	require.NoError(t, err)
	bobId, err := customers.Add(ctx, &entity.CustomerForm{Name: "Bob", Email: "b@x.com"})
	require.NoError(t, err)
	require.NoError(t, customers.Delete(ctx, annId))

	_, err = cart.Add(ctx, &entity.CartItemForm{CustomerId: strconv.Itoa(annId), ProductId: strconv.Itoa(productId), Quantity: "2"})
	require.NoError(t, err)
	_, err = cart.Add(ctx, &entity.CartItemForm{CustomerId: strconv.Itoa(bobId), ProductId: strconv.Itoa(productId), Quantity: "1"})
	require.NoError(t, err)

	lines, err := cart.GetAllWithJoins(ctx)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "Bob", lines[0].CustomerName)
}

func TestCartService(t *testing.T) {
	ctx := setup(t)
	cart := CartService{}

	id, err := cart.Add(ctx, &entity.CartItemForm{CustomerId: "5", ProductId: "6", Quantity: "2"})
	require.NoError(t, err)

	item, err := cart.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 5, item.CustomerId)
	assert.Equal(t, 6, item.ProductId)
	assert.Equal(t, 2, item.Quantity)

	require.NoError(t, cart.Update(ctx, id, &entity.CartItemForm{CustomerId: "5", ProductId: "6", Quantity: "4"}))
	item, err = cart.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 4, item.Quantity)

	assert.ErrorIs(t, cart.Update(ctx, id+1, &entity.CartItemForm{CustomerId: "1", ProductId: "1", Quantity: "1"}), ErrNotFound)

	require.NoError(t, cart.Delete(ctx, id))
	require.NoError(t, cart.Delete(ctx, id))
	_, err = cart.Get(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCartValidation(t *testing.T) {
	ctx := setup(t)
	cart := CartService{}

	tests := []struct {
		name  string
		form  entity.CartItemForm
		field string
		key   string
	}{
		{"negative quantity", entity.CartItemForm{CustomerId: "1", ProductId: "1", Quantity: "-1"}, "quantidade", msgPositive},
		{"quantity above limit", entity.CartItemForm{CustomerId: "1", ProductId: "1", Quantity: "1000001"}, "quantidade", msgMax},
		{"zero quantity", entity.CartItemForm{CustomerId: "1", ProductId: "1", Quantity: "0"}, "quantidade", msgPositive},
		{"non numeric quantity", entity.CartItemForm{CustomerId: "1", ProductId: "1", Quantity: "abc"}, "quantidade", msgInteger},
		{"fractional quantity", entity.CartItemForm{CustomerId: "1", ProductId: "1", Quantity: "1.5"}, "quantidade", msgInteger},
		{"missing quantity", entity.CartItemForm{CustomerId: "1", ProductId: "1"}, "quantidade", msgRequired},
		{"missing customer", entity.CartItemForm{ProductId: "1", Quantity: "1"}, "cliente", msgRequired},
		{"bad product", entity.CartItemForm{CustomerId: "1", ProductId: "x", Quantity: "1"}, "produto", msgInteger},
		{"zero product", entity.CartItemForm{CustomerId: "1", ProductId: "0", Quantity: "1"}, "produto", msgPositive},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cart.Add(ctx, &tt.form)
			verr, ok := AsValidationError(err)
			require.True(t, ok, "expected validation error, got %v", err)
			assert.Equal(t, tt.field, verr.Field)
			assert.Equal(t, tt.key, verr.Key)
		})
	}

	items, err := cart.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}
