package service

import (
	"testing"

	"github.com/shopdesk/shopdesk/web/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerService(t *testing.T) {
	ctx := setup(t)
	service := CustomerService{}

	id, err := service.Add(ctx, &entity.CustomerForm{Name: "Ann", Email: "a@x.com"})
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	customer, err := service.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Ann", customer.Name)
	assert.Equal(t, "a@x.com", customer.Email)

	_, err = service.Add(ctx, &entity.CustomerForm{Name: "Bob", Email: "a@x.com"})
	require.NoError(t, err, "emails are not unique")

	customers, err := service.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 2)
	assert.Equal(t, "Ann", customers[0].Name)
	assert.Equal(t, "Bob", customers[1].Name)

	err = service.Update(ctx, id, &entity.CustomerForm{Name: "Ann Lee", Email: "ann@x.com"})
	require.NoError(t, err)
	customer, err = service.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Ann Lee", customer.Name)
	assert.Equal(t, "ann@x.com", customer.Email)

	require.NoError(t, service.Delete(ctx, id))
	_, err = service.Get(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCustomerUpdateUnchangedValues(t *testing.T) {
	ctx := setup(t)
	service := CustomerService{}

	form := &entity.CustomerForm{Name: "Ann", Email: "a@x.com"}
	id, err := service.Add(ctx, form)
	require.NoError(t, err)
	assert.NoError(t, service.Update(ctx, id, form))
}

func TestCustomerDeleteIsIdempotent(t *testing.T) {
	ctx := setup(t)
	service := CustomerService{}

	for _, id := range []int{1, 42, -1} {
		require.NoError(t, service.Delete(ctx, id))
		require.NoError(t, service.Delete(ctx, id))
		_, err := service.Get(ctx, id)
		assert.ErrorIs(t, err, ErrNotFound)
	}
}

func TestCustomerUpdateMissing(t *testing.T) {
	ctx := setup(t)
	service := CustomerService{}

	_, err := service.Add(ctx, &entity.CustomerForm{Name: "Ann", Email: "a@x.com"})
	require.NoError(t, err)

	err = service.Update(ctx, 99, &entity.CustomerForm{Name: "Ghost", Email: "g@x.com"})
	assert.ErrorIs(t, err, ErrNotFound)

	customers, err := service.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "Ann", customers[0].Name)
}

func TestCustomerValidation(t *testing.T) {
	ctx := setup(t)
	service := CustomerService{}

	tests := []struct {
		name  string
		form  entity.CustomerForm
		field string
	}{
		{"missing name", entity.CustomerForm{Email: "a@x.com"}, "nome"},
		{"blank name", entity.CustomerForm{Name: "   ", Email: "a@x.com"}, "nome"},
		{"missing email", entity.CustomerForm{Name: "Ann"}, "email"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Add(ctx, &tt.form)
			verr, ok := AsValidationError(err)
			require.True(t, ok, "expected validation error, got %v", err)
			assert.Equal(t, tt.field, verr.Field)
			assert.Equal(t, msgRequired, verr.Key)
		})
	}

	customers, err := service.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, customers)
}
