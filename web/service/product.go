package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopdesk/shopdesk/database"
	"github.com/shopdesk/shopdesk/database/model"
	"github.com/shopdesk/shopdesk/web/entity"
)

// ProductService stores products.
type ProductService struct{}

func (s *ProductService) GetAll(ctx context.Context) ([]*model.Product, error) {
	products := make([]*model.Product, 0)
	if err := listAll(ctx, &products); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (s *ProductService) Get(ctx context.Context, id int) (*model.Product, error) {
	product := &model.Product{}
	if err := getById(ctx, product, id); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Add(ctx context.Context, form *entity.ProductForm) (int, error) {
	product, err := s.parse(form)
	if err != nil {
		return 0, err
	}
	if err := database.GetDB().WithContext(ctx).Create(product).Error; err != nil {
		return 0, fmt.Errorf("insert product: %w", err)
	}
	return product.Id, nil
}

func (s *ProductService) Update(ctx context.Context, id int, form *entity.ProductForm) error {
	product, err := s.parse(form)
	if err != nil {
		return err
	}
	return updateById(ctx, &model.Product{}, id, map[string]any{
		"name":  product.Name,
		"price": product.Price,
	})
}

func (s *ProductService) Delete(ctx context.Context, id int) error {
	return deleteById(ctx, &model.Product{}, id)
}

// parse requires a name and a price that parses as a non-negative number.
func (s *ProductService) parse(form *entity.ProductForm) (*model.Product, error) {
	product := &model.Product{Name: strings.TrimSpace(form.Name)}
	if product.Name == "" {
		return nil, &ValidationError{Field: "nome", Key: msgRequired}
	}
	price, err := parseFloat("preco", form.Price)
	if err != nil {
		return nil, err
	}
	product.Price = price
	if err := validateStruct(product); err != nil {
		return nil, err
	}
	return product, nil
}
