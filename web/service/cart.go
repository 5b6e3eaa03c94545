package service

import (
	"context"
	"fmt"

	"github.com/shopdesk/shopdesk/database"
	"github.com/shopdesk/shopdesk/database/model"
	"github.com/shopdesk/shopdesk/web/entity"
)

// CartService stores cart items. Customer and product ids are trusted as
// submitted; their existence is not checked.
type CartService struct{}

func (s *CartService) GetAll(ctx context.Context) ([]*model.CartItem, error) {
	items := make([]*model.CartItem, 0)
	if err := listAll(ctx, &items); err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}
	return items, nil
}

// GetAllWithJoins returns every cart item with its customer name and product
// name and price. Items whose customer or product no longer exists are left
// out by the inner join.
func (s *CartService) GetAllWithJoins(ctx context.Context) ([]*model.CartLine, error) {
	lines := make([]*model.CartLine, 0)
	err := database.GetDB().WithContext(ctx).
		Table("cart_items AS c").
		Select("c.id AS id, cli.name AS customer_name, p.name AS product_name, p.price AS price, c.quantity AS quantity").
		Joins("JOIN customers cli ON c.customer_id = cli.id").
		Joins("JOIN products p ON c.product_id = p.id").
		Order("c.id").
		Scan(&lines).
		Error
	if err != nil {
		return nil, fmt.Errorf("list cart lines: %w", err)
	}
	return lines, nil
}

func (s *CartService) Get(ctx context.Context, id int) (*model.CartItem, error) {
	item := &model.CartItem{}
	if err := getById(ctx, item, id); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *CartService) Add(ctx context.Context, form *entity.CartItemForm) (int, error) {
	item, err := s.parse(form)
	if err != nil {
		return 0, err
	}
	if err := database.GetDB().WithContext(ctx).Create(item).Error; err != nil {
		return 0, fmt.Errorf("insert cart item: %w", err)
	}
	return item.Id, nil
}

func (s *CartService) Update(ctx context.Context, id int, form *entity.CartItemForm) error {
	item, err := s.parse(form)
	if err != nil {
		return err
	}
	return updateById(ctx, &model.CartItem{}, id, map[string]any{
		"customer_id": item.CustomerId,
		"product_id":  item.ProductId,
		"quantity":    item.Quantity,
	})
}

func (s *CartService) Delete(ctx context.Context, id int) error {
	return deleteById(ctx, &model.CartItem{}, id)
}

func (s *CartService) parse(form *entity.CartItemForm) (*model.CartItem, error) {
	customerId, err := parseInt("cliente", form.CustomerId)
	if err != nil {
		return nil, err
	}
	productId, err := parseInt("produto", form.ProductId)
	if err != nil {
		return nil, err
	}
	quantity, err := parseInt("quantidade", form.Quantity)
	if err != nil {
		return nil, err
	}
	item := &model.CartItem{
		CustomerId: customerId,
		ProductId:  productId,
		Quantity:   quantity,
	}
	if err := validateStruct(item); err != nil {
		return nil, err
	}
	return item, nil
}
