package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopdesk/shopdesk/database"
	"github.com/shopdesk/shopdesk/database/model"
	"github.com/shopdesk/shopdesk/web/entity"
)

// CustomerService stores customers.
type CustomerService struct{}

func (s *CustomerService) GetAll(ctx context.Context) ([]*model.Customer, error) {
	customers := make([]*model.Customer, 0)
	if err := listAll(ctx, &customers); err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return customers, nil
}

func (s *CustomerService) Get(ctx context.Context, id int) (*model.Customer, error) {
	customer := &model.Customer{}
	if err := getById(ctx, customer, id); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) Add(ctx context.Context, form *entity.CustomerForm) (int, error) {
	customer, err := s.parse(form)
	if err != nil {
		return 0, err
	}
	if err := database.GetDB().WithContext(ctx).Create(customer).Error; err != nil {
		return 0, fmt.Errorf("insert customer: %w", err)
	}
	return customer.Id, nil
}

func (s *CustomerService) Update(ctx context.Context, id int, form *entity.CustomerForm) error {
	customer, err := s.parse(form)
	if err != nil {
		return err
	}
	return updateById(ctx, &model.Customer{}, id, map[string]any{
		"name":  customer.Name,
		"email": customer.Email,
	})
}

func (s *CustomerService) Delete(ctx context.Context, id int) error {
	return deleteById(ctx, &model.Customer{}, id)
}

func (s *CustomerService) parse(form *entity.CustomerForm) (*model.Customer, error) {
	customer := &model.Customer{
		Name:  strings.TrimSpace(form.Name),
		Email: strings.TrimSpace(form.Email),
	}
	if err := validateStruct(customer); err != nil {
		return nil, err
	}
	return customer, nil
}
