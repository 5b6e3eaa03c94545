package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopdesk/shopdesk/database"
	"github.com/shopdesk/shopdesk/database/model"
	"github.com/shopdesk/shopdesk/util/crypto"
	"github.com/shopdesk/shopdesk/util/random"
)

var (
	dummyHashOnce sync.Once
	dummyHash     string
)

// UserService verifies administrator credentials.
type UserService struct{}

func (s *UserService) GetFirstUser(ctx context.Context) (*model.Account, error) {
	user := &model.Account{}
	err := database.GetDB().WithContext(ctx).
		Model(model.Account{}).
		Order("id").
		First(user).
		Error
	if database.IsNotFound(err) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return user, nil
}

// CheckUser returns the account when password matches the stored hash of
// username. Unknown users and wrong passwords both yield
// ErrInvalidCredentials; other errors come from the store.
func (s *UserService) CheckUser(ctx context.Context, username string, password string) (*model.Account, error) {
	user := &model.Account{}
	err := database.GetDB().WithContext(ctx).
		Model(model.Account{}).
		Where("username = ?", username).
		First(user).
		Error
	if database.IsNotFound(err) {
		// Spend the same bcrypt work as for a known user.
		crypto.CheckPasswordHash(getDummyHash(), password)
		return nil, ErrInvalidCredentials
	} else if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	if !crypto.CheckPasswordHash(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func getDummyHash() string {
	dummyHashOnce.Do(func() {
		hash, err := crypto.HashPasswordAsBcrypt(random.Seq(16))
		if err == nil {
			dummyHash = hash
		}
	})
	return dummyHash
}
