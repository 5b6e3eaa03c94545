package service

import (
	"context"

	"github.com/shopdesk/shopdesk/database"
)

// getById loads the row with the given id into dest.
func getById(ctx context.Context, dest any, id int) error {
	err := database.GetDB().WithContext(ctx).First(dest, id).Error
	if database.IsNotFound(err) {
		return ErrNotFound
	}
	return err
}

// listAll loads every row of dest's table in id order.
func listAll(ctx context.Context, dest any) error {
	return database.GetDB().WithContext(ctx).Order("id").Find(dest).Error
}

// updateById overwrites values on the row with the given id. SQLite counts
// matched rows, so zero affected rows means the id does not exist.
func updateById(ctx context.Context, m any, id int, values map[string]any) error {
	result := database.GetDB().WithContext(ctx).
		Model(m).
		Where("id = ?", id).
		Updates(values)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// deleteById removes the row with the given id. A missing row is not an error.
func deleteById(ctx context.Context, m any, id int) error {
	return database.GetDB().WithContext(ctx).Delete(m, id).Error
}
