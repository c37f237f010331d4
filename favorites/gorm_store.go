package favorites

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/wikimedia/favorites/db/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore persists favorite entries through gorm. The zero value is
// unusable; construct with NewGormStore.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(gdb *gorm.DB) (*GormStore, error) {
	if gdb == nil {
		return nil, fmt.Errorf("nil gorm db")
	}
	return &GormStore{DB: gdb}, nil
}

var conflictTriple = clause.OnConflict{
	Columns: []clause.Column{
		{Name: "fl_user"},
		{Name: "fl_namespace"},
		{Name: "fl_title"},
	},
	DoNothing: true,
}

func (s *GormStore) Add(ctx context.Context, userID int64, namespace int, key string) (bool, error) {
	key = strings.TrimSpace(key)
	if userID <= 0 || key == "" {
		return false, nil
	}
	row := models.FavoriteEntry{
		UserID:    userID,
		Namespace: namespace,
		Title:     key,
	}
	res := s.DB.WithContext(ctx).Clauses(conflictTriple).Create(&row)
	if res.Error != nil {
		return false, storeErr("add", res.Error)
	}
	return res.RowsAffected == 1, nil
}

func (s *GormStore) Remove(ctx context.Context, userID int64, namespace int, key string) (bool, error) {
	key = strings.TrimSpace(key)
	if userID <= 0 || key == "" {
		return false, nil
	}
	res := s.DB.WithContext(ctx).
		Where("fl_user = ? AND fl_namespace = ? AND fl_title = ?", userID, namespace, key).
		Delete(&models.FavoriteEntry{})
	if res.Error != nil {
		return false, storeErr("remove", res.Error)
	}
	return res.RowsAffected == 1, nil
}

func (s *GormStore) Exists(ctx context.Context, userID int64, namespace int, key string) (bool, error) {
	key = strings.TrimSpace(key)
	if userID <= 0 || key == "" {
		return false, nil
	}
	var row models.FavoriteEntry
	err := s.DB.WithContext(ctx).
		Where("fl_user = ? AND fl_namespace = ? AND fl_title = ?", userID, namespace, key).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, storeErr("exists", err)
	}
	return true, nil
}

func (s *GormStore) Count(ctx context.Context, userID int64) (int64, error) {
	if userID <= 0 {
		return 0, nil
	}
	var n int64
	err := s.DB.WithContext(ctx).
		Model(&models.FavoriteEntry{}).
		Where("fl_user = ?", userID).
		Count(&n).Error
	if err != nil {
		return 0, storeErr("count", err)
	}
	return n, nil
}

func (s *GormStore) ListAll(ctx context.Context, userID int64, opt ListOptions) ([]Entry, error) {
	if userID <= 0 {
		return nil, nil
	}

	type listedRow struct {
		Namespace  int
		Title      string
		PageID     *int64
		IsRedirect *bool
	}

	q := s.DB.WithContext(ctx).
		Table("favoritelist").
		Select("favoritelist.fl_namespace AS namespace, favoritelist.fl_title AS title, " +
			"page.page_id AS page_id, page.page_is_redirect AS is_redirect").
		Joins("LEFT JOIN page ON page.page_namespace = favoritelist.fl_namespace AND page.page_title = favoritelist.fl_title").
		Where("favoritelist.fl_user = ?", userID).
		Order("favoritelist.fl_namespace, favoritelist.fl_title")
	if opt.ExcludeTalk {
		q = q.Where("favoritelist.fl_namespace % 2 = 0")
	}

	var rows []listedRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, storeErr("list", err)
	}

	out := make([]Entry, 0, len(rows))
	for _, r := range rows {
		e := Entry{
			Namespace: r.Namespace,
			Key:       r.Title,
			Exists:    r.PageID != nil,
		}
		if r.IsRedirect != nil {
			e.Redirect = *r.IsRedirect
		}
		out = append(out, e)
	}
	return out, nil
}

func (s *GormStore) Clear(ctx context.Context, userID int64) (int64, error) {
	if userID <= 0 {
		return 0, nil
	}
	res := s.DB.WithContext(ctx).
		Where("fl_user = ?", userID).
		Delete(&models.FavoriteEntry{})
	if res.Error != nil {
		return 0, storeErr("clear", res.Error)
	}
	return res.RowsAffected, nil
}

func (s *GormStore) DeleteByPage(ctx context.Context, namespace int, key string) (int64, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return 0, nil
	}
	res := s.DB.WithContext(ctx).
		Where("fl_namespace = ? AND fl_title = ?", namespace, key).
		Delete(&models.FavoriteEntry{})
	if res.Error != nil {
		return 0, storeErr("delete by page", res.Error)
	}
	return res.RowsAffected, nil
}

func (s *GormStore) Rehome(ctx context.Context, oldNamespace int, oldKey string, newNamespace int, newKey string) (int64, error) {
	oldKey = strings.TrimSpace(oldKey)
	newKey = strings.TrimSpace(newKey)
	if oldKey == "" || newKey == "" {
		return 0, nil
	}

	var moved int64
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var userIDs []int64
		if err := tx.Model(&models.FavoriteEntry{}).
			Where("fl_namespace = ? AND fl_title = ?", oldNamespace, oldKey).
			Pluck("fl_user", &userIDs).Error; err != nil {
			return err
		}
		if len(userIDs) == 0 {
			return nil
		}

		rows := make([]models.FavoriteEntry, 0, len(userIDs))
		for _, uid := range userIDs {
			rows = append(rows, models.FavoriteEntry{
				UserID:    uid,
				Namespace: newNamespace,
				Title:     newKey,
			})
		}
		// Insert-ignore keeps the uniqueness invariant for users who
		// already favorited the destination page.
		if err := tx.Clauses(conflictTriple).Create(&rows).Error; err != nil {
			return err
		}

		res := tx.Where("fl_namespace = ? AND fl_title = ?", oldNamespace, oldKey).
			Delete(&models.FavoriteEntry{})
		if res.Error != nil {
			return res.Error
		}
		moved = res.RowsAffected
		return nil
	})
	if err != nil {
		return 0, storeErr("rehome", err)
	}
	return moved, nil
}
