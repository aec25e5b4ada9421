package repository

import (
	"context"
	"errors"
	"strings"

	"shopapp/internal/domain/model"
	repo "shopapp/internal/repository"

	"gorm.io/gorm"
)

type UserGormRepository struct {
	db *gorm.DB
}

// DI
func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

// 新規ユーザー作成
func (r *UserGormRepository) Create(ctx context.Context, user *model.User) error {
	err := r.db.WithContext(ctx).Create(user).Error
	if err != nil && isUniqueViolation(err) {
		return repo.ErrDuplicatePhoneNumber
	}
	return err
}

// IDでユーザーを取得（Role付き）
func (r *UserGormRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).Preload("Role").First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repo.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// 電話番号でユーザーを取得（Role付き）
func (r *UserGormRepository) FindByPhoneNumber(ctx context.Context, phoneNumber string) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).Preload("Role").
		Where("phone_number = ?", phoneNumber).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repo.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// 電話番号の登録済みチェック
func (r *UserGormRepository) ExistsByPhoneNumber(ctx context.Context, phoneNumber string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("phone_number = ?", phoneNumber).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Postgresの一意制約違反（SQLSTATE 23505）かどうか
func isUniqueViolation(err error) bool {
	return strings.Contains(err.Error(), "23505") ||
		strings.Contains(err.Error(), "duplicate key")
}

type RoleGormRepository struct {
	db *gorm.DB
}

// DI
func NewRoleGormRepository(db *gorm.DB) *RoleGormRepository {
	return &RoleGormRepository{db: db}
}

// IDでロールを取得
func (r *RoleGormRepository) FindByID(ctx context.Context, id int64) (*model.Role, error) {
	var role model.Role
	err := r.db.WithContext(ctx).First(&role, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repo.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// 無ければ作る（起動時シード）
func (r *RoleGormRepository) EnsureExists(ctx context.Context, name string) error {
	return r.db.WithContext(ctx).
		Where(model.Role{Name: name}).
		FirstOrCreate(&model.Role{}, model.Role{Name: name}).Error
}
