package repository

import (
	"context"
	"errors"

	"shopapp/internal/domain/model"
)

// 参照先が存在しないときの統一エラー
var ErrNotFound = errors.New("not found")

// 電話番号の一意制約違反
var ErrDuplicatePhoneNumber = errors.New("phone number already exists")

// ユーザーの保存・取得を約束
type UserRepository interface {
	// 新規ユーザー作成（電話番号重複は ErrDuplicatePhoneNumber）
	Create(ctx context.Context, user *model.User) error
	// IDからユーザーを1件取得する（Role付き）
	FindByID(ctx context.Context, id int64) (*model.User, error)
	// 電話番号からユーザーを1件取得する（Role付き）
	FindByPhoneNumber(ctx context.Context, phoneNumber string) (*model.User, error)
	// 電話番号が登録済みかどうか
	ExistsByPhoneNumber(ctx context.Context, phoneNumber string) (bool, error)
}

// ロールの取得・初期投入を約束
type RoleRepository interface {
	FindByID(ctx context.Context, id int64) (*model.Role, error)
	// 無ければ作る（起動時のシード用）
	EnsureExists(ctx context.Context, name string) error
}
