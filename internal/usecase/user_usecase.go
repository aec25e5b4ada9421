package usecase

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"shopapp/internal/domain/model"
	repo "shopapp/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// トークン発行の約束。実装はtokenパッケージ
type TokenIssuer interface {
	Issue(user *model.User) (string, error)
}

type UserUsecase struct {
	userRepo repo.UserRepository
	roleRepo repo.RoleRepository
	tokens   TokenIssuer
}

// DI
func NewUserUsecase(userRepo repo.UserRepository, roleRepo repo.RoleRepository, tokens TokenIssuer) *UserUsecase {
	return &UserUsecase{
		userRepo: userRepo,
		roleRepo: roleRepo,
		tokens:   tokens,
	}
}

// POST /users/register の入力DTO
type RegisterRequest struct {
	FullName          string     `json:"full_name"`
	PhoneNumber       string     `json:"phone_number"`
	Address           string     `json:"address"`
	Password          string     `json:"password"`
	RetypePassword    string     `json:"retype_password"`
	DateOfBirth       *time.Time `json:"date_of_birth"`
	FacebookAccountID string     `json:"facebook_account_id"`
	GoogleAccountID   string     `json:"google_account_id"`
	RoleID            int64      `json:"role_id"`
}

// POST /users/login の入力DTO
type LoginRequest struct {
	PhoneNumber string `json:"phone_number"`
	Password    string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

func (r RegisterRequest) hasSocialAccount() bool {
	return r.FacebookAccountID != "" || r.GoogleAccountID != ""
}

func (u *UserUsecase) Register(ctx context.Context, req RegisterRequest) (*model.User, error) {
	// 電話番号の重複チェック
	exists, err := u.userRepo.ExistsByPhoneNumber(ctx, req.PhoneNumber)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if exists {
		return nil, NewHTTPError(http.StatusConflict, "phone number already exists")
	}

	// ロールの存在確認
	role, err := u.roleRepo.FindByID(ctx, req.RoleID)
	if err != nil {
		if err == repo.ErrNotFound {
			return nil, NewHTTPError(http.StatusBadRequest,
				fmt.Sprintf("cannot find role with id: %d", req.RoleID))
		}
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	// SNS連携ならパスワードは空で保存する
	password := ""
	if !req.hasSocialAccount() {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
		}
		password = string(hashed)
	}

	user := &model.User{
		FullName:          req.FullName,
		PhoneNumber:       req.PhoneNumber,
		Address:           req.Address,
		Password:          password,
		IsActive:          true,
		DateOfBirth:       req.DateOfBirth,
		FacebookAccountID: req.FacebookAccountID,
		GoogleAccountID:   req.GoogleAccountID,
		RoleID:            role.ID,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		// INSERT時点の一意制約違反も同じ409で返す
		if err == repo.ErrDuplicatePhoneNumber {
			return nil, NewHTTPError(http.StatusConflict, "phone number already exists")
		}
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	user.Role = *role

	return user, nil
}

func (u *UserUsecase) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	user, err := u.userRepo.FindByPhoneNumber(ctx, req.PhoneNumber)
	if err != nil {
		if err == repo.ErrNotFound {
			return LoginResponse{}, NewHTTPError(http.StatusUnauthorized, "invalid phone number or password")
		}
		return LoginResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	// SNS連携アカウントはパスワード照合をスキップする
	if !user.HasSocialAccount() {
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
			return LoginResponse{}, NewHTTPError(http.StatusUnauthorized, "invalid phone number or password")
		}
	}

	tok, err := u.tokens.Issue(user)
	if err != nil {
		return LoginResponse{}, NewHTTPError(http.StatusInternalServerError, "cannot generate token")
	}

	return LoginResponse{Token: tok}, nil
}
