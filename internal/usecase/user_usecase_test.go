package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"shopapp/internal/domain/model"
	repo "shopapp/internal/repository"
	"shopapp/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func newUserUsecase() (*usecase.UserUsecase, *UserRepoMock, *RoleRepoMock, *TokenIssuerMock) {
	uRepo := new(UserRepoMock)
	rRepo := new(RoleRepoMock)
	tokens := new(TokenIssuerMock)
	return usecase.NewUserUsecase(uRepo, rRepo, tokens), uRepo, rRepo, tokens
}

func TestUserUsecase_Register_DuplicatePhone(t *testing.T) {
	uc, uRepo, _, _ := newUserUsecase()

	uRepo.On("ExistsByPhoneNumber", mock.Anything, "0901234567").Return(true, nil)

	_, err := uc.Register(context.Background(), usecase.RegisterRequest{
		PhoneNumber: "0901234567",
		Password:    "secret",
		RoleID:      1,
	})
	assertHTTPStatus(t, err, http.StatusConflict)
	assert.Contains(t, err.Error(), "phone number already exists")
}

func TestUserUsecase_Register_RoleNotFound(t *testing.T) {
	uc, uRepo, rRepo, _ := newUserUsecase()

	uRepo.On("ExistsByPhoneNumber", mock.Anything, "0901234567").Return(false, nil)
	rRepo.On("FindByID", mock.Anything, int64(9)).Return((*model.Role)(nil), repo.ErrNotFound)

	_, err := uc.Register(context.Background(), usecase.RegisterRequest{
		PhoneNumber: "0901234567",
		Password:    "secret",
		RoleID:      9,
	})
	assertHTTPStatus(t, err, http.StatusBadRequest)
	assert.Contains(t, err.Error(), "cannot find role with id: 9")
}

func TestUserUsecase_Register_HashesPassword(t *testing.T) {
	uc, uRepo, rRepo, _ := newUserUsecase()

	uRepo.On("ExistsByPhoneNumber", mock.Anything, "0901234567").Return(false, nil)
	rRepo.On("FindByID", mock.Anything, int64(1)).
		Return(&model.Role{ID: 1, Name: model.RoleUser}, nil)
	uRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		// 平文では保存しない
		return u.Password != "secret123" &&
			bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret123")) == nil
	})).Return(nil)

	user, err := uc.Register(context.Background(), usecase.RegisterRequest{
		FullName:       "Taro",
		PhoneNumber:    "0901234567",
		Password:       "secret123",
		RetypePassword: "secret123",
		RoleID:         1,
	})
	assert.NoError(t, err)
	assert.True(t, user.IsActive)
	assert.Equal(t, model.RoleUser, user.Role.Name)
}

func TestUserUsecase_Register_SocialAccountSkipsPassword(t *testing.T) {
	uc, uRepo, rRepo, _ := newUserUsecase()

	uRepo.On("ExistsByPhoneNumber", mock.Anything, "0901234567").Return(false, nil)
	rRepo.On("FindByID", mock.Anything, int64(1)).
		Return(&model.Role{ID: 1, Name: model.RoleUser}, nil)
	uRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.Password == "" && u.GoogleAccountID == "g-123"
	})).Return(nil)

	_, err := uc.Register(context.Background(), usecase.RegisterRequest{
		PhoneNumber:     "0901234567",
		GoogleAccountID: "g-123",
		RoleID:          1,
	})
	assert.NoError(t, err)
	uRepo.AssertExpectations(t)
}

func TestUserUsecase_Register_InsertRaceReturnsConflict(t *testing.T) {
	uc, uRepo, rRepo, _ := newUserUsecase()

	uRepo.On("ExistsByPhoneNumber", mock.Anything, "0901234567").Return(false, nil)
	rRepo.On("FindByID", mock.Anything, int64(1)).
		Return(&model.Role{ID: 1, Name: model.RoleUser}, nil)
	uRepo.On("Create", mock.Anything, mock.Anything).Return(repo.ErrDuplicatePhoneNumber)

	_, err := uc.Register(context.Background(), usecase.RegisterRequest{
		PhoneNumber: "0901234567",
		Password:    "secret",
		RoleID:      1,
	})
	assertHTTPStatus(t, err, http.StatusConflict)
}

func TestUserUsecase_Login_Success(t *testing.T) {
	uc, uRepo, _, tokens := newUserUsecase()

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	user := &model.User{ID: 1, PhoneNumber: "0901234567", Password: string(hashed)}
	uRepo.On("FindByPhoneNumber", mock.Anything, "0901234567").Return(user, nil)
	tokens.On("Issue", user).Return("jwt-token", nil)

	res, err := uc.Login(context.Background(), usecase.LoginRequest{
		PhoneNumber: "0901234567",
		Password:    "secret123",
	})
	assert.NoError(t, err)
	assert.Equal(t, "jwt-token", res.Token)
}

func TestUserUsecase_Login_UnknownPhone(t *testing.T) {
	uc, uRepo, _, _ := newUserUsecase()

	uRepo.On("FindByPhoneNumber", mock.Anything, "0000000000").
		Return((*model.User)(nil), repo.ErrNotFound)

	_, err := uc.Login(context.Background(), usecase.LoginRequest{
		PhoneNumber: "0000000000",
		Password:    "secret123",
	})
	// 電話番号の存在は漏らさない
	assertHTTPStatus(t, err, http.StatusUnauthorized)
	assert.Contains(t, err.Error(), "invalid phone number or password")
}

func TestUserUsecase_Login_WrongPassword(t *testing.T) {
	uc, uRepo, _, _ := newUserUsecase()

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	uRepo.On("FindByPhoneNumber", mock.Anything, "0901234567").
		Return(&model.User{ID: 1, PhoneNumber: "0901234567", Password: string(hashed)}, nil)

	_, err = uc.Login(context.Background(), usecase.LoginRequest{
		PhoneNumber: "0901234567",
		Password:    "wrong",
	})
	assertHTTPStatus(t, err, http.StatusUnauthorized)
}

func TestUserUsecase_Login_SocialAccountSkipsPasswordCheck(t *testing.T) {
	uc, uRepo, _, tokens := newUserUsecase()

	user := &model.User{ID: 2, PhoneNumber: "0901234567", FacebookAccountID: "fb-1"}
	uRepo.On("FindByPhoneNumber", mock.Anything, "0901234567").Return(user, nil)
	tokens.On("Issue", user).Return("jwt-token", nil)

	res, err := uc.Login(context.Background(), usecase.LoginRequest{
		PhoneNumber: "0901234567",
	})
	assert.NoError(t, err)
	assert.Equal(t, "jwt-token", res.Token)
}
