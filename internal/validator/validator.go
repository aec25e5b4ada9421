package validator

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"shopapp/internal/usecase"

	"github.com/shopspring/decimal"
)

// 価格の上限
var maxPrice = decimal.NewFromInt(100_000_000)

// 簡易メール形式をチェック
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// 会員登録の入力を検証する。フィールドごとのエラーメッセージを返す
func ValidateRegister(req usecase.RegisterRequest) []string {
	var errs []string

	phone := strings.TrimSpace(req.PhoneNumber)
	if phone == "" {
		errs = append(errs, "phone number is required")
	} else if len(phone) < 5 || len(phone) > 20 {
		errs = append(errs, "phone number must be between 5 and 20 characters")
	}

	hasSocial := req.FacebookAccountID != "" || req.GoogleAccountID != ""
	if !hasSocial {
		if req.Password == "" {
			errs = append(errs, "password is required")
		} else if len(req.Password) < 6 {
			errs = append(errs, "password must be at least 6 characters")
		}
		if req.Password != req.RetypePassword {
			errs = append(errs, "retype password does not match")
		}
	}

	if len(req.FullName) > 100 {
		errs = append(errs, "full name must be at most 100 characters")
	}
	if len(req.Address) > 200 {
		errs = append(errs, "address must be at most 200 characters")
	}
	if req.RoleID < 1 {
		errs = append(errs, "role id must be greater than 0")
	}
	if req.DateOfBirth != nil && req.DateOfBirth.After(time.Now()) {
		errs = append(errs, "date of birth cannot be in the future")
	}

	return errs
}

// ログインの入力を検証する
func ValidateLogin(req usecase.LoginRequest) []string {
	var errs []string

	if strings.TrimSpace(req.PhoneNumber) == "" {
		errs = append(errs, "phone number is required")
	}
	if req.Password == "" {
		errs = append(errs, "password is required")
	}

	return errs
}

// カテゴリの入力を検証する
func ValidateCategory(req usecase.CategoryRequest) []string {
	var errs []string

	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, "category name is required")
	}

	return errs
}

// 商品の入力を検証する
func ValidateProduct(req usecase.ProductRequest) []string {
	var errs []string

	name := strings.TrimSpace(req.Name)
	if name == "" {
		errs = append(errs, "product name is required")
	} else if len(name) < 3 || len(name) > 200 {
		errs = append(errs, "product name must be between 3 and 200 characters")
	}

	if req.Price.IsNegative() {
		errs = append(errs, "price must be greater than or equal to 0")
	} else if req.Price.GreaterThan(maxPrice) {
		errs = append(errs, fmt.Sprintf("price must be at most %s", maxPrice.String()))
	}

	if req.CategoryID < 1 {
		errs = append(errs, "category id must be greater than 0")
	}

	return errs
}

// 注文の入力を検証する
func ValidateOrder(req usecase.OrderRequest) []string {
	var errs []string

	if req.UserID < 1 {
		errs = append(errs, "user id must be greater than 0")
	}

	phone := strings.TrimSpace(req.PhoneNumber)
	if phone == "" {
		errs = append(errs, "phone number is required")
	} else if len(phone) < 5 || len(phone) > 20 {
		errs = append(errs, "phone number must be between 5 and 20 characters")
	}

	if req.Email != "" && !emailRe.MatchString(req.Email) {
		errs = append(errs, "email is invalid")
	}
	if req.TotalMoney.IsNegative() {
		errs = append(errs, "total money must be greater than or equal to 0")
	}

	return errs
}

// 注文明細の入力を検証する
func ValidateOrderDetail(req usecase.OrderDetailRequest) []string {
	var errs []string

	if req.OrderID < 1 {
		errs = append(errs, "order id must be greater than 0")
	}
	if req.ProductID < 1 {
		errs = append(errs, "product id must be greater than 0")
	}
	if req.Price.IsNegative() {
		errs = append(errs, "price must be greater than or equal to 0")
	}
	if req.NumberOfProducts < 1 {
		errs = append(errs, "number of products must be greater than 0")
	}
	if req.TotalMoney.IsNegative() {
		errs = append(errs, "total money must be greater than or equal to 0")
	}

	return errs
}
