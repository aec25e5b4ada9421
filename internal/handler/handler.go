package handler

import (
	"net/http"
	"strconv"

	"shopapp/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// バリデーション失敗時のフィールドエラー一覧
type ValidationErrorResponse struct {
	Errors []string `json:"errors"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// usecaseのHTTPErrorをレスポンスへ変換する
func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// パスパラメータをint64で読む
func paramID(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}
