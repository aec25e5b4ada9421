package handler

import (
	"net/http"

	"shopapp/internal/usecase"
	"shopapp/internal/validator"

	"github.com/labstack/echo/v4"
)

// /users の公開API
type UserHandler struct {
	uc *usecase.UserUsecase
}

// DI
func NewUserHandler(uc *usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/users/register", h.register)
	g.POST("/users/login", h.login)
}

func (h *UserHandler) register(c echo.Context) error {
	var req usecase.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	if errs := validator.ValidateRegister(req); len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, ValidationErrorResponse{Errors: errs})
	}

	user, err := h.uc.Register(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}

	// パスワードはjsonタグで落ちるのでそのまま返してよい
	return c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) login(c echo.Context) error {
	var req usecase.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	if errs := validator.ValidateLogin(req); len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, ValidationErrorResponse{Errors: errs})
	}

	out, err := h.uc.Login(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}
