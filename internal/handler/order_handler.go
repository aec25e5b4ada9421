package handler

import (
	"net/http"

	"shopapp/internal/usecase"
	"shopapp/internal/validator"

	"github.com/labstack/echo/v4"
)

// /orders のAPI
type OrderHandler struct {
	uc *usecase.OrderUsecase
}

// DI
func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

func (h *OrderHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/orders", h.create)
	g.GET("/orders/:order_id", h.detail)
	g.GET("/orders/user/:user_id", h.listByUser)
	g.PUT("/orders/:order_id", h.update)
	g.DELETE("/orders/:order_id", h.delete)
}

func (h *OrderHandler) create(c echo.Context) error {
	var req usecase.OrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	if errs := validator.ValidateOrder(req); len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, ValidationErrorResponse{Errors: errs})
	}

	order, err := h.uc.CreateOrder(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) detail(c echo.Context) error {
	id, err := paramID(c, "order_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid order id"})
	}

	order, err := h.uc.GetOrderByID(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) listByUser(c echo.Context) error {
	userID, err := paramID(c, "user_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user id"})
	}

	orders, err := h.uc.ListOrdersByUserID(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) update(c echo.Context) error {
	id, err := paramID(c, "order_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid order id"})
	}

	var req usecase.OrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	if errs := validator.ValidateOrder(req); len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, ValidationErrorResponse{Errors: errs})
	}

	order, err := h.uc.UpdateOrder(c.Request().Context(), id, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) delete(c echo.Context) error {
	id, err := paramID(c, "order_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid order id"})
	}

	if err := h.uc.DeleteOrder(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "order deleted successfully"})
}
