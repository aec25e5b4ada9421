package handler

import (
	"net/http"

	"shopapp/internal/usecase"
	"shopapp/internal/validator"

	"github.com/labstack/echo/v4"
)

// /order_details のAPI
type OrderDetailHandler struct {
	uc *usecase.OrderDetailUsecase
}

// DI
func NewOrderDetailHandler(uc *usecase.OrderDetailUsecase) *OrderDetailHandler {
	return &OrderDetailHandler{uc: uc}
}

func (h *OrderDetailHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/order_details", h.create)
	g.GET("/order_details/:id", h.detail)
	g.GET("/order_details/order/:order_id", h.listByOrder)
	g.PUT("/order_details/:id", h.update)
	g.DELETE("/order_details/:id", h.delete)
}

func (h *OrderDetailHandler) create(c echo.Context) error {
	var req usecase.OrderDetailRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	if errs := validator.ValidateOrderDetail(req); len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, ValidationErrorResponse{Errors: errs})
	}

	detail, err := h.uc.CreateOrderDetail(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, detail)
}

func (h *OrderDetailHandler) detail(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	detail, err := h.uc.GetOrderDetailByID(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, detail)
}

func (h *OrderDetailHandler) listByOrder(c echo.Context) error {
	orderID, err := paramID(c, "order_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid order id"})
	}

	details, err := h.uc.ListOrderDetailsByOrderID(c.Request().Context(), orderID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, details)
}

func (h *OrderDetailHandler) update(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req usecase.OrderDetailRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	if errs := validator.ValidateOrderDetail(req); len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, ValidationErrorResponse{Errors: errs})
	}

	detail, err := h.uc.UpdateOrderDetail(c.Request().Context(), id, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, detail)
}

func (h *OrderDetailHandler) delete(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.DeleteOrderDetail(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "order detail deleted successfully"})
}
