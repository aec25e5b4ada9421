package handler

import (
	"net/http"
	"strconv"
	"strings"

	"shopapp/internal/domain/model"
	"shopapp/internal/infra/storage"
	"shopapp/internal/usecase"
	"shopapp/internal/validator"

	"github.com/labstack/echo/v4"
)

// アップロードの1ファイル上限（10MB）
const maxUploadFileSize = 10 * 1024 * 1024

// /products のAPI
type ProductHandler struct {
	uc    *usecase.ProductUsecase
	store *storage.LocalStore
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase, store *storage.LocalStore) *ProductHandler {
	return &ProductHandler{uc: uc, store: store}
}

func (h *ProductHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/products", h.list)
	g.GET("/products/:id", h.detail)
	g.POST("/products", h.create)
	g.PUT("/products/:id", h.update)
	g.DELETE("/products/:id", h.delete)
	g.POST("/products/uploads/:product_id", h.uploadImages)
}

func (h *ProductHandler) list(c echo.Context) error {
	// page（0始まり、default 0）
	page := 0
	if v := c.QueryParam("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid page"})
		}
		page = p
	}

	// limit（default 10）
	limit := 10
	if v := c.QueryParam("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
		}
		limit = l
	}

	out, err := h.uc.ListProducts(c.Request().Context(), page, limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) detail(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	p, err := h.uc.GetProductByID(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) create(c echo.Context) error {
	var req usecase.ProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	if errs := validator.ValidateProduct(req); len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, ValidationErrorResponse{Errors: errs})
	}

	p, err := h.uc.CreateProduct(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *ProductHandler) update(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req usecase.ProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	if errs := validator.ValidateProduct(req); len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, ValidationErrorResponse{Errors: errs})
	}

	p, err := h.uc.UpdateProduct(c.Request().Context(), id, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) delete(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, MessageResponse{Message: "product deleted successfully"})
}

// multipart（フィールド名 files）で商品画像をまとめて登録する
func (h *ProductHandler) uploadImages(c echo.Context) error {
	productID, err := paramID(c, "product_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid product id"})
	}

	// 商品の存在を先に確認する
	if _, err := h.uc.GetProductByID(c.Request().Context(), productID); err != nil {
		return writeError(c, err)
	}

	form, err := c.MultipartForm()
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid multipart form"})
	}
	files := form.File["files"]

	if len(files) > model.MaxImagesPerProduct {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "you can only upload a maximum of 5 images",
		})
	}

	images := []model.ProductImage{}
	for _, fh := range files {
		// 空ファイルはスキップ
		if fh.Size == 0 {
			continue
		}
		if fh.Size > maxUploadFileSize {
			return c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{
				Error: "file size is too large, max file size is 10MB",
			})
		}
		if !strings.HasPrefix(fh.Header.Get("Content-Type"), "image/") {
			return c.JSON(http.StatusUnsupportedMediaType, ErrorResponse{
				Error: "only image files are supported",
			})
		}

		src, err := fh.Open()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
		}
		name, err := h.store.Save(fh.Filename, src)
		src.Close()
		if err != nil {
			if err == storage.ErrInvalidFilename {
				return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid filename"})
			}
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
		}

		img, err := h.uc.CreateProductImage(c.Request().Context(), productID, name)
		if err != nil {
			return writeError(c, err)
		}
		images = append(images, img)
	}

	return c.JSON(http.StatusOK, images)
}
