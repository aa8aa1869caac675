package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"bookcatalog-backend/internal/domains/book"
	"bookcatalog-backend/internal/shared/response"
)

type BookHandler struct {
	service book.Service
}

func NewBookHandler(svc book.Service) *BookHandler {
	return &BookHandler{service: svc}
}

// Create - POST /books
func (h *BookHandler) Create(c *gin.Context) {
	var req book.CreateBookRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.UnprocessableEntity(c, err.Error())
		return
	}

	b, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		var fieldErrs validation.Errors
		switch {
		case errors.As(err, &fieldErrs):
			response.UnprocessableEntity(c, fieldErrs)
		case errors.Is(err, book.ErrAuthorNotExist):
			response.BadRequest(c, "Author does not exist")
		default:
			response.InternalServerError(c)
		}
		return
	}

	c.JSON(http.StatusOK, b.ToResponse())
}

// GetAll - GET /books
func (h *BookHandler) GetAll(c *gin.Context) {
	books, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.InternalServerError(c)
		return
	}

	responses := make([]book.BookResponse, len(books))
	for i, b := range books {
		responses[i] = *b.ToResponse()
	}

	c.JSON(http.StatusOK, responses)
}

// GetByID - GET /books/:id
func (h *BookHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.UnprocessableEntity(c, "book_id must be a valid UUID")
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, book.ErrBookNotFound) {
			response.NotFound(c, "Book not found")
		} else {
			response.InternalServerError(c)
		}
		return
	}

	c.JSON(http.StatusOK, b.ToResponse())
}

// Delete - DELETE /books/:id
func (h *BookHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.UnprocessableEntity(c, "book_id must be a valid UUID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, book.ErrBookNotFound) {
			response.NotFound(c, "Book not found")
		} else {
			response.InternalServerError(c)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
