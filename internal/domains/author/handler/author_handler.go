package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"bookcatalog-backend/internal/domains/author"
	"bookcatalog-backend/internal/shared/response"
)

type AuthorHandler struct {
	service author.Service
}

func NewAuthorHandler(svc author.Service) *AuthorHandler {
	return &AuthorHandler{service: svc}
}

// Create - POST /authors
func (h *AuthorHandler) Create(c *gin.Context) {
	var req author.CreateAuthorRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.UnprocessableEntity(c, err.Error())
		return
	}

	a, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		var fieldErrs validation.Errors
		if errors.As(err, &fieldErrs) {
			response.UnprocessableEntity(c, fieldErrs)
			return
		}
		response.InternalServerError(c)
		return
	}

	c.JSON(http.StatusOK, a.ToResponse())
}

// GetAll - GET /authors
func (h *AuthorHandler) GetAll(c *gin.Context) {
	authors, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.InternalServerError(c)
		return
	}

	responses := make([]author.AuthorResponse, len(authors))
	for i, a := range authors {
		responses[i] = *a.ToResponse()
	}

	c.JSON(http.StatusOK, responses)
}
