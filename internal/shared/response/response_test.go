package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func performOn(fn func(c *gin.Context)) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	fn(c)
	return w
}

func TestErrorShape(t *testing.T) {
	w := performOn(func(c *gin.Context) {
		NotFound(c, "Book not found")
	})

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail":"Book not found"}`, w.Body.String())
}

func TestUnprocessableEntityCarriesFieldDetails(t *testing.T) {
	w := performOn(func(c *gin.Context) {
		UnprocessableEntity(c, map[string]string{"name": "name is required"})
	})

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.JSONEq(t, `{"detail":{"name":"name is required"}}`, w.Body.String())
}

func TestInternalServerErrorLeaksNothing(t *testing.T) {
	w := performOn(func(c *gin.Context) {
		InternalServerError(c)
	})

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"detail":"Internal server error"}`, w.Body.String())
}
