package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stemsi/heritage-admin/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestIDIsEchoed(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) { Success(c, http.StatusOK, "ok") })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))

	var body Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "abc-123", body.Metadata.RequestID)
	assert.Equal(t, "ok", body.Data)
}

func TestFailWithFields(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.POST("/", func(c *gin.Context) {
		FailWithFields(c, http.StatusUnprocessableEntity, ErrValidation, map[string]string{"name": "required"})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", nil))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var body Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, ErrValidation, body.Error.Code)
	assert.Equal(t, GetMessage(ErrValidation), body.Error.Message)
	assert.Equal(t, "required", body.Error.Fields["name"])
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(model.ListFilter{Page: 2, PerPage: 10}, 21)
	assert.Equal(t, &Pagination{Page: 2, PerPage: 10, TotalItems: 21, TotalPages: 3}, p)
}

func TestPageCarriesPagination(t *testing.T) {
	r := gin.New()
	r.GET("/", func(c *gin.Context) {
		Page(c, []string{"Sandung Raden"}, model.ListFilter{Page: 3, PerPage: 10}, 21)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var body Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Nil(t, body.Error)
	assert.Equal(t, &Pagination{Page: 3, PerPage: 10, TotalItems: 21, TotalPages: 3}, body.Pagination)
	assert.NotEmpty(t, body.Metadata.RequestID)
}
