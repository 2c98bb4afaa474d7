package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorWritesBareBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	NotFound(c, "Post not found")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.True(t, c.IsAborted())
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, map[string]interface{}{"error": "Post not found"}, body)
}

func TestCreatedAndMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	Created(c, gin.H{"id": 1})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":1}`, w.Body.String())

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	Message(c, "Post deleted successfully")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Post deleted successfully"}`, w.Body.String())
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("db down")
	err := WrapError(CodeInternal, "Internal server error", cause)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Internal server error: db down", err.Error())
	assert.Equal(t, "Post not found", WrapError(CodeNotFound, "Post not found", nil).Error())
}
