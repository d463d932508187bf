package errors

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWritesProblemJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/buyers/7", nil)

	Respond(c, NewNotFoundProblem("Buyer", int64(7)))

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, ContentTypeProblemJSON, recorder.Header().Get("Content-Type"))

	var problem ProblemDetail
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &problem))
	assert.Equal(t, TypeNotFound, problem.Type)
	assert.Equal(t, "Buyer with identifier '7' not found", problem.Detail)
	assert.Equal(t, "/buyers/7", problem.Instance)
	assert.Equal(t, "Buyer", problem.Extensions["resourceType"])
}

func TestRespondKeepsExplicitInstance(t *testing.T) {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodPost, "/purchase", nil)

	problem := ErrValidation.WithDetail("quantity must be positive")
	problem.Instance = "/purchase/attempts/42"
	Respond(c, problem)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "/purchase/attempts/42")
}

func TestProblemDetailError(t *testing.T) {
	assert.Equal(t, "Validation Error: quantity must be positive",
		ErrValidation.WithDetail("quantity must be positive").Error())
	assert.Equal(t, "Internal Server Error", ErrInternal.Error())
}
