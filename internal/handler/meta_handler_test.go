package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"genaizone/internal/config"
	"genaizone/internal/handler"
)

func TestModelHandler_List(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/models", http.NoBody)

	handler.NewModelHandler().List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	models := decodeResponse(t, w).Data.([]interface{})
	require.Len(t, models, 2)
	assert.Equal(t, map[string]interface{}{"id": "gpt-4o", "name": "GPT-4o"}, models[0])
	assert.Equal(t, map[string]interface{}{"id": "gpt-4o-mini", "name": "GPT-4o Mini"}, models[1])
}

func TestHealthHandler_Liveness(t *testing.T) {
	for _, tt := range []struct {
		connect bool
		label   string
	}{{true, "Posit Connect"}, {false, "Development"}} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request, _ = http.NewRequest(http.MethodGet, "/healthz", http.NoBody)

		handler.NewHealthHandler(&config.ServerConfig{IsConnect: tt.connect, Environment: "test"}).Liveness(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var body map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "ok", body["status"])
		assert.Equal(t, tt.label, body["deployment"])
	}
}
