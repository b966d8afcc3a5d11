package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/bookie/pkg/errors"
)

func newTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// TestSuccess 测试成功响应格式
func TestSuccess(t *testing.T) {
	c, w := newTestContext()
	Success(c, gin.H{"id": 1})

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(0), body["code"])
	assert.Equal(t, "success", body["message"])
	assert.NotNil(t, body["data"])
}

// TestError 测试业务错误响应
func TestError(t *testing.T) {
	c, w := newTestContext()
	Error(c, apperrors.ErrBookNotFound)

	body := decodeBody(t, w)
	assert.Equal(t, float64(apperrors.ErrBookNotFound.Code), body["code"])
	assert.Equal(t, apperrors.ErrBookNotFound.Message, body["message"])
	assert.Nil(t, body["data"], "错误响应不携带数据")
}

// TestNewPageData 测试分页封装
func TestNewPageData(t *testing.T) {
	t.Run("整除", func(t *testing.T) {
		p := NewPageData([]int{1, 2}, 20, 1, 10)
		assert.Equal(t, 2, p.TotalPages)
	})

	t.Run("有余数", func(t *testing.T) {
		p := NewPageData([]int{1}, 21, 3, 10)
		assert.Equal(t, 3, p.TotalPages)
	})

	t.Run("超范围页码返回空列表但total正确", func(t *testing.T) {
		p := NewPageData([]int{}, 21, 99, 10)
		assert.Equal(t, int64(21), p.Total)
		assert.Equal(t, 99, p.Page)
		assert.Equal(t, 3, p.TotalPages)
	})

	t.Run("零条记录", func(t *testing.T) {
		p := NewPageData([]int{}, 0, 1, 10)
		assert.Equal(t, 0, p.TotalPages)
	})
}
