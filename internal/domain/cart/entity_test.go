package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewItem 购物车条目构造校验
func TestNewItem(t *testing.T) {
	t.Run("正常创建", func(t *testing.T) {
		item, err := NewItem(1, 2, 3)
		require.NoError(t, err)
		assert.Equal(t, uint(1), item.UserID)
		assert.Equal(t, uint(2), item.BookID)
		assert.Equal(t, 3, item.Quantity)
	})

	t.Run("数量必须为正", func(t *testing.T) {
		_, err := NewItem(1, 2, 0)
		assert.ErrorIs(t, err, ErrInvalidQuantity)

		_, err = NewItem(1, 2, -5)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})
}
