package review

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewRating 评分边界校验
func TestNewRating(t *testing.T) {
	t.Run("合法评分", func(t *testing.T) {
		for v := 1; v <= 5; v++ {
			r, err := NewRating(v)
			require.NoError(t, err)
			assert.Equal(t, Rating(v), r)
		}
	})

	t.Run("越界评分被拒绝", func(t *testing.T) {
		for _, v := range []int{0, 6, -1, 100} {
			_, err := NewRating(v)
			assert.ErrorIs(t, err, ErrInvalidRating, "评分%d应该被拒绝", v)
		}
	})
}

// TestNewReview 评论构造校验
func TestNewReview(t *testing.T) {
	rating, err := NewRating(5)
	require.NoError(t, err)

	t.Run("正常创建", func(t *testing.T) {
		r, err := NewReview(1, 2, "好书", rating)
		require.NoError(t, err)
		assert.Equal(t, uint(1), r.BookID)
		assert.Equal(t, uint(2), r.UserID)
		assert.Equal(t, Rating(5), r.Rating)
		assert.False(t, r.CreatedAt.IsZero())
	})

	t.Run("允许空文本", func(t *testing.T) {
		_, err := NewReview(1, 2, "", rating)
		assert.NoError(t, err, "只打分不写评论是合法的")
	})

	t.Run("缺少图书或用户", func(t *testing.T) {
		_, err := NewReview(0, 2, "好书", rating)
		assert.ErrorIs(t, err, ErrInvalidReview)

		_, err = NewReview(1, 0, "好书", rating)
		assert.ErrorIs(t, err, ErrInvalidReview)
	})

	t.Run("文本过长", func(t *testing.T) {
		_, err := NewReview(1, 2, strings.Repeat("长", 5001), rating)
		assert.ErrorIs(t, err, ErrTextTooLong)

		_, err = NewReview(1, 2, strings.Repeat("长", 5000), rating)
		assert.NoError(t, err, "恰好5000字符合法")
	})
}
