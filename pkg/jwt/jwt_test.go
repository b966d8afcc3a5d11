package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/bookie/pkg/errors"
)

const testSecret = "test-secret-key"

// TestGenerateAndParseToken 测试Token生成与解析
func TestGenerateAndParseToken(t *testing.T) {
	m := NewManager(testSecret, 2*time.Hour, 7*24*time.Hour)

	pair, err := m.GenerateToken(42, "reader@example.com", "书虫")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, int64(7200), pair.ExpiresIn)

	claims, err := m.ParseToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "reader@example.com", claims.Email)
	assert.Equal(t, "书虫", claims.Nickname)
}

// TestParseToken_Invalid 测试非法Token
func TestParseToken_Invalid(t *testing.T) {
	m := NewManager(testSecret, 2*time.Hour, 7*24*time.Hour)

	t.Run("乱码Token", func(t *testing.T) {
		_, err := m.ParseToken("not.a.token")
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("密钥不匹配", func(t *testing.T) {
		other := NewManager("another-secret", 2*time.Hour, 7*24*time.Hour)
		pair, err := other.GenerateToken(1, "a@example.com", "甲")
		require.NoError(t, err)

		_, err = m.ParseToken(pair.AccessToken)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken, "签名验证必须失败")
	})

	t.Run("已过期", func(t *testing.T) {
		expired := NewManager(testSecret, -time.Hour, 7*24*time.Hour)
		pair, err := expired.GenerateToken(1, "a@example.com", "甲")
		require.NoError(t, err)

		_, err = m.ParseToken(pair.AccessToken)
		assert.ErrorIs(t, err, apperrors.ErrTokenExpired, "过期与非法必须区分")
	})
}

// TestRefreshAccessToken 测试刷新Access Token
func TestRefreshAccessToken(t *testing.T) {
	m := NewManager(testSecret, 2*time.Hour, 7*24*time.Hour)

	pair, err := m.GenerateToken(42, "reader@example.com", "书虫")
	require.NoError(t, err)

	newAccess, err := m.RefreshAccessToken(pair.RefreshToken)
	require.NoError(t, err)

	claims, err := m.ParseToken(newAccess)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)

	t.Run("伪造的Refresh Token被拒绝", func(t *testing.T) {
		_, err := m.RefreshAccessToken("forged.refresh.token")
		assert.Error(t, err)
	})
}
