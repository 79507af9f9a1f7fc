package public

import (
	"strings"

	"github.com/zhubao-next/internal/constants"
	handlershared "github.com/zhubao-next/internal/http/handlers/shared"
	"github.com/zhubao-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, code int, key string, err error) {
	handlershared.RespondError(c, code, key, err)
}

func normalizePagination(page, pageSize int) (int, int) {
	return handlershared.NormalizePagination(page, pageSize)
}

// getCartToken 读取购物车令牌，缺失时返回 false 并响应错误
func getCartToken(c *gin.Context) (string, bool) {
	token := strings.TrimSpace(c.GetHeader(constants.CartTokenHeader))
	if token == "" {
		respondError(c, response.CodeBadRequest, "error.cart_token_missing", nil)
		return "", false
	}
	return token, true
}
