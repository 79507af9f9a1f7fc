package public

import (
	"errors"

	"github.com/zhubao-next/internal/http/response"
	"github.com/zhubao-next/internal/service"

	"github.com/gin-gonic/gin"
)

// GetImageCaptcha 获取登录图片验证码
func (h *Handler) GetImageCaptcha(c *gin.Context) {
	challenge, err := h.CaptchaService.GenerateImageChallenge()
	if err != nil {
		if errors.Is(err, service.ErrCaptchaConfigInvalid) {
			respondError(c, response.CodeBadRequest, "error.captcha_config_invalid", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.captcha_generate_failed", err)
		return
	}
	response.Success(c, challenge)
}
