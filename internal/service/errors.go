package service

import "errors"

// 业务层统一哨兵错误，handler 层据此映射响应码与文案
var (
	ErrNotFound             = errors.New("record not found")
	ErrSlugExists           = errors.New("slug already exists")
	ErrCategoryInUse        = errors.New("category has products")
	ErrMaterialInUse        = errors.New("material has products")
	ErrMaterialNameExists   = errors.New("material name already exists")
	ErrMaterialNameRequired = errors.New("material name required")
	ErrMaterialTypeInvalid  = errors.New("material type invalid")

	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrWeakPassword       = errors.New("password does not meet policy")

	ErrCaptchaRequired      = errors.New("captcha required")
	ErrCaptchaInvalid       = errors.New("captcha invalid")
	ErrCaptchaConfigInvalid = errors.New("captcha config invalid")

	ErrBasePriceInvalid   = errors.New("base price invalid")
	ErrKaratPurityInvalid = errors.New("karat purity out of range")
	ErrKaratPriceInvalid  = errors.New("karat price invalid")

	ErrQuantityInvalid    = errors.New("quantity invalid")
	ErrProductUnavailable = errors.New("product unavailable")
	ErrProductOutOfStock  = errors.New("product out of stock")
	ErrCartEmpty          = errors.New("cart is empty")

	ErrOrderStatusConflict = errors.New("order status conflict")
)
