package i18n

var messages = map[string]map[string]string{
	LocaleEnUS: {
		"error.unauthorized":    "unauthorized",
		"error.forbidden":       "permission denied",
		"error.not_found":       "resource not found",
		"error.invalid_request": "invalid request",
		"error.internal":        "internal server error",

		"error.jwt_secret_missing":  "server auth is not configured",
		"error.auth_header_missing": "authorization header is missing",
		"error.auth_header_invalid": "authorization header is invalid",
		"error.token_invalid":       "token is invalid",
		"error.token_revoked":       "token has been revoked",

		"error.login_too_many":         "too many login attempts, retry in %d seconds",
		"error.rate_limited":           "too many requests, retry in %d seconds",
		"error.rate_limit_unavailable": "rate limiter is unavailable",

		"error.invalid_credentials": "invalid username or password",
		"error.invalid_password":    "current password is incorrect",
		"error.weak_password":       "password does not meet the policy",

		"error.password_min_length":     "password must be at least %d characters",
		"error.password_require_upper":  "password must contain an uppercase letter",
		"error.password_require_lower":  "password must contain a lowercase letter",
		"error.password_require_number": "password must contain a digit",

		"error.captcha_required":       "captcha is required",
		"error.captcha_invalid":        "captcha is incorrect",
		"error.captcha_config_invalid": "captcha is not enabled",

		"error.slug_exists":            "slug already exists",
		"error.category_in_use":        "category still has products",
		"error.material_in_use":        "material still has products",
		"error.material_name_exists":   "material name already exists",
		"error.material_name_required": "material name is required",
		"error.material_type_invalid":  "material type must be gold or silver",
		"error.base_price_invalid":     "base price is invalid",
		"error.karat_purity_invalid":   "purity must be between 0 and 100",
		"error.karat_price_invalid":    "karat price invalid",

		"error.quantity_invalid":      "quantity is invalid",
		"error.product_unavailable":   "product is unavailable",
		"error.product_out_of_stock":  "product is out of stock",
		"error.cart_empty":            "cart is empty",
		"error.order_status_conflict": "order status has changed, refresh and retry",

		"error.login_failed":            "login failed",
		"error.save_failed":             "save failed",
		"error.config_fetch_failed":     "failed to load site config",
		"error.catalog_fetch_failed":    "failed to load catalog",
		"error.captcha_generate_failed": "failed to generate captcha",

		"error.product_not_found":     "product not found",
		"error.product_fetch_failed":  "failed to load product",
		"error.product_save_failed":   "failed to save product",
		"error.product_delete_failed": "failed to delete product",

		"error.category_not_found":     "category not found",
		"error.category_fetch_failed":  "failed to load categories",
		"error.category_save_failed":   "failed to save category",
		"error.category_delete_failed": "failed to delete category",

		"error.material_not_found":     "material not found",
		"error.material_fetch_failed":  "failed to load materials",
		"error.material_save_failed":   "failed to save material",
		"error.material_delete_failed": "failed to delete material",
		"error.karat_save_failed":      "failed to save karat",
		"error.karat_delete_failed":    "failed to delete karat",

		"error.post_not_found":     "post not found",
		"error.post_fetch_failed":  "failed to load posts",
		"error.post_save_failed":   "failed to save post",
		"error.post_delete_failed": "failed to delete post",

		"error.cart_token_missing": "cart token is missing",
		"error.cart_fetch_failed":  "failed to load cart",
		"error.cart_update_failed": "failed to update cart",

		"error.order_not_found":     "order not found",
		"error.order_fetch_failed":  "failed to load orders",
		"error.order_create_failed": "failed to create order",
		"error.order_save_failed":   "failed to update order",

		"error.settings_fetch_failed": "failed to load settings",
		"error.settings_save_failed":  "failed to save settings",

		"error.admin_id_invalid":      "admin identity is missing",
		"error.admin_id_type_invalid": "admin identity is invalid",
		"error.admin_not_found":       "admin not found",
		"error.admin_fetch_failed":    "failed to load admins",
		"error.admin_save_failed":     "failed to save admin",
		"error.admin_delete_failed":   "failed to delete admin",
		"error.admin_delete_self":     "cannot delete the current admin",
		"error.admin_delete_super":    "cannot delete a super admin",
		"error.admin_username_exists": "username already exists",
		"error.admin_super_no_roles":  "super admin does not need roles",
		"error.role_fetch_failed":     "failed to load roles",
	},
	LocaleZhCN: {
		"error.unauthorized":    "未登录或登录已过期",
		"error.forbidden":       "没有操作权限",
		"error.not_found":       "资源不存在",
		"error.invalid_request": "请求参数无效",
		"error.internal":        "服务器内部错误",

		"error.jwt_secret_missing":  "服务端认证未配置",
		"error.auth_header_missing": "缺少认证头",
		"error.auth_header_invalid": "认证头格式错误",
		"error.token_invalid":       "登录凭证无效",
		"error.token_revoked":       "登录凭证已失效",

		"error.login_too_many":         "登录尝试过于频繁，请 %d 秒后重试",
		"error.rate_limited":           "请求过于频繁，请 %d 秒后重试",
		"error.rate_limit_unavailable": "限流服务不可用",

		"error.invalid_credentials": "用户名或密码错误",
		"error.invalid_password":    "当前密码不正确",
		"error.weak_password":       "密码不符合安全策略",

		"error.password_min_length":     "密码长度不能少于 %d 位",
		"error.password_require_upper":  "密码必须包含大写字母",
		"error.password_require_lower":  "密码必须包含小写字母",
		"error.password_require_number": "密码必须包含数字",

		"error.captcha_required":       "请输入验证码",
		"error.captcha_invalid":        "验证码错误",
		"error.captcha_config_invalid": "验证码未启用",

		"error.slug_exists":            "别名已存在",
		"error.category_in_use":        "分类下仍有商品",
		"error.material_in_use":        "材质下仍有商品",
		"error.material_name_exists":   "材质名称已存在",
		"error.material_name_required": "材质名称不能为空",
		"error.material_type_invalid":  "材质类型必须为 gold 或 silver",
		"error.base_price_invalid":     "基础克价无效",
		"error.karat_purity_invalid":   "纯度必须在 0 到 100 之间",
		"error.karat_price_invalid":    "档位价格无效",

		"error.quantity_invalid":      "数量无效",
		"error.product_unavailable":   "商品已下架",
		"error.product_out_of_stock":  "商品库存不足",
		"error.cart_empty":            "购物车为空",
		"error.order_status_conflict": "订单状态已变更，请刷新后重试",

		"error.login_failed":            "登录失败",
		"error.save_failed":             "保存失败",
		"error.config_fetch_failed":     "获取站点配置失败",
		"error.catalog_fetch_failed":    "获取商品目录失败",
		"error.captcha_generate_failed": "生成验证码失败",

		"error.product_not_found":     "商品不存在",
		"error.product_fetch_failed":  "获取商品失败",
		"error.product_save_failed":   "保存商品失败",
		"error.product_delete_failed": "删除商品失败",

		"error.category_not_found":     "分类不存在",
		"error.category_fetch_failed":  "获取分类失败",
		"error.category_save_failed":   "保存分类失败",
		"error.category_delete_failed": "删除分类失败",

		"error.material_not_found":     "材质不存在",
		"error.material_fetch_failed":  "获取材质失败",
		"error.material_save_failed":   "保存材质失败",
		"error.material_delete_failed": "删除材质失败",
		"error.karat_save_failed":      "保存纯度档位失败",
		"error.karat_delete_failed":    "删除纯度档位失败",

		"error.post_not_found":     "文章不存在",
		"error.post_fetch_failed":  "获取文章失败",
		"error.post_save_failed":   "保存文章失败",
		"error.post_delete_failed": "删除文章失败",

		"error.cart_token_missing": "缺少购物车令牌",
		"error.cart_fetch_failed":  "获取购物车失败",
		"error.cart_update_failed": "更新购物车失败",

		"error.order_not_found":     "订单不存在",
		"error.order_fetch_failed":  "获取订单失败",
		"error.order_create_failed": "创建订单失败",
		"error.order_save_failed":   "更新订单失败",

		"error.settings_fetch_failed": "获取设置失败",
		"error.settings_save_failed":  "保存设置失败",

		"error.admin_id_invalid":      "缺少管理员身份",
		"error.admin_id_type_invalid": "管理员身份无效",
		"error.admin_not_found":       "管理员不存在",
		"error.admin_fetch_failed":    "获取管理员失败",
		"error.admin_save_failed":     "保存管理员失败",
		"error.admin_delete_failed":   "删除管理员失败",
		"error.admin_delete_self":     "不能删除当前登录的管理员",
		"error.admin_delete_super":    "不能删除超级管理员",
		"error.admin_username_exists": "用户名已存在",
		"error.admin_super_no_roles":  "超级管理员无需分配角色",
		"error.role_fetch_failed":     "获取角色失败",
	},
}
