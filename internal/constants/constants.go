package constants

// 材质类型常量
const (
	MaterialTypeGold   = "gold"
	MaterialTypeSilver = "silver"
)

// 商品排序键常量
const (
	SortKeyName      = "name"
	SortKeyPriceLow  = "price-low"
	SortKeyPriceHigh = "price-high"
	SortKeyNewest    = "newest"
)

// 订单状态常量
const (
	OrderStatusPendingPayment = "pending_payment"
	OrderStatusPaid           = "paid"
	OrderStatusCompleted      = "completed"
	OrderStatusCanceled       = "canceled"
)

// 文章类型常量
const (
	PostTypeBlog   = "blog"
	PostTypePolicy = "policy"
)

// 设置键常量
const (
	SettingKeySiteConfig  = "site_config"
	SettingKeyOrderConfig = "order_config"
)

// 设置字段常量
const (
	SettingFieldSiteCurrency         = "site_currency"
	SettingFieldPaymentExpireMinutes = "payment_expire_minutes"
	SiteCurrencyDefault              = "INR"
)

// 队列名称常量
const (
	QueueDefault  = "default"
	QueueCritical = "critical"
)

// 异步任务类型常量
const (
	TaskKaratReprice       = "karat:reprice"
	TaskOrderTimeoutCancel = "order:timeout_cancel"
)

// 购物车请求头常量
const (
	CartTokenHeader = "X-Cart-Token"
)
