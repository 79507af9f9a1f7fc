package i18n

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

const (
	LocaleZhCN = "zh-CN"
	LocaleEnUS = "en-US"

	DefaultLocale = LocaleEnUS

	localeQueryKey  = "locale"
	localeHeaderKey = "X-Locale"
)

var supportedTags = []language.Tag{
	language.MustParse(LocaleEnUS),
	language.MustParse(LocaleZhCN),
}

var localeMatcher = language.NewMatcher(supportedTags)

// ResolveLocale 解析请求语言，优先级：query > X-Locale > Accept-Language
func ResolveLocale(c *gin.Context) string {
	if c == nil {
		return DefaultLocale
	}
	candidates := []string{
		c.Query(localeQueryKey),
		c.GetHeader(localeHeaderKey),
		c.GetHeader("Accept-Language"),
	}
	for _, candidate := range candidates {
		if locale := matchLocale(candidate); locale != "" {
			return locale
		}
	}
	return DefaultLocale
}

func matchLocale(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	tags, _, err := language.ParseAcceptLanguage(raw)
	if err != nil || len(tags) == 0 {
		return ""
	}
	_, index, confidence := localeMatcher.Match(tags...)
	if confidence == language.No {
		return ""
	}
	switch index {
	case 1:
		return LocaleZhCN
	default:
		return LocaleEnUS
	}
}

// T 按语言查找文案，缺失时回退英文再回退 key 本身
func T(locale, key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}
	if table, ok := messages[normalizeLocale(locale)]; ok {
		if msg, ok := table[key]; ok {
			return msg
		}
	}
	if msg, ok := messages[LocaleEnUS][key]; ok {
		return msg
	}
	return key
}

// Sprintf 带参数的文案格式化
func Sprintf(locale, key string, args ...interface{}) string {
	template := T(locale, key)
	if len(args) == 0 {
		return template
	}
	return fmt.Sprintf(template, args...)
}

func normalizeLocale(locale string) string {
	switch strings.ToLower(strings.TrimSpace(locale)) {
	case "zh", "zh-cn", "zh_cn", "zh-hans":
		return LocaleZhCN
	default:
		return LocaleEnUS
	}
}
