package i18n

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newLocaleContext(t *testing.T, query, header, acceptLanguage string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	target := "/"
	if query != "" {
		target = "/?locale=" + query
	}
	c.Request = httptest.NewRequest("GET", target, nil)
	if header != "" {
		c.Request.Header.Set("X-Locale", header)
	}
	if acceptLanguage != "" {
		c.Request.Header.Set("Accept-Language", acceptLanguage)
	}
	return c
}

func TestResolveLocale(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		header         string
		acceptLanguage string
		want           string
	}{
		{"default", "", "", "", LocaleEnUS},
		{"query_zh", "zh-CN", "", "en-US", LocaleZhCN},
		{"header_zh", "", "zh-CN", "", LocaleZhCN},
		{"accept_language", "", "", "zh-CN,zh;q=0.9,en;q=0.8", LocaleZhCN},
		{"accept_language_en", "", "", "en-GB,en;q=0.9", LocaleEnUS},
		{"invalid_falls_back", "klingon", "", "", LocaleEnUS},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newLocaleContext(t, tt.query, tt.header, tt.acceptLanguage)
			if got := ResolveLocale(c); got != tt.want {
				t.Fatalf("locale want %s got %s", tt.want, got)
			}
		})
	}
}

func TestTranslateFallback(t *testing.T) {
	if got := T(LocaleZhCN, "error.cart_empty"); got != "购物车为空" {
		t.Fatalf("zh message mismatch: %s", got)
	}
	if got := T("fr-FR", "error.cart_empty"); got != "cart is empty" {
		t.Fatalf("unknown locale should fall back to en: %s", got)
	}
	if got := T(LocaleEnUS, "error.__missing__"); got != "error.__missing__" {
		t.Fatalf("missing key should echo key: %s", got)
	}
}

func TestSprintfWithArgs(t *testing.T) {
	got := Sprintf(LocaleEnUS, "error.password_min_length", 8)
	if got != "password must be at least 8 characters" {
		t.Fatalf("formatted message mismatch: %s", got)
	}
}
