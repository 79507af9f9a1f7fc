package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/zhubao-next/internal/authz"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupRBACTest(t *testing.T) *authz.Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	service, err := authz.NewService(db)
	if err != nil {
		t.Fatalf("new authz service failed: %v", err)
	}
	return service
}

func rbacStatusCode(t *testing.T, w *httptest.ResponseRecorder) int {
	t.Helper()
	var resp struct {
		StatusCode int `json:"status_code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	return resp.StatusCode
}

func TestAdminRBACMiddlewareSuperBypass(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := setupRBACTest(t)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("admin_id", uint(1))
		c.Set(adminIsSuperContextKey, true)
	})
	r.Use(AdminRBACMiddleware(service))
	r.DELETE("/api/v1/admin/products/:id", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status_code": 0})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/products/9", nil)
	r.ServeHTTP(w, req)

	if got := rbacStatusCode(t, w); got != 0 {
		t.Fatalf("super admin should bypass rbac, status_code got %d", got)
	}
}

func TestAdminRBACMiddlewareEnforcesPolicy(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := setupRBACTest(t)

	if err := service.GrantRolePolicy("support", "/admin/orders/:id/status", "PATCH"); err != nil {
		t.Fatalf("grant policy failed: %v", err)
	}
	if err := service.SetAdminRoles(3, []string{"support"}); err != nil {
		t.Fatalf("set admin roles failed: %v", err)
	}

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("admin_id", uint(3))
		c.Set(adminIsSuperContextKey, false)
	})
	r.Use(AdminRBACMiddleware(service))
	r.PATCH("/api/v1/admin/orders/:id/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status_code": 0})
	})
	r.DELETE("/api/v1/admin/products/:id", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status_code": 0})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/orders/12/status", nil)
	r.ServeHTTP(w, req)
	if got := rbacStatusCode(t, w); got != 0 {
		t.Fatalf("granted route should pass, status_code got %d", got)
	}

	w2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/products/12", nil)
	r.ServeHTTP(w2, req2)
	if got := rbacStatusCode(t, w2); got != 403 {
		t.Fatalf("ungranted route should be forbidden, status_code got %d", got)
	}
}
