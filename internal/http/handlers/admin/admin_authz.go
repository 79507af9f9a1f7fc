package admin

import (
	"strconv"
	"time"

	"github.com/zhubao-next/internal/http/response"
	"github.com/zhubao-next/internal/i18n"
	"github.com/zhubao-next/internal/models"

	"github.com/gin-gonic/gin"
)

// ====================  角色与策略管理  ====================

// GetAuthzRoles 列出全部角色
func (h *Handler) GetAuthzRoles(c *gin.Context) {
	roles, err := h.AuthzService.ListRoles()
	if err != nil {
		respondError(c, response.CodeInternal, "error.role_fetch_failed", err)
		return
	}
	response.Success(c, gin.H{"roles": roles})
}

// CreateAuthzRoleRequest 创建角色请求
type CreateAuthzRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// CreateAuthzRole 创建角色
func (h *Handler) CreateAuthzRole(c *gin.Context) {
	var req CreateAuthzRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}
	role, err := h.AuthzService.EnsureRole(req.Role)
	if err != nil {
		respondErrorWithMsg(c, response.CodeBadRequest, err.Error(), err)
		return
	}
	response.Success(c, gin.H{"role": role})
}

// DeleteAuthzRole 删除角色及其全部策略和成员关系
func (h *Handler) DeleteAuthzRole(c *gin.Context) {
	if err := h.AuthzService.DeleteRole(c.Param("role")); err != nil {
		respondErrorWithMsg(c, response.CodeBadRequest, err.Error(), err)
		return
	}
	response.Success(c, nil)
}

// GetAuthzRolePolicies 查询角色已授予的策略
func (h *Handler) GetAuthzRolePolicies(c *gin.Context) {
	policies, err := h.AuthzService.GetRolePolicies(c.Param("role"))
	if err != nil {
		respondErrorWithMsg(c, response.CodeBadRequest, err.Error(), err)
		return
	}
	response.Success(c, gin.H{"policies": policies})
}

// AuthzPolicyRequest 授予/撤销策略请求
type AuthzPolicyRequest struct {
	Object string `json:"object" binding:"required"`
	Action string `json:"action" binding:"required"`
}

// GrantAuthzRolePolicy 为角色授予策略
func (h *Handler) GrantAuthzRolePolicy(c *gin.Context) {
	var req AuthzPolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}
	if err := h.AuthzService.GrantRolePolicy(c.Param("role"), req.Object, req.Action); err != nil {
		respondErrorWithMsg(c, response.CodeBadRequest, err.Error(), err)
		return
	}
	response.Success(c, nil)
}

// RevokeAuthzRolePolicy 撤销角色策略
func (h *Handler) RevokeAuthzRolePolicy(c *gin.Context) {
	var req AuthzPolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}
	if err := h.AuthzService.RevokeRolePolicy(c.Param("role"), req.Object, req.Action); err != nil {
		respondErrorWithMsg(c, response.CodeBadRequest, err.Error(), err)
		return
	}
	response.Success(c, nil)
}

// ====================  管理员账号管理  ====================

// AdminAccountResponse 管理员账号视图
type AdminAccountResponse struct {
	ID          uint     `json:"id"`
	Username    string   `json:"username"`
	IsSuper     bool     `json:"is_super"`
	Roles       []string `json:"roles"`
	LastLoginAt string   `json:"last_login_at,omitempty"`
	CreatedAt   string   `json:"created_at"`
}

// GetAdminAccounts 列出管理员账号及其角色
func (h *Handler) GetAdminAccounts(c *gin.Context) {
	admins, err := h.AdminRepo.List()
	if err != nil {
		respondError(c, response.CodeInternal, "error.admin_fetch_failed", err)
		return
	}

	items := make([]AdminAccountResponse, 0, len(admins))
	for _, admin := range admins {
		item := AdminAccountResponse{
			ID:        admin.ID,
			Username:  admin.Username,
			IsSuper:   admin.IsSuper,
			Roles:     []string{},
			CreatedAt: admin.CreatedAt.Format(time.RFC3339),
		}
		if admin.LastLoginAt != nil {
			item.LastLoginAt = admin.LastLoginAt.Format(time.RFC3339)
		}
		if !admin.IsSuper {
			roles, err := h.AuthzService.GetAdminRoles(admin.ID)
			if err != nil {
				respondError(c, response.CodeInternal, "error.role_fetch_failed", err)
				return
			}
			item.Roles = roles
		}
		items = append(items, item)
	}
	response.Success(c, items)
}

// CreateAdminAccountRequest 创建管理员请求
type CreateAdminAccountRequest struct {
	Username string   `json:"username" binding:"required,min=3,max=64"`
	Password string   `json:"password" binding:"required"`
	IsSuper  bool     `json:"is_super"`
	Roles    []string `json:"roles"`
}

// CreateAdminAccount 创建管理员账号
func (h *Handler) CreateAdminAccount(c *gin.Context) {
	var req CreateAdminAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	if err := h.AuthService.ValidatePassword(req.Password); err != nil {
		locale := i18n.ResolveLocale(c)
		if perr, ok := err.(interface {
			Key() string
			Args() []interface{}
		}); ok {
			respondErrorWithMsg(c, response.CodeBadRequest, i18n.Sprintf(locale, perr.Key(), perr.Args()...), nil)
			return
		}
		respondError(c, response.CodeBadRequest, "error.weak_password", nil)
		return
	}

	existing, err := h.AdminRepo.GetByUsername(req.Username)
	if err != nil {
		respondError(c, response.CodeInternal, "error.admin_save_failed", err)
		return
	}
	if existing != nil {
		respondError(c, response.CodeBadRequest, "error.admin_username_exists", nil)
		return
	}

	hashed, err := h.AuthService.HashPassword(req.Password)
	if err != nil {
		respondError(c, response.CodeInternal, "error.admin_save_failed", err)
		return
	}

	admin := &models.Admin{
		Username:     req.Username,
		PasswordHash: hashed,
		IsSuper:      req.IsSuper,
	}
	if err := h.AdminRepo.Create(admin); err != nil {
		respondError(c, response.CodeInternal, "error.admin_save_failed", err)
		return
	}

	if !admin.IsSuper && len(req.Roles) > 0 {
		if err := h.AuthzService.SetAdminRoles(admin.ID, req.Roles); err != nil {
			respondErrorWithMsg(c, response.CodeBadRequest, err.Error(), err)
			return
		}
	}

	response.Success(c, gin.H{
		"id":       admin.ID,
		"username": admin.Username,
		"is_super": admin.IsSuper,
	})
}

// DeleteAdminAccount 删除管理员账号
// 禁止删除自己，禁止删除最后一个超级管理员。
func (h *Handler) DeleteAdminAccount(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "error.invalid_request", nil)
		return
	}
	targetID := uint(id)

	currentID, ok := getAdminID(c)
	if !ok {
		return
	}
	if currentID == targetID {
		respondError(c, response.CodeBadRequest, "error.admin_delete_self", nil)
		return
	}

	target, err := h.AdminRepo.GetByID(targetID)
	if err != nil {
		respondError(c, response.CodeInternal, "error.admin_fetch_failed", err)
		return
	}
	if target == nil {
		respondError(c, response.CodeNotFound, "error.admin_not_found", nil)
		return
	}
	if target.IsSuper {
		respondError(c, response.CodeBadRequest, "error.admin_delete_super", nil)
		return
	}

	if err := h.AdminRepo.Delete(targetID); err != nil {
		respondError(c, response.CodeInternal, "error.admin_delete_failed", err)
		return
	}
	if err := h.AuthzService.SetAdminRoles(targetID, nil); err != nil {
		respondError(c, response.CodeInternal, "error.admin_delete_failed", err)
		return
	}
	response.Success(c, nil)
}

// GetAuthzAdminRoles 查询指定管理员的角色
func (h *Handler) GetAuthzAdminRoles(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "error.invalid_request", nil)
		return
	}
	roles, err := h.AuthzService.GetAdminRoles(uint(id))
	if err != nil {
		respondError(c, response.CodeInternal, "error.role_fetch_failed", err)
		return
	}
	response.Success(c, gin.H{"roles": roles})
}

// SetAuthzAdminRolesRequest 设置管理员角色请求
type SetAuthzAdminRolesRequest struct {
	Roles []string `json:"roles"`
}

// SetAuthzAdminRoles 覆盖设置管理员的角色
func (h *Handler) SetAuthzAdminRoles(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "error.invalid_request", nil)
		return
	}

	var req SetAuthzAdminRolesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.invalid_request", err)
		return
	}

	admin, err := h.AdminRepo.GetByID(uint(id))
	if err != nil {
		respondError(c, response.CodeInternal, "error.admin_fetch_failed", err)
		return
	}
	if admin == nil {
		respondError(c, response.CodeNotFound, "error.admin_not_found", nil)
		return
	}
	if admin.IsSuper {
		respondError(c, response.CodeBadRequest, "error.admin_super_no_roles", nil)
		return
	}

	if err := h.AuthzService.SetAdminRoles(admin.ID, req.Roles); err != nil {
		respondErrorWithMsg(c, response.CodeBadRequest, err.Error(), err)
		return
	}
	response.Success(c, nil)
}
