package provider

import (
	"github.com/zhubao-next/internal/authz"
	"github.com/zhubao-next/internal/cache"
	"github.com/zhubao-next/internal/config"
	"github.com/zhubao-next/internal/logger"
	"github.com/zhubao-next/internal/models"
	"github.com/zhubao-next/internal/queue"
	"github.com/zhubao-next/internal/repository"
	"github.com/zhubao-next/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	AdminRepo    repository.AdminRepository
	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository
	MaterialRepo repository.MaterialRepository
	SettingRepo  repository.SettingRepository
	CartRepo     repository.CartRepository
	PostRepo     repository.PostRepository
	OrderRepo    repository.OrderRepository

	// Services
	AuthzService    *authz.Service
	AuthService     *service.AuthService
	CaptchaService  *service.CaptchaService
	ProductService  *service.ProductService
	CategoryService *service.CategoryService
	MaterialService *service.MaterialService
	PostService     *service.PostService
	SettingService  *service.SettingService
	CartService     *service.CartService
	CatalogService  *service.CatalogService
	OrderService    *service.OrderService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.AdminRepo = repository.NewAdminRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.MaterialRepo = repository.NewMaterialRepository(db)
	c.SettingRepo = repository.NewSettingRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.PostRepo = repository.NewPostRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
}

func (c *Container) initServices() {
	authzService, err := authz.NewService(models.DB)
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
		panic(err)
	}
	c.AuthzService = authzService
	if err := c.AuthzService.BootstrapBuiltinRoles(); err != nil {
		logger.Errorw("provider_bootstrap_builtin_roles_failed", "error", err)
		panic(err)
	}

	c.SettingService = service.NewSettingService(c.SettingRepo)
	c.CaptchaService = service.NewCaptchaService(c.Config.Captcha)
	c.AuthService = service.NewAuthService(c.Config, c.AdminRepo)
	c.ProductService = service.NewProductService(c.ProductRepo, c.CategoryRepo, c.MaterialRepo)
	c.CategoryService = service.NewCategoryService(c.CategoryRepo)
	c.MaterialService = service.NewMaterialService(c.MaterialRepo, c.QueueClient)
	c.PostService = service.NewPostService(c.PostRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo)
	c.CatalogService = service.NewCatalogService(c.ProductRepo, c.Config.Catalog)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.CartRepo, c.ProductRepo, c.SettingService, c.QueueClient, c.Config.Order)
}
