package user

import (
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/user/handler"
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/user/repository"
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/domain/user/service"
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/pkg/middleware"
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/pkg/registry"

	"github.com/gin-gonic/gin"
)

// UserModule wires identity and access.
type UserModule struct{}

func init() {
	registry.Register(&UserModule{})
}

func (m *UserModule) Name() string {
	return "user"
}

func (m *UserModule) Priority() int {
	return 10
}

func (m *UserModule) Init(ctx *registry.ModuleContext) error {
	var repo repository.UserRepository
	if ctx.FileMode() {
		repo = repository.NewFileUserRepository(ctx.Store)
	} else {
		repo = repository.NewUserRepository(ctx.DB)
	}

	svc := service.NewUserService(repo)
	h := handler.NewUserHandler(svc)

	setupRoutes(ctx.Router, h)
	return nil
}

func setupRoutes(r *gin.Engine, h *handler.UserHandler) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}

	users := r.Group("/users")
	users.Use(middleware.AuthMiddleware())
	{
		users.GET("/me", h.Me)
	}

	admin := r.Group("/admin/users")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.GET("", h.List)
	}
}
