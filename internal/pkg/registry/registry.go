package registry

import (
	"github.com/RimshaSaif36/Classic-Decor-sub000/internal/store/filestore"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// ModuleContext carries everything a module needs at init time.
// Exactly one persistence backend is active per process: DB when a database
// is configured, Store otherwise. Modules pick their repository
// implementation here, once; no request path ever branches on backend.
type ModuleContext struct {
	DB     *gorm.DB        // nil in flat-file mode
	Redis  *redis.Client   // nil when redis is not configured
	Store  *filestore.Store
	Router *gin.Engine
}

// FileMode reports whether the flat-file fallback is the active backend.
func (c *ModuleContext) FileMode() bool {
	return c.DB == nil
}

// Module is the unit of registration: a domain wires its own repositories,
// services, handlers and routes in Init.
type Module interface {
	// Name returns the module name.
	Name() string

	// Init performs dependency injection and route registration.
	Init(ctx *ModuleContext) error

	// Priority orders initialization (lower runs first); payment depends on
	// order and cart, so it initializes after them.
	Priority() int
}

var moduleRegistry = make(map[string]Module)

// Register adds a module to the global registry.
func Register(module Module) {
	moduleRegistry[module.Name()] = module
}

// GetModules returns all registered modules.
func GetModules() map[string]Module {
	return moduleRegistry
}

// InitModules initializes all modules in priority order.
func InitModules(ctx *ModuleContext) error {
	modules := make([]Module, 0, len(moduleRegistry))
	for _, m := range moduleRegistry {
		modules = append(modules, m)
	}

	// Bubble sort is fine for a handful of modules.
	for i := 0; i < len(modules); i++ {
		for j := i + 1; j < len(modules); j++ {
			if modules[i].Priority() > modules[j].Priority() {
				modules[i], modules[j] = modules[j], modules[i]
			}
		}
	}

	for _, module := range modules {
		if err := module.Init(ctx); err != nil {
			return err
		}
	}

	return nil
}
