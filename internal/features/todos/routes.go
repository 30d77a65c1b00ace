// ================== internal/features/todos/routes.go ==================
package todos

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the todo resource under prefix + /users/:username/todos.
func RegisterRoutes(router gin.IRouter, prefix string, store Store) {
	handler := NewHandler(store)

	todos := router.Group(prefix + "/users/:username/todos")
	{
		todos.GET("", handler.List)
		todos.POST("", handler.Create)
		todos.GET("/:id", handler.Get)
		todos.PUT("/:id", handler.Update)
		todos.DELETE("/:id", handler.Delete)
	}
}
