package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/todoservice/internal/features/greeting"
	"github.com/xyz-asif/todoservice/internal/features/todos"
	"github.com/xyz-asif/todoservice/internal/pkg/i18n"
)

// PersistentPrefix is where the persistent store's todo resource is mounted.
const PersistentPrefix = "/jpa"

// SetupRoutes registers the greeting endpoints and both todo namespaces:
// /users/... over the in-memory store and /jpa/users/... over the persistent one.
func SetupRoutes(router gin.IRouter, memory, persistent todos.Store, messages *i18n.Bundle) {
	greeting.RegisterRoutes(router, messages)
	todos.RegisterRoutes(router, "", memory)
	todos.RegisterRoutes(router, PersistentPrefix, persistent)
}
