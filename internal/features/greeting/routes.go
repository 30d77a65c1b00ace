package greeting

import (
	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/todoservice/internal/pkg/i18n"
)

func RegisterRoutes(router gin.IRouter, messages *i18n.Bundle) {
	handler := NewHandler(messages)

	router.GET("/hello-world", handler.HelloWorld)
	router.GET("/hello-world-bean", handler.HelloWorldBean)
	router.GET("/hello-world/path-variable/:name", handler.HelloWorldPathVariable)
	router.GET("/hello-world-internationalized", handler.HelloWorldInternationalized)
}
