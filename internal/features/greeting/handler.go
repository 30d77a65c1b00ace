package greeting

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/todoservice/internal/pkg/i18n"
	"github.com/xyz-asif/todoservice/internal/pkg/response"
)

const (
	goodMorningKey     = "good.morning.message"
	defaultGoodMorning = "Default Message"
)

type Handler struct {
	messages *i18n.Bundle
}

func NewHandler(messages *i18n.Bundle) *Handler {
	return &Handler{messages: messages}
}

// HelloWorld godoc
// @Summary Plain text greeting
// @Tags greeting
// @Produce plain
// @Success 200 {string} string "Hello-World"
// @Router /hello-world [get]
func (h *Handler) HelloWorld(c *gin.Context) {
	c.String(http.StatusOK, "Hello-World")
}

// HelloWorldBean godoc
// @Summary Greeting as JSON
// @Tags greeting
// @Produce json
// @Success 200 {object} HelloWorldBean
// @Router /hello-world-bean [get]
func (h *Handler) HelloWorldBean(c *gin.Context) {
	response.Entity(c, http.StatusOK, HelloWorldBean{Message: "Hello-World-Bean"})
}

// HelloWorldPathVariable godoc
// @Summary Greeting for a name
// @Tags greeting
// @Produce json
// @Param name path string true "Name"
// @Success 200 {object} HelloWorldBean
// @Router /hello-world/path-variable/{name} [get]
func (h *Handler) HelloWorldPathVariable(c *gin.Context) {
	response.Entity(c, http.StatusOK, HelloWorldBean{
		Message: fmt.Sprintf("Hello-World %s", c.Param("name")),
	})
}

// HelloWorldInternationalized godoc
// @Summary Greeting in the caller's language
// @Description Negotiated from Accept-Language; unknown locales get the default message.
// @Tags greeting
// @Produce plain
// @Param Accept-Language header string false "Preferred languages"
// @Success 200 {string} string "Good Morning"
// @Router /hello-world-internationalized [get]
func (h *Handler) HelloWorldInternationalized(c *gin.Context) {
	msg := h.messages.Lookup(c.GetHeader("Accept-Language"), goodMorningKey, defaultGoodMorning)
	c.Header("Vary", "Accept-Language")
	c.String(http.StatusOK, msg)
}
