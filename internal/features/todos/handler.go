// ================== internal/features/todos/handler.go ==================
package todos

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/todoservice/internal/pkg/logger"
	"github.com/xyz-asif/todoservice/internal/pkg/response"
	apperrors "github.com/xyz-asif/todoservice/pkg/errors"
)

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

// List godoc
// @Summary List a user's todos
// @Description Get every todo owned by the user. Order is not guaranteed.
// @Tags todos
// @Produce json
// @Param username path string true "Owner"
// @Success 200 {array} Todo
// @Failure 500 {object} response.ErrorResponse
// @Router /users/{username}/todos [get]
// @Router /jpa/users/{username}/todos [get]
func (h *Handler) List(c *gin.Context) {
	username := c.Param("username")

	todos, err := h.store.ListByOwner(c.Request.Context(), username)
	if err != nil {
		logger.Error("list todos for %s: %v", username, err)
		response.DatabaseError(c, "Failed to get todos")
		return
	}

	response.Entity(c, http.StatusOK, todos)
}

// Get godoc
// @Summary Get a todo by ID
// @Tags todos
// @Produce json
// @Param username path string true "Owner"
// @Param id path int true "Todo ID"
// @Success 200 {object} Todo
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /users/{username}/todos/{id} [get]
// @Router /jpa/users/{username}/todos/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	todo, err := h.store.GetByID(c.Request.Context(), id)
	if err != nil {
		h.storeError(c, err)
		return
	}

	response.Entity(c, http.StatusOK, todo)
}

// Create godoc
// @Summary Create a todo
// @Description The owner is taken from the path; any id or username in the body is ignored.
// @Tags todos
// @Accept json
// @Param username path string true "Owner"
// @Param request body TodoRequest true "Todo"
// @Success 201 "Created, Location header points at the new todo"
// @Failure 400 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /users/{username}/todos [post]
// @Router /jpa/users/{username}/todos [post]
func (h *Handler) Create(c *gin.Context) {
	todo, ok := bindTodo(c)
	if !ok {
		return
	}
	todo.ID = 0
	todo.Username = c.Param("username")

	created, err := h.store.Save(c.Request.Context(), &todo)
	if err != nil {
		h.storeError(c, err)
		return
	}

	response.CreatedAt(c, locationOf(c, created.ID))
}

// Update godoc
// @Summary Replace a todo
// @Description The id and owner are taken from the path. All other fields are overwritten.
// @Tags todos
// @Accept json
// @Produce json
// @Param username path string true "Owner"
// @Param id path int true "Todo ID"
// @Param request body TodoRequest true "Todo"
// @Success 200 {object} Todo
// @Failure 400 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /users/{username}/todos/{id} [put]
// @Router /jpa/users/{username}/todos/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	todo, ok := bindTodo(c)
	if !ok {
		return
	}
	todo.ID = id
	todo.Username = c.Param("username")

	updated, err := h.store.Save(c.Request.Context(), &todo)
	if err != nil {
		h.storeError(c, err)
		return
	}

	response.Entity(c, http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete a todo
// @Tags todos
// @Param username path string true "Owner"
// @Param id path int true "Todo ID"
// @Success 204
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /users/{username}/todos/{id} [delete]
// @Router /jpa/users/{username}/todos/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.store.DeleteByID(c.Request.Context(), id); err != nil {
		h.storeError(c, err)
		return
	}

	response.NoContent(c)
}

func (h *Handler) storeError(c *gin.Context, err error) {
	if errors.Is(err, apperrors.ErrNotFound) {
		response.NotFound(c, "Todo not found", "TODO_NOT_FOUND")
		return
	}
	logger.Error("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	response.DatabaseError(c, "Todo store unavailable")
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := ParseID(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid todo ID", "INVALID_ID")
		return 0, false
	}
	return id, true
}

func bindTodo(c *gin.Context) (Todo, bool) {
	var req TodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return Todo{}, false
	}
	todo, err := req.ToTodo()
	if err != nil {
		response.ValidationFailed(c, err.Error())
		return Todo{}, false
	}
	return todo, true
}

// locationOf builds the absolute URL of a todo created through the current request.
func locationOf(c *gin.Context, id int64) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		switch p := strings.ToLower(strings.TrimSpace(strings.Split(proto, ",")[0])); p {
		case "http", "https":
			scheme = p
		}
	}
	path := strings.TrimSuffix(c.Request.URL.EscapedPath(), "/")
	return scheme + "://" + c.Request.Host + path + "/" + strconv.FormatInt(id, 10)
}
