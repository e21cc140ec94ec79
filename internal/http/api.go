package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"todo-server/internal/auth"
	"todo-server/internal/domain"
	"todo-server/internal/repository"
	"todo-server/internal/service"
)

// Handler wires HTTP routes to domain services.
type Handler struct {
	auth   service.AuthService
	todos  service.TodoService
	tokens *auth.TokenIssuer
	users  repository.UserRepository
}

func NewHandler(authSvc service.AuthService, todos service.TodoService, tokens *auth.TokenIssuer, users repository.UserRepository) *Handler {
	return &Handler{
		auth:   authSvc,
		todos:  todos,
		tokens: tokens,
		users:  users,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	v1 := router.Group("/api/v1")

	authRoutes := v1.Group("/auth")
	{
		authRoutes.POST("/sign-up", h.signUp)
		authRoutes.POST("/sign-in", h.signIn)
	}

	todoRoutes := v1.Group("/todos")
	todoRoutes.Use(RequireIdentity(h.tokens, h.users))
	{
		todoRoutes.GET("", h.listTodos)
		todoRoutes.POST("", h.createTodo)
		todoRoutes.GET("/:id", h.getTodo)
		todoRoutes.PUT("/:id", h.updateTodo)
		todoRoutes.DELETE("/:id", h.deleteTodo)
	}
}

type signUpRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type signInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type tokenResponse struct {
	AccessToken string `json:"accessToken"`
}

func (h *Handler) signUp(c *gin.Context) {
	var req signUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.auth.SignUp(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, tokenResponse{AccessToken: token})
}

func (h *Handler) signIn(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.auth.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) || errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, tokenResponse{AccessToken: token})
}

type createTodoRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}

type updateTodoRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

// validate checks the provided subset of fields. Binding tags cannot
// distinguish an absent field from an explicit empty value, so the
// checks are spelled out here.
func (r updateTodoRequest) validate() []string {
	var errs []string
	if r.Title != nil && *r.Title == "" {
		errs = append(errs, "title must not be empty")
	}
	if r.Description != nil && *r.Description == "" {
		errs = append(errs, "description must not be empty")
	}
	if r.Status != nil && !domain.TodoStatus(*r.Status).Valid() {
		errs = append(errs, "status must be PENDING or COMPLETED")
	}
	return errs
}

func (h *Handler) listTodos(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		abortUnauthorized(c, "user not found")
		return
	}

	todos, err := h.todos.List(c.Request.Context(), identity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]TodoResponse, len(todos))
	for i := range todos {
		resp[i] = todoToResponse(todos[i])
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) createTodo(c *gin.Context) {
	identity, ok := currentIdentity(c)
	if !ok {
		abortUnauthorized(c, "user not found")
		return
	}

	var req createTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	todo, err := h.todos.Create(c.Request.Context(), identity, req.Title, req.Description)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, todoToResponse(*todo))
}

func (h *Handler) getTodo(c *gin.Context) {
	todo, err := h.todos.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, todoToResponse(*todo))
}

func (h *Handler) updateTodo(c *gin.Context) {
	var req updateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if errs := req.validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": strings.Join(errs, "; ")})
		return
	}

	update := service.TodoUpdate{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Status != nil {
		status := domain.TodoStatus(*req.Status)
		update.Status = &status
	}

	todo, err := h.todos.Update(c.Request.Context(), c.Param("id"), update)
	if err != nil {
		if errors.Is(err, service.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, todoToResponse(*todo))
}

func (h *Handler) deleteTodo(c *gin.Context) {
	id := c.Param("id")
	if err := h.todos.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}

type TodoResponse struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Status      domain.TodoStatus `json:"status"`
	OwnerID     string            `json:"ownerId"`
	CreatedAt   string            `json:"createdAt"`
	UpdatedAt   string            `json:"updatedAt"`
}

func todoToResponse(todo domain.Todo) TodoResponse {
	return TodoResponse{
		ID:          todo.ID,
		Title:       todo.Title,
		Description: todo.Description,
		Status:      todo.Status,
		OwnerID:     todo.OwnerID,
		CreatedAt:   todo.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   todo.UpdatedAt.Format(time.RFC3339),
	}
}
