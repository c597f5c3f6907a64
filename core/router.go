package core

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// NewRouter constructs the Gin engine with routes wired.
// Route protection mirrors the trust boundary exactly: user listing and
// deletion are admin-gated, user get/update are strict self-match with no
// admin bypass, and task routes are owner-only.
func NewRouter(cfg Config, tokens *TokenService, accounts *AccountService, users UserRepository, tasks TaskRepository) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(Recovery())
	r.Use(CORSMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	protect := Authenticate(tokens, users)

	api := r.Group("/api/v1")

	user := api.Group("/user")
	{
		user.POST("/register", func(c *gin.Context) {
			var req struct {
				Name     string `json:"name"`
				Email    string `json:"email"`
				Password string `json:"password"`
			}
			if err := c.ShouldBindJSON(&req); err != nil {
				respondError(c, http.StatusBadRequest, "invalid json")
				return
			}

			u, err := accounts.Register(c.Request.Context(), req.Name, req.Email, req.Password)
			if err != nil {
				switch {
				case errors.Is(err, ErrEmailTaken):
					respondError(c, http.StatusConflict, "User already exists")
				case errors.Is(err, ErrMissingFields):
					respondError(c, http.StatusBadRequest, "Please provide all fields")
				case errors.Is(err, ErrInvalidFields):
					respondError(c, http.StatusBadRequest, "Please enter correct fields")
				default:
					respondError(c, http.StatusInternalServerError, "failed to register user")
				}
				return
			}

			c.JSON(http.StatusCreated, gin.H{"success": true, "user": u})
		})

		user.POST("/login", func(c *gin.Context) {
			var req struct {
				Email    string `json:"email"`
				Password string `json:"password"`
			}
			if err := c.ShouldBindJSON(&req); err != nil {
				respondError(c, http.StatusBadRequest, "invalid json")
				return
			}

			u, token, err := accounts.Login(c.Request.Context(), req.Email, req.Password)
			if err != nil {
				switch {
				case errors.Is(err, ErrMissingFields):
					respondError(c, http.StatusBadRequest, "Please provide all fields")
				case errors.Is(err, ErrInvalidCredentials):
					respondError(c, http.StatusBadRequest, "Invalid email or password")
				default:
					respondError(c, http.StatusInternalServerError, "failed to login")
				}
				return
			}

			c.JSON(http.StatusOK, gin.H{"success": true, "user": u, "token": token})
		})

		user.GET("", protect, AdminOnly(), func(c *gin.Context) {
			list, err := users.List(c.Request.Context())
			if err != nil {
				respondError(c, http.StatusInternalServerError, "failed to list users")
				return
			}
			c.JSON(http.StatusOK, gin.H{"success": true, "users": list})
		})

		user.GET("/:id", protect, func(c *gin.Context) {
			id := strings.TrimSpace(c.Param("id"))
			if id == "" {
				respondError(c, http.StatusBadRequest, "User not found")
				return
			}

			// Strict self-match; admins get no bypass on this route.
			p, _ := principalFrom(c)
			if id != p.ID {
				respondError(c, http.StatusUnauthorized, "Not Authorized")
				return
			}

			u, err := users.FindByID(c.Request.Context(), id)
			if err != nil {
				if errors.Is(err, ErrNotFound) {
					respondError(c, http.StatusNotFound, "User not found")
					return
				}
				respondError(c, http.StatusInternalServerError, "failed to load user")
				return
			}
			c.JSON(http.StatusOK, gin.H{"success": true, "user": u})
		})

		user.PUT("/:id", protect, func(c *gin.Context) {
			id := strings.TrimSpace(c.Param("id"))
			if id == "" {
				respondError(c, http.StatusBadRequest, "User not found")
				return
			}

			p, _ := principalFrom(c)
			if id != p.ID {
				respondError(c, http.StatusUnauthorized, "Not Authorized")
				return
			}

			var req struct {
				Name  string `json:"name"`
				Email string `json:"email"`
			}
			if err := c.ShouldBindJSON(&req); err != nil {
				respondError(c, http.StatusBadRequest, "invalid json")
				return
			}

			ctx := c.Request.Context()
			current, err := users.FindByID(ctx, id)
			if err != nil {
				respondError(c, http.StatusUnauthorized, "Not Authorized")
				return
			}

			// Absent fields keep their stored values.
			name := firstNonEmpty(req.Name, current.Name)
			email := firstNonEmpty(req.Email, current.Email)
			if err := users.UpdateProfile(ctx, id, name, email); err != nil {
				respondError(c, http.StatusInternalServerError, "failed to update user")
				return
			}
			c.JSON(http.StatusCreated, gin.H{"success": true, "message": "User updated successfully"})
		})

		user.DELETE("/:id", protect, AdminOnly(), func(c *gin.Context) {
			id := strings.TrimSpace(c.Param("id"))
			if id == "" {
				respondError(c, http.StatusBadRequest, "User not found")
				return
			}

			ctx := c.Request.Context()
			u, err := users.FindByID(ctx, id)
			if err != nil {
				respondError(c, http.StatusNotFound, "User not found")
				return
			}
			if err := users.Delete(ctx, id); err != nil {
				if errors.Is(err, ErrNotFound) {
					respondError(c, http.StatusNotFound, "User not found")
					return
				}
				respondError(c, http.StatusInternalServerError, "failed to delete user")
				return
			}
			c.JSON(http.StatusAccepted, gin.H{
				"success": true,
				"message": "User deleted successfully with an email " + u.Email,
			})
		})
	}

	task := api.Group("/task")
	task.Use(protect)
	{
		task.POST("", func(c *gin.Context) {
			var req struct {
				Title       string `json:"title"`
				Description string `json:"description"`
				Status      string `json:"status"`
			}
			if err := c.ShouldBindJSON(&req); err != nil {
				respondError(c, http.StatusBadRequest, "invalid json")
				return
			}
			if req.Title == "" || req.Description == "" || req.Status == "" {
				respondError(c, http.StatusBadRequest, "Please provide all the required fields")
				return
			}

			p, _ := principalFrom(c)
			t, err := tasks.Create(c.Request.Context(), uuid.NewString(), p.ID, req.Title, req.Description, req.Status)
			if err != nil {
				respondError(c, http.StatusInternalServerError, "failed to create task")
				return
			}
			c.JSON(http.StatusCreated, gin.H{"success": true, "task": t})
		})

		task.GET("", func(c *gin.Context) {
			p, _ := principalFrom(c)
			list, err := tasks.ListByOwner(c.Request.Context(), p.ID)
			if err != nil {
				respondError(c, http.StatusInternalServerError, "failed to list tasks")
				return
			}
			c.JSON(http.StatusOK, gin.H{"success": true, "tasks": list})
		})

		task.GET("/:id", func(c *gin.Context) {
			id := strings.TrimSpace(c.Param("id"))
			if id == "" {
				respondError(c, http.StatusNotFound, "Task not found")
				return
			}

			p, _ := principalFrom(c)
			t, err := tasks.FindByOwner(c.Request.Context(), id, p.ID)
			if err != nil {
				if errors.Is(err, ErrNotFound) {
					respondError(c, http.StatusNotFound, "Task not found")
					return
				}
				respondError(c, http.StatusInternalServerError, "failed to load task")
				return
			}
			c.JSON(http.StatusOK, gin.H{"success": true, "task": t})
		})

		task.PUT("/:id", func(c *gin.Context) {
			id := strings.TrimSpace(c.Param("id"))
			if id == "" {
				respondError(c, http.StatusNotFound, "Task not found")
				return
			}

			var req struct {
				Title       string `json:"title"`
				Description string `json:"description"`
				Status      string `json:"status"`
			}
			if err := c.ShouldBindJSON(&req); err != nil {
				respondError(c, http.StatusBadRequest, "invalid json")
				return
			}

			ctx := c.Request.Context()
			p, _ := principalFrom(c)
			current, err := tasks.FindByOwner(ctx, id, p.ID)
			if err != nil {
				if errors.Is(err, ErrNotFound) {
					respondError(c, http.StatusNotFound, "Task not found")
					return
				}
				respondError(c, http.StatusInternalServerError, "failed to load task")
				return
			}

			title := firstNonEmpty(req.Title, current.Title)
			description := firstNonEmpty(req.Description, current.Description)
			status := firstNonEmpty(req.Status, current.Status)
			if err := tasks.Update(ctx, id, p.ID, title, description, status); err != nil {
				if errors.Is(err, ErrNotFound) {
					respondError(c, http.StatusNotFound, "Task not found")
					return
				}
				respondError(c, http.StatusInternalServerError, "failed to update task")
				return
			}
			c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Task updated successfully"})
		})

		task.DELETE("/:id", func(c *gin.Context) {
			id := strings.TrimSpace(c.Param("id"))
			if id == "" {
				respondError(c, http.StatusNotFound, "Task not found")
				return
			}

			p, _ := principalFrom(c)
			if err := tasks.Delete(c.Request.Context(), id, p.ID); err != nil {
				if errors.Is(err, ErrNotFound) {
					respondError(c, http.StatusNotFound, "Task not found")
					return
				}
				respondError(c, http.StatusInternalServerError, "failed to delete task")
				return
			}
			c.JSON(http.StatusAccepted, gin.H{"success": true, "message": "Task deleted successfully"})
		})
	}

	return r
}
