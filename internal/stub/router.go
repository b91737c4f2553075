package stub

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"taskmaster/internal/logger"
	"taskmaster/internal/model"
)

const tokenTTL = 7 * 24 * time.Hour

// Server exposes the stub store over the api/v1 HTTP contract.
type Server struct {
	store  *Store
	secret []byte
}

func NewServer(store *Store, secret []byte) *Server {
	return &Server{store: store, secret: secret}
}

// Router builds the gin engine with all routes mounted.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.POST("/api/v1/authentication/sign-in", s.signIn)
	r.POST("/api/v1/authentication/sign-up", s.signUp)

	auth := r.Group("/api/v1", s.jwtAuth())

	auth.GET("/users", s.listUsers)
	auth.PUT("/users", s.updateUser)
	auth.GET("/users/:userId", s.getUser)
	auth.DELETE("/users/:userId", s.deleteUser)
	auth.GET("/users/email/:email", s.getUserByEmail)

	auth.GET("/projects", s.listProjects)
	auth.POST("/projects", s.createProject)
	auth.GET("/projects/join/:key", s.joinProject)
	auth.GET("/projects/member/:memberId", s.projectsByMember)
	auth.GET("/projects/leader/:leaderId", s.projectsByLeader)
	auth.GET("/projects/:id", s.getProject)
	auth.PUT("/projects/:id", s.updateProject)
	auth.DELETE("/projects/:id", s.deleteProject)
	auth.PUT("/projects/:id/code", s.setProjectCode)
	auth.DELETE("/projects/:id/members/:memberId", s.removeMember)

	auth.GET("/tasks", s.listTasks)
	auth.POST("/tasks", s.createTask)
	auth.GET("/tasks/user/:userId", s.tasksByUser)
	auth.GET("/tasks/project/:projectId", s.tasksByProject)
	auth.GET("/tasks/project/:projectId/user/:userId", s.tasksByProjectAndUser)
	auth.GET("/tasks/project/:projectId/status/:status", s.tasksByProjectAndStatus)
	auth.GET("/tasks/project/:projectId/priority/:priority", s.tasksByProjectAndPriority)
	auth.GET("/tasks/:taskId", s.getTask)
	auth.PUT("/tasks/:taskId", s.updateTask)
	auth.DELETE("/tasks/:taskId", s.deleteTask)
	auth.PUT("/tasks/:taskId/assign", s.assignTask)
	auth.PUT("/tasks/:taskId/unassign", s.unassignTask)
	auth.PUT("/tasks/:taskId/status", s.updateTaskStatus)

	auth.GET("/notifications/me", s.myNotifications)

	return r
}

// jwtAuth verifies the bearer token and stashes the caller's user id.
func (s *Server) jwtAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if len(header) < 8 || header[:7] != "Bearer " {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		token, err := jwt.Parse(header[7:], func(t *jwt.Token) (interface{}, error) {
			return s.secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		claims := token.Claims.(jwt.MapClaims)
		uid, ok := claims["uid"].(float64)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set("user_id", int64(uid))
		c.Next()
	}
}

func (s *Server) signIn(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	u, err := s.store.authenticate(req.Email, req.Password)
	if err != nil {
		logger.Warn("stub.login.failed", "email", req.Email)
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid":   u.ID,
		"email": u.Email,
		"exp":   time.Now().Add(tokenTTL).Unix(),
	}).SignedString(s.secret)

	logger.Info("stub.login.ok", "uid", u.ID, "email", u.Email)
	c.JSON(http.StatusOK, model.LoginResponse{Token: token})
}

func (s *Server) signUp(c *gin.Context) {
	var req model.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	u, err := s.store.createUser(req)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	logger.Info("stub.signup.ok", "uid", u.ID, "email", u.Email)
	c.JSON(http.StatusCreated, u)
}

func callerID(c *gin.Context) int64 {
	return c.GetInt64("user_id")
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
}
