package stub

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskmaster/internal/model"
)

func (s *Server) listUsers(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.users())
}

func (s *Server) getUser(c *gin.Context) {
	id, ok := pathID(c, "userId")
	if !ok {
		return
	}
	u, err := s.store.userByID(id)
	if err != nil {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (s *Server) getUserByEmail(c *gin.Context) {
	u, err := s.store.userByEmail(c.Param("email"))
	if err != nil {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (s *Server) updateUser(c *gin.Context) {
	var req model.UserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	u, err := s.store.updateUser(callerID(c), req)
	if err != nil {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (s *Server) deleteUser(c *gin.Context) {
	id, ok := pathID(c, "userId")
	if !ok {
		return
	}
	if err := s.store.deleteUser(id); err != nil {
		notFound(c)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) listProjects(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.allProjects())
}

func (s *Server) createProject(c *gin.Context) {
	var req model.ProjectCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	c.JSON(http.StatusCreated, s.store.createProject(callerID(c), req))
}

func (s *Server) getProject(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	p, err := s.store.project(id)
	if err != nil {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) updateProject(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req model.ProjectUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	p, err := s.store.updateProject(id, req)
	if err != nil {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) deleteProject(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := s.store.deleteProject(id); err != nil {
		notFound(c)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) setProjectCode(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req model.ProjectCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	p, err := s.store.setProjectCode(id, req.Code)
	if err != nil {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) projectsByMember(c *gin.Context) {
	id, ok := pathID(c, "memberId")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.store.projectsByMember(id))
}

func (s *Server) projectsByLeader(c *gin.Context) {
	id, ok := pathID(c, "leaderId")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.store.projectsByLeader(id))
}

func (s *Server) joinProject(c *gin.Context) {
	p, err := s.store.joinProject(callerID(c), c.Param("key"))
	if err != nil {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s *Server) removeMember(c *gin.Context) {
	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}
	memberID, ok := pathID(c, "memberId")
	if !ok {
		return
	}
	if err := s.store.removeMember(projectID, memberID); err != nil {
		notFound(c)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) listTasks(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.allTasks())
}

func (s *Server) createTask(c *gin.Context) {
	var req model.TaskCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	t, err := s.store.createTask(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown project"})
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (s *Server) getTask(c *gin.Context) {
	id, ok := pathID(c, "taskId")
	if !ok {
		return
	}
	t, err := s.store.task(id)
	if err != nil {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (s *Server) updateTask(c *gin.Context) {
	id, ok := pathID(c, "taskId")
	if !ok {
		return
	}
	var req model.TaskUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	t, err := s.store.updateTask(id, req)
	if err != nil {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (s *Server) deleteTask(c *gin.Context) {
	id, ok := pathID(c, "taskId")
	if !ok {
		return
	}
	if err := s.store.deleteTask(id); err != nil {
		notFound(c)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) assignTask(c *gin.Context) {
	id, ok := pathID(c, "taskId")
	if !ok {
		return
	}
	var req model.TaskAssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	t, err := s.store.assignTask(id, req.UserID)
	if err != nil {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (s *Server) unassignTask(c *gin.Context) {
	id, ok := pathID(c, "taskId")
	if !ok {
		return
	}
	var req model.TaskAssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	t, err := s.store.unassignTask(id, req.UserID)
	if err != nil {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (s *Server) updateTaskStatus(c *gin.Context) {
	id, ok := pathID(c, "taskId")
	if !ok {
		return
	}
	var req model.TaskStatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	t, err := s.store.updateTaskStatus(id, req.Status)
	if err != nil {
		notFound(c)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (s *Server) tasksByUser(c *gin.Context) {
	id, ok := pathID(c, "userId")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.store.tasksByUser(id))
}

func (s *Server) tasksByProject(c *gin.Context) {
	id, ok := pathID(c, "projectId")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.store.tasksByProject(id))
}

func (s *Server) tasksByProjectAndUser(c *gin.Context) {
	projectID, ok := pathID(c, "projectId")
	if !ok {
		return
	}
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.store.tasksByProjectAndUser(projectID, userID))
}

func (s *Server) tasksByProjectAndStatus(c *gin.Context) {
	id, ok := pathID(c, "projectId")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.store.tasksByProjectAndStatus(id, c.Param("status")))
}

func (s *Server) tasksByProjectAndPriority(c *gin.Context) {
	id, ok := pathID(c, "projectId")
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.store.tasksByProjectAndPriority(id, c.Param("priority")))
}

func (s *Server) myNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.notificationsFor(callerID(c)))
}
