package handlers

import (
	"context"
	"net/http"

	"github.com/NaniCherry131202/Internship-Task/internal/models"
	"github.com/NaniCherry131202/Internship-Task/internal/types"
	"github.com/NaniCherry131202/Internship-Task/internal/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProjectService is the ownership graph as seen by the HTTP layer. Both the
// nested project routes and the flat task routes resolve to these
// operations.
type ProjectService interface {
	CreateProject(ctx context.Context, ownerID, name string) (*models.Project, error)
	ListProjects(ctx context.Context, ownerID string) ([]models.Project, error)
	GetProject(ctx context.Context, ownerID, projectID string) (*models.Project, error)
	DeleteProject(ctx context.Context, ownerID, projectID string) error
	AddTask(ctx context.Context, ownerID, projectID, title, description string, status models.TaskStatus) (*models.Task, error)
	ListTasks(ctx context.Context, ownerID, projectID string) ([]models.Task, error)
	UpdateTask(ctx context.Context, ownerID, projectID, taskID, title, description string, status models.TaskStatus) (*models.Task, error)
	UpdateTaskByID(ctx context.Context, ownerID, taskID, title, description string, status models.TaskStatus) (*models.Task, error)
	DeleteTaskByID(ctx context.Context, ownerID, taskID string) error
}

type ProjectHandler struct {
	Projects ProjectService
	Logger   *zap.Logger
}

type CreateProjectRequest struct {
	Name string `json:"name"`
}

type TaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

func (h *ProjectHandler) CreateProject(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	var req CreateProjectRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	project, err := h.Projects.CreateProject(ctx.Request.Context(), userID, req.Name)

	if err != nil {
		writeServiceError(ctx, h.Logger, err, "User not found")
		return
	}

	h.Logger.Info("project created", zap.String("project_id", project.ID), zap.String("owner_id", userID))

	ctx.JSON(http.StatusCreated, types.NewProjectResponse(project))
}

func (h *ProjectHandler) ListProjects(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	projects, err := h.Projects.ListProjects(ctx.Request.Context(), userID)

	if err != nil {
		writeServiceError(ctx, h.Logger, err, "Project not found")
		return
	}

	response := make([]types.ProjectResponse, 0, len(projects))

	for i := range projects {
		response = append(response, types.NewProjectResponse(&projects[i]))
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *ProjectHandler) GetProject(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	project, err := h.Projects.GetProject(ctx.Request.Context(), userID, ctx.Param("project_id"))

	if err != nil {
		writeServiceError(ctx, h.Logger, err, "Project not found")
		return
	}

	ctx.JSON(http.StatusOK, types.NewProjectResponse(project))
}

func (h *ProjectHandler) DeleteProject(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	projectID := ctx.Param("project_id")

	if err := h.Projects.DeleteProject(ctx.Request.Context(), userID, projectID); err != nil {
		writeServiceError(ctx, h.Logger, err, "Project not found")
		return
	}

	h.Logger.Info("project deleted", zap.String("project_id", projectID), zap.String("owner_id", userID))

	ctx.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}

// AddTask handles POST /projects/:project_id/tasks. The status field is
// required here; the flat surface defaults it instead.
func (h *ProjectHandler) AddTask(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	var req TaskRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	task, err := h.Projects.AddTask(ctx.Request.Context(), userID, ctx.Param("project_id"), req.Title, req.Description, models.TaskStatus(req.Status))

	if err != nil {
		writeServiceError(ctx, h.Logger, err, "Project not found")
		return
	}

	ctx.JSON(http.StatusCreated, types.NewTaskResponse(task))
}

// UpdateTask handles PUT /projects/:project_id/tasks/:task_id. Title,
// description and status fully replace the stored values.
func (h *ProjectHandler) UpdateTask(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	var req TaskRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	task, err := h.Projects.UpdateTask(
		ctx.Request.Context(),
		userID,
		ctx.Param("project_id"),
		ctx.Param("task_id"),
		req.Title,
		req.Description,
		models.TaskStatus(req.Status),
	)

	if err != nil {
		writeServiceError(ctx, h.Logger, err, "Task not found")
		return
	}

	ctx.JSON(http.StatusOK, types.NewTaskResponse(task))
}
