package handlers

import (
	"net/http"

	"github.com/NaniCherry131202/Internship-Task/internal/models"
	"github.com/NaniCherry131202/Internship-Task/internal/types"
	"github.com/NaniCherry131202/Internship-Task/internal/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TaskHandler serves the flat /tasks surface: tasks addressed by task id
// alone, with the project id in the body or path. It is a thin adapter over
// the same ProjectService operations as the nested routes.
type TaskHandler struct {
	Projects ProjectService
	Logger   *zap.Logger
}

type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	ProjectID   string `json:"project_id"`
}

// CreateTask handles POST /tasks with the project id in the body. Status
// defaults to todo when omitted.
func (h *TaskHandler) CreateTask(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	var req CreateTaskRequest

	if err := ctx.BindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	status := models.TaskStatus(req.Status)

	if req.Status == "" {
		status = models.TaskStatusTodo
	}

	task, err := h.Projects.AddTask(ctx.Request.Context(), userID, req.ProjectID, req.Title, req.Description, status)

	if err != nil {
		writeServiceError(ctx, h.Logger, err, "Project not found")
		return
	}

	ctx.JSON(http.StatusCreated, types.NewTaskResponse(task))
}

// ListTasks handles GET /tasks/:project_id.
func (h *TaskHandler) ListTasks(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	tasks, err := h.Projects.ListTasks(ctx.Request.Context(), userID, ctx.Param("project_id"))

	if err != nil {
		writeServiceError(ctx, h.Logger, err, "Project not found")
		return
	}

	response := make([]types.TaskResponse, 0, len(tasks))

	for i := range tasks {
		response = append(response, types.NewTaskResponse(&tasks[i]))
	}

	ctx.JSON(http.StatusOK, response)
}

// UpdateTask handles PUT /tasks/:task_id. The parent project is resolved
// from the task itself; the replacement semantics match the nested route.
func (h *TaskHandler) UpdateTask(ctx *gin.Context) {
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

	task, err := h.Projects.UpdateTaskByID(
		ctx.Request.Context(),
		userID,
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

// DeleteTask handles DELETE /tasks/:task_id.
func (h *TaskHandler) DeleteTask(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "User not authenticated"})
		return
	}

	taskID := ctx.Param("task_id")

	if err := h.Projects.DeleteTaskByID(ctx.Request.Context(), userID, taskID); err != nil {
		writeServiceError(ctx, h.Logger, err, "Task not found")
		return
	}

	h.Logger.Info("task deleted", zap.String("task_id", taskID), zap.String("owner_id", userID))

	ctx.JSON(http.StatusOK, gin.H{"message": "Task deleted"})
}
