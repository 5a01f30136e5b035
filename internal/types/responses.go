package types

import "github.com/NaniCherry131202/Internship-Task/internal/models"

// UserResponse is the outward shape of a user. The password hash is never
// part of any response.
type UserResponse struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

type TaskResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	ProjectID   string `json:"project_id"`
}

type ProjectResponse struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	OwnerID string         `json:"owner_id"`
	Tasks   []TaskResponse `json:"tasks"`
}

func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:      user.ID,
		Email:   user.Email,
		Name:    user.Name,
		Country: user.Country,
	}
}

func NewTaskResponse(task *models.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		ProjectID:   task.ProjectID,
	}
}

func NewProjectResponse(project *models.Project) ProjectResponse {
	tasks := make([]TaskResponse, 0, len(project.Tasks))

	for i := range project.Tasks {
		tasks = append(tasks, NewTaskResponse(&project.Tasks[i]))
	}

	return ProjectResponse{
		ID:      project.ID,
		Name:    project.Name,
		OwnerID: project.OwnerID,
		Tasks:   tasks,
	}
}
