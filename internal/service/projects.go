package service

import (
	"context"
	"strings"

	"github.com/NaniCherry131202/Internship-Task/internal/models"
)

// ProjectRepository defines the persistence operations required by the
// project service. Lookup methods return (nil, nil) when no row matches.
type ProjectRepository interface {
	UserExists(ctx context.Context, id string) (bool, error)
	CountProjectsByOwner(ctx context.Context, ownerID string) (int64, error)
	// CreateProject re-checks the owner's project count inside a serialized
	// transaction and returns ErrProjectQuota if the insert would exceed the
	// limit, so two concurrent creates cannot both slip past the check.
	CreateProject(ctx context.Context, project *models.Project) error
	ProjectsByOwner(ctx context.Context, ownerID string) ([]models.Project, error)
	ProjectByID(ctx context.Context, id string) (*models.Project, error)
	ProjectWithTasks(ctx context.Context, id string) (*models.Project, error)
	// DeleteProjectCascade removes the project and all its tasks as one
	// transaction.
	DeleteProjectCascade(ctx context.Context, id string) error

	CreateTask(ctx context.Context, task *models.Task) error
	TaskByID(ctx context.Context, id string) (*models.Task, error)
	TasksByProject(ctx context.Context, projectID string) ([]models.Task, error)
	SaveTask(ctx context.Context, task *models.Task) error
	DeleteTask(ctx context.Context, id string) error
}

// ProjectService owns the project/task hierarchy rules. Every operation on a
// project or task applies the same authorization check: resolve the resource
// first (absent resources are ErrNotFound), then compare the owning user id
// with the caller's id as opaque strings (mismatches are ErrForbidden).
// Existence is checked before ownership, so the two outcomes stay
// distinguishable to the gate but not combinable by a probing caller.
type ProjectService struct {
	repo ProjectRepository
}

func NewProjectService(repo ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

// ownedProject resolves a project and applies the ownership gate.
func (s *ProjectService) ownedProject(ctx context.Context, ownerID, projectID string) (*models.Project, error) {
	project, err := s.repo.ProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, ErrProjectNotFound
	}
	if project.OwnerID != ownerID {
		return nil, ErrForbidden
	}
	return project, nil
}

func (s *ProjectService) CreateProject(ctx context.Context, ownerID, name string) (*models.Project, error) {
	name = strings.TrimSpace(name)

	if name == "" {
		return nil, validationErr("Project name is required and must be a non-empty string")
	}

	exists, err := s.repo.UserExists(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound
	}

	count, err := s.repo.CountProjectsByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if count >= models.MaxProjectsPerUser {
		return nil, ErrProjectQuota
	}

	project := &models.Project{
		Name:    name,
		OwnerID: ownerID,
	}

	if err := s.repo.CreateProject(ctx, project); err != nil {
		return nil, err
	}

	return project, nil
}

// ListProjects returns the owner's projects in creation order, tasks
// included.
func (s *ProjectService) ListProjects(ctx context.Context, ownerID string) ([]models.Project, error) {
	return s.repo.ProjectsByOwner(ctx, ownerID)
}

func (s *ProjectService) GetProject(ctx context.Context, ownerID, projectID string) (*models.Project, error) {
	if _, err := s.ownedProject(ctx, ownerID, projectID); err != nil {
		return nil, err
	}

	project, err := s.repo.ProjectWithTasks(ctx, projectID)
	if err != nil {
		return nil, err
	}
	// The project can vanish between the gate lookup and this one.
	if project == nil {
		return nil, ErrProjectNotFound
	}

	return project, nil
}

// DeleteProject removes the project and all its tasks. The repository
// performs the cascade in a single transaction so a crash cannot leave a
// task whose project is gone.
func (s *ProjectService) DeleteProject(ctx context.Context, ownerID, projectID string) error {
	if _, err := s.ownedProject(ctx, ownerID, projectID); err != nil {
		return err
	}
	return s.repo.DeleteProjectCascade(ctx, projectID)
}

func (s *ProjectService) AddTask(ctx context.Context, ownerID, projectID, title, description string, status models.TaskStatus) (*models.Task, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)

	if title == "" {
		return nil, validationErr("Task title is required and must be a non-empty string")
	}
	if description == "" {
		return nil, validationErr("Task description is required and must be a non-empty string")
	}
	if !models.ValidTaskStatus(status) {
		return nil, validationErr("Status must be one of: todo, inprogress, completed")
	}

	project, err := s.ownedProject(ctx, ownerID, projectID)
	if err != nil {
		return nil, err
	}

	task := &models.Task{
		Title:       title,
		Description: description,
		Status:      status,
		ProjectID:   project.ID,
	}

	if err := s.repo.CreateTask(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

// ListTasks returns the tasks of a project the caller owns.
func (s *ProjectService) ListTasks(ctx context.Context, ownerID, projectID string) ([]models.Task, error) {
	if _, err := s.ownedProject(ctx, ownerID, projectID); err != nil {
		return nil, err
	}
	return s.repo.TasksByProject(ctx, projectID)
}

// UpdateTask replaces a task's title, description and status. All three
// fields are required; there is no partial update. The task must belong to
// the addressed project, otherwise ErrTaskMismatch.
func (s *ProjectService) UpdateTask(ctx context.Context, ownerID, projectID, taskID, title, description string, status models.TaskStatus) (*models.Task, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)

	if title == "" {
		return nil, validationErr("Task title is required and must be a non-empty string")
	}
	if description == "" {
		return nil, validationErr("Task description is required and must be a non-empty string")
	}
	if !models.ValidTaskStatus(status) {
		return nil, validationErr("Status must be one of: todo, inprogress, completed")
	}

	project, err := s.ownedProject(ctx, ownerID, projectID)
	if err != nil {
		return nil, err
	}

	task, err := s.repo.TaskByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	if task.ProjectID != project.ID {
		return nil, ErrTaskMismatch
	}

	task.Title = title
	task.Description = description
	task.Status = status

	if err := s.repo.SaveTask(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

func (s *ProjectService) DeleteTask(ctx context.Context, ownerID, projectID, taskID string) error {
	project, err := s.ownedProject(ctx, ownerID, projectID)
	if err != nil {
		return err
	}

	task, err := s.repo.TaskByID(ctx, taskID)
	if err != nil {
		return err
	}
	if task == nil {
		return ErrTaskNotFound
	}
	if task.ProjectID != project.ID {
		return ErrTaskMismatch
	}

	return s.repo.DeleteTask(ctx, taskID)
}

// resolveTaskProject finds the parent project id for a task addressed by id
// alone. Used by the flat /tasks surface so both addressing schemes run
// through the same operations.
func (s *ProjectService) resolveTaskProject(ctx context.Context, taskID string) (string, error) {
	task, err := s.repo.TaskByID(ctx, taskID)
	if err != nil {
		return "", err
	}
	if task == nil {
		return "", ErrTaskNotFound
	}
	return task.ProjectID, nil
}

// UpdateTaskByID updates a task addressed without its project id.
func (s *ProjectService) UpdateTaskByID(ctx context.Context, ownerID, taskID, title, description string, status models.TaskStatus) (*models.Task, error) {
	projectID, err := s.resolveTaskProject(ctx, taskID)
	if err != nil {
		return nil, err
	}
	return s.UpdateTask(ctx, ownerID, projectID, taskID, title, description, status)
}

// DeleteTaskByID deletes a task addressed without its project id.
func (s *ProjectService) DeleteTaskByID(ctx context.Context, ownerID, taskID string) error {
	projectID, err := s.resolveTaskProject(ctx, taskID)
	if err != nil {
		return err
	}
	return s.DeleteTask(ctx, ownerID, projectID, taskID)
}
