package repository

import (
	"context"
	"errors"

	"github.com/NaniCherry131202/Internship-Task/internal/models"
	"github.com/NaniCherry131202/Internship-Task/internal/service"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormProjectRepository struct {
	db *gorm.DB
}

func NewGormProjectRepository(db *gorm.DB) *GormProjectRepository {
	return &GormProjectRepository{db: db}
}

func (r *GormProjectRepository) UserExists(ctx context.Context, id string) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (r *GormProjectRepository) CountProjectsByOwner(ctx context.Context, ownerID string) (int64, error) {
	var count int64

	err := r.db.WithContext(ctx).Model(&models.Project{}).Where("owner_id = ?", ownerID).Count(&count).Error

	if err != nil {
		return 0, err
	}

	return count, nil
}

// CreateProject inserts the project after re-checking the owner's quota
// under a row lock on the owner. Two concurrent creates for the same owner
// serialize on that lock, so the count cannot be stale when the insert runs.
func (r *GormProjectRepository) CreateProject(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var owner models.User

		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", project.OwnerID).First(&owner).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return service.ErrNotFound
		}
		if err != nil {
			return err
		}

		var count int64

		if err := tx.Model(&models.Project{}).Where("owner_id = ?", project.OwnerID).Count(&count).Error; err != nil {
			return err
		}

		if count >= models.MaxProjectsPerUser {
			return service.ErrProjectQuota
		}

		return tx.Create(project).Error
	})
}

func (r *GormProjectRepository) ProjectsByOwner(ctx context.Context, ownerID string) ([]models.Project, error) {
	var projects []models.Project

	err := r.db.WithContext(ctx).
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("tasks.created_at ASC")
		}).
		Where("owner_id = ?", ownerID).
		Order("created_at ASC").
		Find(&projects).Error

	if err != nil {
		return nil, err
	}

	return projects, nil
}

func (r *GormProjectRepository) ProjectByID(ctx context.Context, id string) (*models.Project, error) {
	var project models.Project

	err := r.db.WithContext(ctx).Where("id = ?", id).First(&project).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &project, nil
}

func (r *GormProjectRepository) ProjectWithTasks(ctx context.Context, id string) (*models.Project, error) {
	var project models.Project

	err := r.db.WithContext(ctx).
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("tasks.created_at ASC")
		}).
		Where("id = ?", id).
		First(&project).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &project, nil
}

// DeleteProjectCascade removes the project's tasks and the project itself
// in one transaction. Children go first so a failed step rolls back to a
// state where the project and its tasks are all still present.
func (r *GormProjectRepository) DeleteProjectCascade(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.Task{}).Error; err != nil {
			return err
		}

		return tx.Where("id = ?", id).Delete(&models.Project{}).Error
	})
}

func (r *GormProjectRepository) CreateTask(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *GormProjectRepository) TaskByID(ctx context.Context, id string) (*models.Task, error) {
	var task models.Task

	err := r.db.WithContext(ctx).Where("id = ?", id).First(&task).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &task, nil
}

func (r *GormProjectRepository) TasksByProject(ctx context.Context, projectID string) ([]models.Task, error) {
	var tasks []models.Task

	err := r.db.WithContext(ctx).Where("project_id = ?", projectID).Order("created_at ASC").Find(&tasks).Error

	if err != nil {
		return nil, err
	}

	return tasks, nil
}

func (r *GormProjectRepository) SaveTask(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Save(task).Error
}

func (r *GormProjectRepository) DeleteTask(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Task{}).Error
}
