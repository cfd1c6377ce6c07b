package service

import (
	"context"
	"time"

	"github.com/DrInfinite/TK-WS-NoteTakingApp/internal/access"
	"github.com/DrInfinite/TK-WS-NoteTakingApp/internal/dto"
	"github.com/DrInfinite/TK-WS-NoteTakingApp/internal/entity"
	"github.com/DrInfinite/TK-WS-NoteTakingApp/internal/pkg/apperror"
	"github.com/DrInfinite/TK-WS-NoteTakingApp/internal/pkg/logger"
	"github.com/DrInfinite/TK-WS-NoteTakingApp/internal/repository/specification"
	"github.com/DrInfinite/TK-WS-NoteTakingApp/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type INotebookService interface {
	GetAll(ctx context.Context, userId uuid.UUID) (*dto.ListNotebooksResponse, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNotebookRequest) (*dto.CreateNotebookResponse, error)
	Rename(ctx context.Context, userId uuid.UUID, id uuid.UUID, req *dto.RenameNotebookRequest) error
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
}

type notebookService struct {
	uowFactory unitofwork.RepositoryFactory
	verifier   *access.Verifier
	activity   activityRecorder
}

func NewNotebookService(
	uowFactory unitofwork.RepositoryFactory,
	verifier *access.Verifier,
	publisherService IPublisherService,
	log logger.ILogger,
) INotebookService {
	return &notebookService{
		uowFactory: uowFactory,
		verifier:   verifier,
		activity:   activityRecorder{publisher: publisherService, logger: log},
	}
}

// GetAll does not check that the user exists; an unknown id yields an empty list.
func (c *notebookService) GetAll(ctx context.Context, userId uuid.UUID) (*dto.ListNotebooksResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	notebooks, err := uow.NotebookRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.CreationOrder{},
	)
	if err != nil {
		return nil, err
	}

	result := &dto.ListNotebooksResponse{Notebooks: make([]*dto.NotebookSummary, 0, len(notebooks))}
	for _, notebook := range notebooks {
		result.Notebooks = append(result.Notebooks, &dto.NotebookSummary{
			Id:    notebook.Id,
			Title: notebook.Title,
		})
	}
	return result, nil
}

func (c *notebookService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateNotebookRequest) (*dto.CreateNotebookResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	notebook := entity.Notebook{
		Id:        uuid.New(),
		UserId:    userId,
		Title:     value(req.Title),
		CreatedAt: time.Now(),
	}

	if err := uow.NotebookRepository().Create(ctx, &notebook); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	c.activity.record(ctx, dto.ActivityMessage{
		Type:       dto.ActivityNotebookCreated,
		UserId:     userId,
		NotebookId: &notebook.Id,
		OccurredAt: time.Now(),
	})

	return &dto.CreateNotebookResponse{
		Id: notebook.Id,
	}, nil
}

func (c *notebookService) Rename(ctx context.Context, userId uuid.UUID, id uuid.UUID, req *dto.RenameNotebookRequest) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	notebook, err := c.verifier.Notebook(ctx, uow, userId, id)
	if err != nil {
		return err
	}

	now := time.Now()
	notebook.Title = value(req.Title)
	notebook.UpdatedAt = &now

	updated, err := uow.NotebookRepository().Update(ctx, notebook)
	if err != nil {
		return err
	}
	if updated == 0 {
		return apperror.ErrNotebookNotFound
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	c.activity.record(ctx, dto.ActivityMessage{
		Type:       dto.ActivityNotebookRenamed,
		UserId:     userId,
		NotebookId: &notebook.Id,
		OccurredAt: now,
	})
	return nil
}

// Delete leaves the notebook's pages in place.
func (c *notebookService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	notebook, err := c.verifier.Notebook(ctx, uow, userId, id)
	if err != nil {
		return err
	}

	deleted, err := uow.NotebookRepository().Delete(ctx, notebook.Id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return apperror.ErrNotebookNotFound
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	c.activity.record(ctx, dto.ActivityMessage{
		Type:       dto.ActivityNotebookDeleted,
		UserId:     userId,
		NotebookId: &notebook.Id,
		OccurredAt: time.Now(),
	})
	return nil
}
