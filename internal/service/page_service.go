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

type IPageService interface {
	GetAll(ctx context.Context, userId, notebookId uuid.UUID) (*dto.NotebookPagesResponse, error)
	Create(ctx context.Context, userId, notebookId uuid.UUID, req *dto.CreatePageRequest) (*dto.CreatePageResponse, error)
	Show(ctx context.Context, userId, notebookId, id uuid.UUID) (*dto.PageResponse, error)
	Update(ctx context.Context, userId, notebookId, id uuid.UUID, req *dto.UpdatePageRequest) (*dto.PageResponse, error)
	Delete(ctx context.Context, userId, notebookId, id uuid.UUID) error
}

type pageService struct {
	uowFactory unitofwork.RepositoryFactory
	verifier   *access.Verifier
	activity   activityRecorder
}

func NewPageService(
	uowFactory unitofwork.RepositoryFactory,
	verifier *access.Verifier,
	publisherService IPublisherService,
	log logger.ILogger,
) IPageService {
	return &pageService{
		uowFactory: uowFactory,
		verifier:   verifier,
		activity:   activityRecorder{publisher: publisherService, logger: log},
	}
}

func (c *pageService) GetAll(ctx context.Context, userId, notebookId uuid.UUID) (*dto.NotebookPagesResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	notebook, err := c.verifier.Notebook(ctx, uow, userId, notebookId)
	if err != nil {
		return nil, err
	}

	pages, err := uow.PageRepository().FindAll(ctx,
		specification.ByNotebookID{NotebookID: notebook.Id},
		specification.CreationOrder{},
	)
	if err != nil {
		return nil, err
	}

	result := &dto.NotebookPagesResponse{
		Id:    notebook.Id,
		Title: notebook.Title,
		Pages: make([]*dto.PageResponse, 0, len(pages)),
	}
	for _, page := range pages {
		result.Pages = append(result.Pages, toPageResponse(page))
	}
	return result, nil
}

func (c *pageService) Create(ctx context.Context, userId, notebookId uuid.UUID, req *dto.CreatePageRequest) (*dto.CreatePageResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	notebook, err := c.verifier.Notebook(ctx, uow, userId, notebookId)
	if err != nil {
		return nil, err
	}

	page := entity.Page{
		Id:         uuid.New(),
		NotebookId: notebook.Id,
		Title:      value(req.Title),
		Content:    value(req.Content),
		CreatedAt:  time.Now(),
	}

	if err := uow.PageRepository().Create(ctx, &page); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	c.activity.record(ctx, dto.ActivityMessage{
		Type:       dto.ActivityPageCreated,
		UserId:     userId,
		NotebookId: &notebook.Id,
		PageId:     &page.Id,
		OccurredAt: time.Now(),
	})

	return &dto.CreatePageResponse{
		Id: page.Id,
	}, nil
}

func (c *pageService) Show(ctx context.Context, userId, notebookId, id uuid.UUID) (*dto.PageResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)

	_, page, err := c.verifier.Page(ctx, uow, userId, notebookId, id)
	if err != nil {
		return nil, err
	}

	return toPageResponse(page), nil
}

// Update overwrites both title and content.
func (c *pageService) Update(ctx context.Context, userId, notebookId, id uuid.UUID, req *dto.UpdatePageRequest) (*dto.PageResponse, error) {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	notebook, page, err := c.verifier.Page(ctx, uow, userId, notebookId, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	page.Title = value(req.Title)
	page.Content = value(req.Content)
	page.UpdatedAt = &now

	updated, err := uow.PageRepository().Update(ctx, page)
	if err != nil {
		return nil, err
	}
	if updated == 0 {
		return nil, apperror.ErrPageNotFound
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	c.activity.record(ctx, dto.ActivityMessage{
		Type:       dto.ActivityPageUpdated,
		UserId:     userId,
		NotebookId: &notebook.Id,
		PageId:     &page.Id,
		OccurredAt: now,
	})

	return toPageResponse(page), nil
}

func (c *pageService) Delete(ctx context.Context, userId, notebookId, id uuid.UUID) error {
	uow := c.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	notebook, page, err := c.verifier.Page(ctx, uow, userId, notebookId, id)
	if err != nil {
		return err
	}

	deleted, err := uow.PageRepository().Delete(ctx, page.Id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return apperror.ErrPageNotFound
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	c.activity.record(ctx, dto.ActivityMessage{
		Type:       dto.ActivityPageDeleted,
		UserId:     userId,
		NotebookId: &notebook.Id,
		PageId:     &page.Id,
		OccurredAt: time.Now(),
	})
	return nil
}

func toPageResponse(page *entity.Page) *dto.PageResponse {
	return &dto.PageResponse{
		Id:      page.Id,
		Title:   page.Title,
		Content: page.Content,
	}
}
