package service

import (
	"context"
	"time"

	"github.com/DrInfinite/TK-WS-NoteTakingApp/internal/dto"
	"github.com/DrInfinite/TK-WS-NoteTakingApp/internal/entity"
	"github.com/DrInfinite/TK-WS-NoteTakingApp/internal/pkg/apperror"
	"github.com/DrInfinite/TK-WS-NoteTakingApp/internal/pkg/logger"
	"github.com/DrInfinite/TK-WS-NoteTakingApp/internal/repository/specification"
	"github.com/DrInfinite/TK-WS-NoteTakingApp/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IUserService interface {
	GetAll(ctx context.Context) (*dto.ListUsersResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error)
	Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error)
	SignIn(ctx context.Context, req *dto.SignInRequest) (*dto.UserResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
	activity   activityRecorder
	logger     logger.ILogger
}

func NewUserService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	log logger.ILogger,
) IUserService {
	return &userService{
		uowFactory: uowFactory,
		activity:   activityRecorder{publisher: publisherService, logger: log},
		logger:     log,
	}
}

func (s *userService) GetAll(ctx context.Context) (*dto.ListUsersResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	users, err := uow.UserRepository().FindAll(ctx, specification.CreationOrder{})
	if err != nil {
		return nil, err
	}

	res := &dto.ListUsersResponse{Users: make([]*dto.UserSummary, 0, len(users))}
	for _, user := range users {
		res.Users = append(res.Users, &dto.UserSummary{Id: user.Id, Name: user.Name})
	}
	return res, nil
}

func (s *userService) Show(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrUserNotFound
	}

	return toUserResponse(user), nil
}

// Create does not check name uniqueness; two users may share a name.
func (s *userService) Create(ctx context.Context, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	user := entity.User{
		Id:        uuid.New(),
		Name:      value(req.Name),
		Password:  value(req.Password),
		CreatedAt: time.Now(),
	}

	if err := uow.UserRepository().Create(ctx, &user); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.activity.record(ctx, dto.ActivityMessage{
		Type:       dto.ActivityUserCreated,
		UserId:     user.Id,
		OccurredAt: time.Now(),
	})

	return toUserResponse(&user), nil
}

// SignIn returns the first user whose name and password both match exactly.
func (s *userService) SignIn(ctx context.Context, req *dto.SignInRequest) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx,
		specification.ByCredentials{Name: value(req.Name), Password: value(req.Password)},
		specification.CreationOrder{},
	)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrUserNotFound
	}

	return toUserResponse(user), nil
}

// Delete removes only the user row. Notebooks owned by the user are left in place.
func (s *userService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	deleted, err := uow.UserRepository().Delete(ctx, id)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return apperror.ErrUserNotFound
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	s.activity.record(ctx, dto.ActivityMessage{
		Type:       dto.ActivityUserDeleted,
		UserId:     id,
		OccurredAt: time.Now(),
	})
	return nil
}

func toUserResponse(user *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		Id:       user.Id,
		Name:     user.Name,
		Password: user.Password,
	}
}
