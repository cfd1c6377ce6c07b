package controller

import (
	"github.com/DrInfinite/TK-WS-NoteTakingApp/internal/dto"
	"github.com/DrInfinite/TK-WS-NoteTakingApp/internal/pkg/apperror"
	"github.com/DrInfinite/TK-WS-NoteTakingApp/internal/pkg/serverutils"
	"github.com/DrInfinite/TK-WS-NoteTakingApp/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	SignIn(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type userController struct {
	service service.IUserService
}

func NewUserController(service service.IUserService) IUserController {
	return &userController{service: service}
}

func (c *userController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/users")
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Post("/signin", c.SignIn)
	h.Get("/:id", c.Show)
	h.Delete("/:id", c.Delete)
}

func (c *userController) GetAll(ctx *fiber.Ctx) error {
	res, err := c.service.GetAll(ctx.UserContext())
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *userController) Show(ctx *fiber.Ctx) error {
	id, ok := serverutils.ParamID(ctx, "id")
	if !ok {
		return apperror.ErrUserNotFound
	}

	res, err := c.service.Show(ctx.UserContext(), id)
	if err != nil {
		return err
	}

	return ctx.JSON(dto.GetUserResponse{User: res})
}

func (c *userController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Create(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(res)
}

func (c *userController) SignIn(ctx *fiber.Ctx) error {
	var req dto.SignInRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.SignIn(ctx.UserContext(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(dto.GetUserResponse{User: res})
}

func (c *userController) Delete(ctx *fiber.Ctx) error {
	id, ok := serverutils.ParamID(ctx, "id")
	if !ok {
		return apperror.ErrUserNotFound
	}

	if err := c.service.Delete(ctx.UserContext(), id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.MessageResponse("User deleted successfully"))
}
