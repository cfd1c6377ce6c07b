package controller

import (
	"github.com/DrInfinite/TK-WS-NoteTakingApp/internal/dto"
	"github.com/DrInfinite/TK-WS-NoteTakingApp/internal/pkg/apperror"
	"github.com/DrInfinite/TK-WS-NoteTakingApp/internal/pkg/serverutils"
	"github.com/DrInfinite/TK-WS-NoteTakingApp/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IPageController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type pageController struct {
	service service.IPageService
}

func NewPageController(service service.IPageService) IPageController {
	return &pageController{service: service}
}

func (c *pageController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/users/:userId/notebooks/:notebookId/pages")
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Get("/:pageId", c.Show)
	h.Put("/:pageId", c.Update)
	h.Delete("/:pageId", c.Delete)
}

// notebookParams reads the owner and notebook ids. A malformed id cannot name
// an owned notebook, so it is reported the same way as a missing one.
func notebookParams(ctx *fiber.Ctx) (uuid.UUID, uuid.UUID, error) {
	userId, okUser := serverutils.ParamID(ctx, "userId")
	notebookId, okNotebook := serverutils.ParamID(ctx, "notebookId")
	if !okUser || !okNotebook {
		return uuid.Nil, uuid.Nil, apperror.ErrNotebookNotFound
	}
	return userId, notebookId, nil
}

func pageParams(ctx *fiber.Ctx) (uuid.UUID, uuid.UUID, uuid.UUID, error) {
	userId, notebookId, err := notebookParams(ctx)
	if err != nil {
		return uuid.Nil, uuid.Nil, uuid.Nil, err
	}
	pageId, ok := serverutils.ParamID(ctx, "pageId")
	if !ok {
		return uuid.Nil, uuid.Nil, uuid.Nil, apperror.ErrPageNotFound
	}
	return userId, notebookId, pageId, nil
}

func (c *pageController) GetAll(ctx *fiber.Ctx) error {
	userId, notebookId, err := notebookParams(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GetAll(ctx.UserContext(), userId, notebookId)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *pageController) Create(ctx *fiber.Ctx) error {
	var req dto.CreatePageRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}

	userId, notebookId, err := notebookParams(ctx)
	if err != nil {
		return err
	}

	if _, err := c.service.Create(ctx.UserContext(), userId, notebookId, &req); err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.MessageResponse("Page added successfully"))
}

func (c *pageController) Show(ctx *fiber.Ctx) error {
	userId, notebookId, pageId, err := pageParams(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Show(ctx.UserContext(), userId, notebookId, pageId)
	if err != nil {
		return err
	}

	return ctx.JSON(dto.GetPageResponse{Page: res})
}

func (c *pageController) Update(ctx *fiber.Ctx) error {
	var req dto.UpdatePageRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}

	userId, notebookId, pageId, err := pageParams(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.Update(ctx.UserContext(), userId, notebookId, pageId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(dto.UpdatePageResponse{
		Message: "Page updated successfully",
		Page:    res,
	})
}

func (c *pageController) Delete(ctx *fiber.Ctx) error {
	userId, notebookId, pageId, err := pageParams(ctx)
	if err != nil {
		return err
	}

	if err := c.service.Delete(ctx.UserContext(), userId, notebookId, pageId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.MessageResponse("Page deleted successfully."))
}
