package controller

import (
	"github.com/DrInfinite/TK-WS-NoteTakingApp/internal/dto"
	"github.com/DrInfinite/TK-WS-NoteTakingApp/internal/pkg/apperror"
	"github.com/DrInfinite/TK-WS-NoteTakingApp/internal/pkg/serverutils"
	"github.com/DrInfinite/TK-WS-NoteTakingApp/internal/service"

	"github.com/gofiber/fiber/v2"
)

type INotebookController interface {
	RegisterRoutes(r fiber.Router)
	GetAll(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	Rename(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type notebookController struct {
	service service.INotebookService
}

func NewNotebookController(service service.INotebookService) INotebookController {
	return &notebookController{service: service}
}

func (c *notebookController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/users/:userId/notebooks")
	h.Get("", c.GetAll)
	h.Post("", c.Create)
	h.Put("/:notebookId", c.Rename)
	h.Delete("/:notebookId", c.Delete)
}

func (c *notebookController) GetAll(ctx *fiber.Ctx) error {
	userId, ok := serverutils.ParamID(ctx, "userId")
	if !ok {
		return ctx.JSON(dto.ListNotebooksResponse{Notebooks: []*dto.NotebookSummary{}})
	}

	res, err := c.service.GetAll(ctx.UserContext(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *notebookController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateNotebookRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}

	userId, ok := serverutils.ParamID(ctx, "userId")
	if !ok {
		return apperror.Malformed("Invalid user id")
	}

	if _, err := c.service.Create(ctx.UserContext(), userId, &req); err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.MessageResponse("Notebook added successfully"))
}

func (c *notebookController) Rename(ctx *fiber.Ctx) error {
	var req dto.RenameNotebookRequest
	if err := serverutils.ParseBody(ctx, &req); err != nil {
		return err
	}

	userId, okUser := serverutils.ParamID(ctx, "userId")
	notebookId, okNotebook := serverutils.ParamID(ctx, "notebookId")
	if !okUser || !okNotebook {
		return apperror.ErrNotebookNotFound
	}

	if err := c.service.Rename(ctx.UserContext(), userId, notebookId, &req); err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.MessageResponse("Notebook renamed successfully"))
}

func (c *notebookController) Delete(ctx *fiber.Ctx) error {
	userId, okUser := serverutils.ParamID(ctx, "userId")
	notebookId, okNotebook := serverutils.ParamID(ctx, "notebookId")
	if !okUser || !okNotebook {
		return apperror.ErrNotebookNotFound
	}

	if err := c.service.Delete(ctx.UserContext(), userId, notebookId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.MessageResponse("Notebook deleted successfully."))
}
