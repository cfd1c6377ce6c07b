package controller

import "github.com/gofiber/fiber/v2"

type IIndexController interface {
	RegisterRoutes(r fiber.Router)
	Index(ctx *fiber.Ctx) error
}

type indexController struct{}

func NewIndexController() IIndexController {
	return &indexController{}
}

func (c *indexController) RegisterRoutes(r fiber.Router) {
	r.Get("/", c.Index)
}

func (c *indexController) Index(ctx *fiber.Ctx) error {
	return ctx.SendString("hi there")
}
