package dto

import "github.com/google/uuid"

type CreatePageRequest struct {
	Title   *string `json:"title" validate:"required,max=100"`
	Content *string `json:"content" validate:"required"`
}

type UpdatePageRequest struct {
	Title   *string `json:"title" validate:"required,max=100"`
	Content *string `json:"content" validate:"required"`
}

type PageResponse struct {
	Id      uuid.UUID `json:"id"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
}

// NotebookPagesResponse is the notebook header plus its pages.
type NotebookPagesResponse struct {
	Id    uuid.UUID       `json:"id"`
	Title string          `json:"title"`
	Pages []*PageResponse `json:"pages"`
}

type GetPageResponse struct {
	Page *PageResponse `json:"page"`
}

type UpdatePageResponse struct {
	Message string        `json:"message"`
	Page    *PageResponse `json:"page"`
}

type CreatePageResponse struct {
	Id uuid.UUID `json:"id"`
}
