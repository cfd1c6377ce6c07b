package dto

import "github.com/google/uuid"

type CreateNotebookRequest struct {
	Title *string `json:"title" validate:"required,max=100"`
}

type RenameNotebookRequest struct {
	Title *string `json:"title" validate:"required,max=100"`
}

type NotebookSummary struct {
	Id    uuid.UUID `json:"id"`
	Title string    `json:"title"`
}

type ListNotebooksResponse struct {
	Notebooks []*NotebookSummary `json:"notebooks"`
}

type CreateNotebookResponse struct {
	Id uuid.UUID `json:"id"`
}
