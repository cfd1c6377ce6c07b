package dto

import (
	"time"

	"github.com/google/uuid"
)

const (
	ActivityUserCreated     = "user.created"
	ActivityUserDeleted     = "user.deleted"
	ActivityNotebookCreated = "notebook.created"
	ActivityNotebookRenamed = "notebook.renamed"
	ActivityNotebookDeleted = "notebook.deleted"
	ActivityPageCreated     = "page.created"
	ActivityPageUpdated     = "page.updated"
	ActivityPageDeleted     = "page.deleted"
)

// ActivityMessage is published after a mutation commits. It never carries
// passwords or page content.
type ActivityMessage struct {
	Type       string     `json:"type"`
	UserId     uuid.UUID  `json:"user_id"`
	NotebookId *uuid.UUID `json:"notebook_id,omitempty"`
	PageId     *uuid.UUID `json:"page_id,omitempty"`
	OccurredAt time.Time  `json:"occurred_at"`
}
