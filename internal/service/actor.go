package service

import (
	"daily-app/internal/models"
	"daily-app/internal/repository"
)

// Actor is the authenticated caller of a service operation. Handlers build it from the
// request's session and pass it explicitly; there is no ambient current user.
type Actor struct {
	UserID    uint
	Username  string
	SessionID string
}

// authorize runs the ownership check shared by view/edit/delete.
func authorize(rec models.Owned, findErr error, actor Actor, op string) error {
	if findErr != nil {
		return fromRepo(findErr, op)
	}
	if rec.OwnerID() != actor.UserID {
		return NewForbiddenError()
	}
	return nil
}

// PageResult is one page of a list operation.
type PageResult[T any] struct {
	Items    []T   `json:"items"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Pages    int   `json:"pages"`
}

func newPageResult[T any](items []T, total int64, page repository.Page) *PageResult[T] {
	return &PageResult[T]{
		Items:    items,
		Total:    total,
		Page:     page.Number,
		PageSize: page.Size,
		Pages:    page.Pages(total),
	}
}
