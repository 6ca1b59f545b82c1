package domain

import "errors"

var (
	ErrNotFound     = errors.New("project not found")
	ErrEmptyUpdate  = errors.New("no fields to update")
	ErrMissingTitle = errors.New("title and description are required")
)
