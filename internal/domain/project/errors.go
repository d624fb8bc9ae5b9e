package project

import "errors"

var (
	ErrProjectNotFound     = errors.New("project not found")
	ErrProjectAccessDenied = errors.New("no access to this project")
	ErrNoChanges           = errors.New("no changes provided")
)
