package project

import "errors"

// Project domain errors
var (
	ErrProjectNotFound = errors.New("project not found")
	ErrAlreadyMember   = errors.New("employee is already a member of this project")
	ErrMemberNotFound  = errors.New("project member not found")
)
