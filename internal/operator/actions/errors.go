package actions

import "errors"

var (
	ErrInvalidKind   = errors.New("account kind is invalid")
	ErrOwnerNotFound = errors.New("owner not found")
	ErrPersonExists  = errors.New("person already registered")
	ErrInvalidPerson = errors.New("person name and cpf are required")
)
