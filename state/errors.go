package state

import (
	"errors"
)

var (
	// ErrNotFound indicates an object has not been found for the search criteria used
	ErrNotFound = errors.New("object not found")

	// ErrStateNotSynchronized indicates the state database may be empty
	ErrStateNotSynchronized = errors.New("state not synchronized")

	// ErrAlreadyExists indicates the object already exists in the database
	ErrAlreadyExists = errors.New("object already exists")

	// ErrDBTxNil indicates the db transaction has not been properly initialized
	ErrDBTxNil = errors.New("database transaction not properly initialized")
)
