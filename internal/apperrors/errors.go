package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInsufficientFunds indicates that an account balance cannot cover the requested amount.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates valid credentials that lack permission for the action.
var ErrForbidden = errors.New("forbidden")

// ErrInternal indicates an unexpected failure in the storage layer or elsewhere.
var ErrInternal = errors.New("internal error")
