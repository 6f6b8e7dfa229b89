package apperrors

import "errors"

// ErrNotFound indicates that a referenced form row could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrSnapshot indicates that a form snapshot could not be read or decoded.
var ErrSnapshot = errors.New("invalid form snapshot")
