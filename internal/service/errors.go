package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid      = errors.New("invalid parameters")
	ErrUserNotFound      = errors.New("user not found")
	ErrUserHandleExist   = errors.New("handle already taken")
	ErrUserEmailExist    = errors.New("email already registered")
	ErrPasswordIncorrect = errors.New("incorrect credentials")
	ErrUserHasRole       = errors.New("user already has this role")
	ErrTierNotFound      = errors.New("tier not found")
	ErrTierNotOwned      = errors.New("tier belongs to another creator")
	ErrPostNotFound      = errors.New("post not found")
	ErrCommentNotFound   = errors.New("comment not found")
	ErrMealNotFound      = errors.New("meal not found")
	ErrFileNotSupported  = errors.New("unsupported file type")
	UnauthorizedError    = errors.New("insufficient permissions")
	UnExpectedError      = errors.New("unexpected error, please retry later")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:      BadRequest,
	ErrUserNotFound:      NotFound,
	ErrUserHandleExist:   BadRequest,
	ErrUserEmailExist:    BadRequest,
	ErrPasswordIncorrect: Unauthorized,
	ErrUserHasRole:       BadRequest,
	ErrTierNotFound:      NotFound,
	ErrTierNotOwned:      Forbidden,
	ErrPostNotFound:      NotFound,
	ErrCommentNotFound:   NotFound,
	ErrMealNotFound:      NotFound,
	ErrFileNotSupported:  BadRequest,
	UnauthorizedError:    Forbidden,
	UnExpectedError:      InternalServerError,
}
