package service

import "errors"

var (
	ErrMissingToken            = errors.New("authorization token is missing")
	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrInvalidPayload = errors.New("invalid payload")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
