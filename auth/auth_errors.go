package auth

import "errors"

var (
	NotAuthenticatedErr = errors.New("not authenticated")
)
