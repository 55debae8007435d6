package domain

import "errors"

// Authentication errors. All of them surface to the client behind the same
// generic message; the distinct sentinels exist for logging and tests.
var (
	ErrUnauthenticated    = errors.New("missing or unreadable credentials")
	ErrTokenMalformed     = errors.New("token missing required claims")
	ErrTokenSignature     = errors.New("token signature invalid")
	ErrTokenExpired       = errors.New("token expired")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Authorization and resource errors.
var (
	ErrForbidden        = errors.New("not enough permissions")
	ErrInvalidRole      = errors.New("invalid role")
	ErrUserNotFound     = errors.New("user not found")
	ErrUserExists       = errors.New("email already in use")
	ErrHobbyNotFound    = errors.New("hobby not found")
	ErrHobbyExists      = errors.New("hobby already exists")
	ErrTopicNotFound    = errors.New("topic not found")
	ErrTopicExists      = errors.New("topic already exists in this hobby")
	ErrCommentNotFound  = errors.New("comment not found")
	ErrMismatchedParent = errors.New("resource does not belong to the stated parent")
)
