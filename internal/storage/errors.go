package storage

import "github.com/pkg/errors"

var (
	ErrDuplicateName = errors.New("user name already exists")
	ErrNameTooLong   = errors.New("user name is too long")
	ErrNotFound      = errors.New("user does not exist")

	ErrUserNotFound     = errors.New("at least one user does not exist")
	ErrSelfFriend       = errors.New("a user cannot befriend themselves")
	ErrCapacityExceeded = errors.New("at least one user has the max number of friends")
	ErrAlreadyFriends   = errors.New("users are already friends")

	ErrNotFriends = errors.New("users are not friends")
	ErrNullUser   = errors.New("user is missing")

	ErrPicNameTooLong = errors.New("picture file name is too long")
	ErrPicNotFound    = errors.New("picture file does not exist")
)
