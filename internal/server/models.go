package server

import (
	"time"

	"github.com/jlym/frienddir/internal/profile"
)

type CreateUserRequest struct {
	UserName string `validate:"required"`
}

type CreateUserResponse struct {
	User *User
}

type GetUserRequest struct {
	UserName string `validate:"required"`
}

// GetUserResponse carries a nil User when no user has that name.
type GetUserResponse struct {
	User *User
}

type ListUsersRequest struct {
}

type ListUsersResponse struct {
	UserNames []string
}

type DeleteUserRequest struct {
	UserName string `validate:"required"`
}

type DeleteUserResponse struct {
}

type UpdatePicRequest struct {
	UserName string `validate:"required"`
	FileName string `validate:"required"`
}

type UpdatePicResponse struct {
	User *User
}

type MakeFriendsRequest struct {
	UserName   string `validate:"required"`
	FriendName string `validate:"required"`
}

type MakeFriendsResponse struct {
}

type AreFriendsRequest struct {
	UserName   string `validate:"required"`
	FriendName string `validate:"required"`
}

type AreFriendsResponse struct {
	Friends bool
}

type CreatePostRequest struct {
	AuthorName string `validate:"required"`
	TargetName string `validate:"required"`
	Content    string
}

type CreatePostResponse struct {
	TargetName string
	Post       *Post
}

type GetProfileRequest struct {
	UserName string `validate:"required"`
}

type GetProfileResponse struct {
	Profile *profile.View
}

type Post struct {
	Author    string
	Content   string
	CreatedAt time.Time
}

type User struct {
	UserID     string
	UserName   string
	ProfilePic string
	Friends    []string
	PostCount  int
}
