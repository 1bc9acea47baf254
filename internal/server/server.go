package server

import (
	"context"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

type Server interface {
	CreateUser(ctx context.Context, request *CreateUserRequest) (*CreateUserResponse, error)
	GetUser(ctx context.Context, request *GetUserRequest) (*GetUserResponse, error)
	ListUsers(ctx context.Context, request *ListUsersRequest) (*ListUsersResponse, error)
	DeleteUser(ctx context.Context, request *DeleteUserRequest) (*DeleteUserResponse, error)
	UpdatePic(ctx context.Context, request *UpdatePicRequest) (*UpdatePicResponse, error)

	MakeFriends(ctx context.Context, request *MakeFriendsRequest) (*MakeFriendsResponse, error)
	AreFriends(ctx context.Context, request *AreFriendsRequest) (*AreFriendsResponse, error)

	CreatePost(ctx context.Context, request *CreatePostRequest) (*CreatePostResponse, error)
	GetProfile(ctx context.Context, request *GetProfileRequest) (*GetProfileResponse, error)
}

// ErrInvalidRequest is wrapped by ValidateRequest failures.
var ErrInvalidRequest = errors.New("invalid request")

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// ValidateRequest checks the struct tags on a request.
func ValidateRequest(request any) error {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})

	if request == nil {
		return errors.Wrap(ErrInvalidRequest, "request was nil")
	}
	if err := validate.Struct(request); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return errors.Wrapf(ErrInvalidRequest, "request.%s was empty", verrs[0].Field())
		}
		return errors.Wrap(err, "validating request failed")
	}
	return nil
}
