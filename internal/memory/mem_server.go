package memory

import (
	"context"
	"log/slog"
	"sync"

	"github.com/pkg/errors"

	"github.com/jlym/frienddir/internal/profile"
	s "github.com/jlym/frienddir/internal/server"
	"github.com/jlym/frienddir/internal/storage"
	"github.com/jlym/frienddir/internal/util"
)

// MemServer serves the directory from memory. Every call holds one lock for
// its whole duration, so multi-step operations such as DeleteUser are never
// seen half done.
type MemServer struct {
	Clock    util.Clock
	Files    profile.FileStore
	Renderer *profile.Renderer
	Logger   *slog.Logger

	mu  sync.Mutex
	dir *storage.Directory
}

// Enforce that MemServer implements s.Server interface.
var _ s.Server = &MemServer{}

type Options struct {
	Limits     storage.Limits
	TimeFormat string
	Logger     *slog.Logger
}

func NewMemServer(opts Options) *MemServer {
	logger := opts.Logger
	if logger == nil {
		logger = util.DiscardLogger()
	}
	files := profile.NewOSFileStore()
	return &MemServer{
		Clock:    util.NewRealClock(),
		Files:    files,
		Renderer: profile.NewRenderer(files, opts.TimeFormat, logger),
		Logger:   logger,
		dir:      storage.NewDirectory(opts.Limits),
	}
}

func (m *MemServer) CreateUser(ctx context.Context, request *s.CreateUserRequest) (*s.CreateUserResponse, error) {
	if err := begin(ctx, request); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	u, err := m.dir.CreateUser(request.UserName)
	if err != nil {
		m.Logger.DebugContext(ctx, "create user rejected",
			slog.String("name", request.UserName), slog.Any("err", err))
		return nil, errors.Wrapf(err, "creating user failed, name=%q", request.UserName)
	}
	m.Logger.InfoContext(ctx, "user created",
		slog.String("name", u.Name), slog.String("id", u.ID.String()))

	return &s.CreateUserResponse{
		User: m.toUser(u),
	}, nil
}

func (m *MemServer) GetUser(ctx context.Context, request *s.GetUserRequest) (*s.GetUserResponse, error) {
	if err := begin(ctx, request); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	var user *s.User
	if u := m.dir.FindUser(request.UserName); u != nil {
		user = m.toUser(u)
	}
	return &s.GetUserResponse{
		User: user,
	}, nil
}

func (m *MemServer) ListUsers(ctx context.Context, request *s.ListUsersRequest) (*s.ListUsersResponse, error) {
	if err := begin(ctx, request); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	return &s.ListUsersResponse{
		UserNames: m.dir.ListUsers(),
	}, nil
}

func (m *MemServer) DeleteUser(ctx context.Context, request *s.DeleteUserRequest) (*s.DeleteUserResponse, error) {
	if err := begin(ctx, request); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.dir.DeleteUser(request.UserName); err != nil {
		m.Logger.DebugContext(ctx, "delete user rejected",
			slog.String("name", request.UserName), slog.Any("err", err))
		return nil, errors.Wrapf(err, "deleting user failed, name=%q", request.UserName)
	}
	m.Logger.InfoContext(ctx, "user deleted", slog.String("name", request.UserName))

	return &s.DeleteUserResponse{}, nil
}

func (m *MemServer) UpdatePic(ctx context.Context, request *s.UpdatePicRequest) (*s.UpdatePicResponse, error) {
	if err := begin(ctx, request); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	u := m.dir.FindUser(request.UserName)
	if u == nil {
		return nil, errors.Wrapf(storage.ErrUserNotFound, "updating picture failed, name=%q", request.UserName)
	}
	if err := m.dir.UpdatePic(u, request.FileName, m.Files); err != nil {
		m.Logger.DebugContext(ctx, "update picture rejected",
			slog.String("name", request.UserName),
			slog.String("path", request.FileName),
			slog.Any("err", err))
		return nil, errors.Wrapf(err, "updating picture failed, name=%q, path=%q", request.UserName, request.FileName)
	}
	m.Logger.InfoContext(ctx, "picture updated",
		slog.String("name", u.Name), slog.String("path", u.ProfilePic))

	return &s.UpdatePicResponse{
		User: m.toUser(u),
	}, nil
}

func (m *MemServer) MakeFriends(ctx context.Context, request *s.MakeFriendsRequest) (*s.MakeFriendsResponse, error) {
	if err := begin(ctx, request); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.dir.MakeFriends(request.UserName, request.FriendName); err != nil {
		m.Logger.DebugContext(ctx, "make friends rejected",
			slog.String("name", request.UserName),
			slog.String("friend", request.FriendName),
			slog.Any("err", err))
		return nil, errors.Wrapf(err, "making friends failed, name=%q, friend=%q", request.UserName, request.FriendName)
	}
	m.Logger.InfoContext(ctx, "friendship created",
		slog.String("name", request.UserName), slog.String("friend", request.FriendName))

	return &s.MakeFriendsResponse{}, nil
}

func (m *MemServer) AreFriends(ctx context.Context, request *s.AreFriendsRequest) (*s.AreFriendsResponse, error) {
	if err := begin(ctx, request); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	return &s.AreFriendsResponse{
		Friends: m.dir.AreFriends(request.UserName, request.FriendName),
	}, nil
}

func (m *MemServer) CreatePost(ctx context.Context, request *s.CreatePostRequest) (*s.CreatePostResponse, error) {
	if err := begin(ctx, request); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	author := m.dir.FindUser(request.AuthorName)
	target := m.dir.FindUser(request.TargetName)
	createdAt := m.Clock.NowUtc()

	if err := m.dir.CreatePost(author, target, request.Content, createdAt); err != nil {
		m.Logger.DebugContext(ctx, "post rejected",
			slog.String("author", request.AuthorName),
			slog.String("target", request.TargetName),
			slog.Any("err", err))
		return nil, errors.Wrapf(err, "creating post failed, author=%q, target=%q", request.AuthorName, request.TargetName)
	}
	m.Logger.InfoContext(ctx, "post created",
		slog.String("author", author.Name),
		slog.String("target", target.Name),
		slog.Int("length", len(request.Content)))

	return &s.CreatePostResponse{
		TargetName: target.Name,
		Post: &s.Post{
			Author:    author.Name,
			Content:   request.Content,
			CreatedAt: createdAt,
		},
	}, nil
}

func (m *MemServer) GetProfile(ctx context.Context, request *s.GetProfileRequest) (*s.GetProfileResponse, error) {
	if err := begin(ctx, request); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	view, err := m.Renderer.Render(m.dir, m.dir.FindUser(request.UserName))
	if err != nil {
		return nil, errors.Wrapf(err, "rendering profile failed, name=%q", request.UserName)
	}
	return &s.GetProfileResponse{
		Profile: view,
	}, nil
}

// CheckSymmetry verifies the friendship invariant across the directory.
func (m *MemServer) CheckSymmetry() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.dir.CheckSymmetry()
}

func (m *MemServer) toUser(u *storage.User) *s.User {
	return &s.User{
		UserID:     u.ID.String(),
		UserName:   u.Name,
		ProfilePic: u.ProfilePic,
		Friends:    m.dir.FriendNames(u),
		PostCount:  u.PostCount(),
	}
}

func begin(ctx context.Context, request any) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "request cancelled")
	}
	return s.ValidateRequest(request)
}
