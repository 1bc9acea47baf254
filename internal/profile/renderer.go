// Package profile turns a user into a read-only view for display.
package profile

import (
	"log/slog"
	"time"

	"github.com/jlym/frienddir/internal/storage"
	"github.com/jlym/frienddir/internal/util"
)

// DefaultTimeFormat is the asctime layout.
const DefaultTimeFormat = time.ANSIC

type View struct {
	// Picture is nil when the user has no picture or it could not be read.
	Picture []string
	Name    string
	Friends []string
	Posts   []PostView
}

type PostView struct {
	Author   string
	Date     string
	Contents string
}

// FriendResolver maps a user's friend slots to names.
type FriendResolver interface {
	FriendNames(u *storage.User) []string
}

type Renderer struct {
	Files      FileStore
	TimeFormat string
	Location   *time.Location
	Logger     *slog.Logger
}

func NewRenderer(files FileStore, timeFormat string, logger *slog.Logger) *Renderer {
	if timeFormat == "" {
		timeFormat = DefaultTimeFormat
	}
	if logger == nil {
		logger = util.DiscardLogger()
	}
	return &Renderer{
		Files:      files,
		TimeFormat: timeFormat,
		Location:   time.Local,
		Logger:     logger,
	}
}

// Render builds the view of u. It never changes u.
func (r *Renderer) Render(src FriendResolver, u *storage.User) (*View, error) {
	if u == nil {
		return nil, storage.ErrNullUser
	}

	view := &View{
		Picture: r.picture(u),
		Name:    u.Name,
		Friends: src.FriendNames(u),
	}

	posts := u.Posts()
	view.Posts = make([]PostView, len(posts))
	for i, p := range posts {
		view.Posts[i] = PostView{
			Author:   p.Author,
			Date:     r.FormatTime(p.CreatedAt),
			Contents: p.Contents,
		}
	}
	return view, nil
}

func (r *Renderer) FormatTime(t time.Time) string {
	loc := r.Location
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(r.TimeFormat)
}

func (r *Renderer) picture(u *storage.User) []string {
	if u.ProfilePic == "" {
		return nil
	}
	lines, err := r.Files.ReadTextFile(u.ProfilePic)
	if err != nil {
		r.Logger.Warn("profile picture unreadable",
			slog.String("name", u.Name),
			slog.String("path", u.ProfilePic),
			slog.Any("err", err))
		return nil
	}
	return lines
}
