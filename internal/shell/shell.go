// Package shell reads directory commands line by line and runs them against
// a server.Server.
package shell

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/pkg/errors"

	s "github.com/jlym/frienddir/internal/server"
	"github.com/jlym/frienddir/internal/storage"
	"github.com/jlym/frienddir/internal/ui"
	"github.com/jlym/frienddir/internal/util"
)

const (
	MsgSyntax = "Incorrect syntax"

	MsgDuplicateName = "User by this name already exists"
	MsgNameTooLong   = "Username is too long"

	MsgUserNotFound   = "User not found"
	MsgPicNotFound    = "File not found"
	MsgPicNameTooLong = "File name is too long"

	MsgAlreadyFriends   = "Users are already friends"
	MsgCapacityExceeded = "At least one user you entered has the max number of friends"
	MsgSelfFriend       = "You must enter two different users"
	MsgUsersMissing     = "At least one user you entered does not exist"

	MsgNotFriends = "Users must be friends to post"

	MsgDeleteMissing = "User by this name does not exist"
)

// errorMessages maps domain errors to what the user sees.
var errorMessages = []struct {
	err error
	msg string
}{
	{storage.ErrDuplicateName, MsgDuplicateName},
	{storage.ErrNameTooLong, MsgNameTooLong},
	{storage.ErrNotFound, MsgDeleteMissing},
	{storage.ErrUserNotFound, MsgUsersMissing},
	{storage.ErrSelfFriend, MsgSelfFriend},
	{storage.ErrCapacityExceeded, MsgCapacityExceeded},
	{storage.ErrAlreadyFriends, MsgAlreadyFriends},
	{storage.ErrNotFriends, MsgNotFriends},
	{storage.ErrNullUser, MsgUsersMissing},
	{storage.ErrPicNameTooLong, MsgPicNameTooLong},
	{storage.ErrPicNotFound, MsgPicNotFound},
}

type Shell struct {
	Server  s.Server
	Printer *ui.Printer
	Logger  *slog.Logger
	// Prompt is printed before each line when non-empty.
	Prompt string
}

func New(server s.Server, out io.Writer, logger *slog.Logger) *Shell {
	if logger == nil {
		logger = util.DiscardLogger()
	}
	return &Shell{
		Server:  server,
		Printer: ui.NewPrinter(out),
		Logger:  logger,
	}
}

// Run executes commands from in until quit, end of input, cancellation of
// ctx, or an error that is not a user mistake. Cancellation is a clean stop.
func (sh *Shell) Run(ctx context.Context, in io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go readLines(ctx, in, lines, readErr)

	for {
		if ctx.Err() != nil {
			return stopped(ctx)
		}
		if sh.Prompt != "" {
			sh.Printer.Prompt(sh.Prompt)
		}

		var line string
		select {
		case <-ctx.Done():
			return stopped(ctx)
		case l, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					return errors.Wrap(err, "reading commands failed")
				default:
					return nil
				}
			}
			line = l
		}

		quit, err := sh.Exec(ctx, line)
		if errors.Is(err, context.Canceled) {
			sh.Logger.DebugContext(ctx, "command interrupted")
			return nil
		}
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// readLines feeds lines from in until it is exhausted or ctx ends. A read
// error is left in errc before lines is closed. A read blocked on in is not
// interrupted; the goroutine exits once that read returns.
func readLines(ctx context.Context, in io.Reader, lines chan<- string, errc chan<- error) {
	defer close(lines)
	reader := bufio.NewReader(in)
	for {
		line, err := util.ReadLine(reader)
		if err == io.EOF {
			return
		}
		if err != nil {
			errc <- err
			return
		}
		select {
		case lines <- line:
		case <-ctx.Done():
			return
		}
	}
}

func stopped(ctx context.Context) error {
	if errors.Is(ctx.Err(), context.Canceled) {
		return nil
	}
	return errors.Wrap(ctx.Err(), "shell stopped")
}

// Exec runs one command line. It reports whether the shell should stop.
func (sh *Shell) Exec(ctx context.Context, line string) (bool, error) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return false, nil
	}
	sh.Logger.DebugContext(ctx, "command", slog.String("name", args[0]), slog.Int("args", len(args)-1))

	var err error
	switch {
	case args[0] == "quit" && len(args) == 1:
		return true, nil

	case args[0] == "add_user" && len(args) == 2:
		_, err = sh.Server.CreateUser(ctx, &s.CreateUserRequest{UserName: args[1]})

	case args[0] == "list_users" && len(args) == 1:
		var resp *s.ListUsersResponse
		resp, err = sh.Server.ListUsers(ctx, &s.ListUsersRequest{})
		if err == nil {
			sh.Printer.UserList(resp.UserNames)
		}

	case args[0] == "update_pic" && len(args) == 3:
		_, err = sh.Server.UpdatePic(ctx, &s.UpdatePicRequest{UserName: args[1], FileName: args[2]})
		if errors.Is(err, storage.ErrUserNotFound) {
			sh.Printer.Error(MsgUserNotFound)
			return false, nil
		}

	case args[0] == "make_friends" && len(args) == 3:
		_, err = sh.Server.MakeFriends(ctx, &s.MakeFriendsRequest{UserName: args[1], FriendName: args[2]})

	case args[0] == "post" && len(args) >= 4:
		_, err = sh.Server.CreatePost(ctx, &s.CreatePostRequest{
			AuthorName: args[1],
			TargetName: args[2],
			Content:    strings.Join(args[3:], " "),
		})

	case args[0] == "profile" && len(args) == 2:
		var resp *s.GetProfileResponse
		resp, err = sh.Server.GetProfile(ctx, &s.GetProfileRequest{UserName: args[1]})
		if errors.Is(err, storage.ErrNullUser) {
			sh.Printer.Error(MsgUserNotFound)
			return false, nil
		}
		if err == nil {
			sh.Printer.Profile(resp.Profile)
		}

	case args[0] == "delete_user" && len(args) == 2:
		_, err = sh.Server.DeleteUser(ctx, &s.DeleteUserRequest{UserName: args[1]})

	default:
		sh.Printer.Error(MsgSyntax)
		return false, nil
	}

	return false, sh.report(err)
}

// report prints domain errors and passes anything else back to the caller.
func (sh *Shell) report(err error) error {
	if err == nil {
		return nil
	}
	for _, m := range errorMessages {
		if errors.Is(err, m.err) {
			sh.Printer.Error(m.msg)
			return nil
		}
	}
	return err
}
