package storage

import (
	"time"

	"github.com/google/uuid"
)

// UserID is the stable handle friend slots refer to. Names are only resolved
// through the Directory.
type UserID = uuid.UUID

type User struct {
	ID         UserID
	Name       string
	ProfilePic string

	friends *FriendSet
	ledger  Ledger
}

func newUser(name string, maxFriends int) *User {
	return &User{
		ID:      uuid.New(),
		Name:    name,
		friends: NewFriendSet(maxFriends),
	}
}

// FriendIDs returns the occupied friend slots in slot order.
func (u *User) FriendIDs() []UserID {
	return u.friends.IDs()
}

func (u *User) FriendCount() int {
	return u.friends.Len()
}

func (u *User) HasFriend(id UserID) bool {
	return u.friends.Contains(id)
}

// Posts returns the user's ledger, newest first.
func (u *User) Posts() []Post {
	return u.ledger.Posts()
}

func (u *User) PostCount() int {
	return u.ledger.Len()
}

type Post struct {
	Author    string
	Contents  string
	CreatedAt time.Time
}

// Limits bound the size of names and friend sets.
type Limits struct {
	MaxNameLength int
	MaxFriends    int
}

// DefaultLimits matches a 32 byte name buffer and ten friend slots.
var DefaultLimits = Limits{
	MaxNameLength: 31,
	MaxFriends:    10,
}
