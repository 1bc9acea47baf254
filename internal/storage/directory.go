package storage

import "slices"

// FileChecker reports whether a picture file exists.
type FileChecker interface {
	Exists(path string) bool
}

// Directory owns every User. Users are kept in creation order and friend
// slots are resolved through byID.
//
// A Directory is not safe for concurrent use.
type Directory struct {
	limits Limits
	users  []*User
	byID   map[UserID]*User
}

func NewDirectory(limits Limits) *Directory {
	return &Directory{
		limits: limits,
		byID:   make(map[UserID]*User),
	}
}

func (d *Directory) Limits() Limits {
	return d.limits
}

func (d *Directory) Len() int {
	return len(d.users)
}

// CreateUser appends a new user named name. A duplicate name is reported
// before an overlong one.
func (d *Directory) CreateUser(name string) (*User, error) {
	if d.FindUser(name) != nil {
		return nil, ErrDuplicateName
	}
	if len(name) > d.limits.MaxNameLength {
		return nil, ErrNameTooLong
	}

	u := newUser(name, d.limits.MaxFriends)
	d.users = append(d.users, u)
	d.byID[u.ID] = u
	return u, nil
}

// FindUser returns the user with exactly this name, or nil.
func (d *Directory) FindUser(name string) *User {
	for _, u := range d.users {
		if u.Name == name {
			return u
		}
	}
	return nil
}

func (d *Directory) ListUsers() []string {
	names := make([]string, len(d.users))
	for i, u := range d.users {
		names[i] = u.Name
	}
	return names
}

// DeleteUser removes the user, drops its ledger and clears it from every
// other user's friend slots before returning.
func (d *Directory) DeleteUser(name string) error {
	i := d.indexOf(name)
	if i < 0 {
		return ErrNotFound
	}

	u := d.users[i]
	d.purge(u.ID)
	u.ledger.drop()

	d.users = slices.Delete(d.users, i, i+1)
	delete(d.byID, u.ID)
	return nil
}

// UpdatePic points u's profile picture at filename.
func (d *Directory) UpdatePic(u *User, filename string, files FileChecker) error {
	if !d.owns(u) {
		return ErrNullUser
	}
	if len(filename) > d.limits.MaxNameLength {
		return ErrPicNameTooLong
	}
	if !files.Exists(filename) {
		return ErrPicNotFound
	}
	u.ProfilePic = filename
	return nil
}

func (d *Directory) indexOf(name string) int {
	for i, u := range d.users {
		if u.Name == name {
			return i
		}
	}
	return -1
}

// owns reports whether u is a live user of this directory.
func (d *Directory) owns(u *User) bool {
	return u != nil && d.byID[u.ID] == u
}
