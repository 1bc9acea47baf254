package storage

import (
	"github.com/pkg/errors"
)

type slot struct {
	id       UserID
	occupied bool
}

// FriendSet is a fixed number of friend slots. New friends always take the
// lowest open slot, so slot order is the listing order.
type FriendSet struct {
	slots []slot
	count int
}

func NewFriendSet(capacity int) *FriendSet {
	return &FriendSet{
		slots: make([]slot, capacity),
	}
}

func (f *FriendSet) Len() int {
	return f.count
}

func (f *FriendSet) Cap() int {
	return len(f.slots)
}

func (f *FriendSet) Full() bool {
	return f.count == len(f.slots)
}

// FirstOpen returns the lowest open slot index, or -1 when the set is full.
func (f *FriendSet) FirstOpen() int {
	if f.Full() {
		return -1
	}
	for i, s := range f.slots {
		if !s.occupied {
			return i
		}
	}
	return -1
}

func (f *FriendSet) Contains(id UserID) bool {
	for _, s := range f.slots {
		if s.occupied && s.id == id {
			return true
		}
	}
	return false
}

// Add places id in the first open slot and returns that slot.
func (f *FriendSet) Add(id UserID) (int, error) {
	i := f.FirstOpen()
	if i < 0 {
		return -1, ErrCapacityExceeded
	}
	f.slots[i] = slot{id: id, occupied: true}
	f.count++
	return i, nil
}

// Remove clears every slot holding id and reports whether any was cleared.
func (f *FriendSet) Remove(id UserID) bool {
	removed := false
	for i, s := range f.slots {
		if s.occupied && s.id == id {
			f.slots[i] = slot{}
			f.count--
			removed = true
		}
	}
	return removed
}

func (f *FriendSet) IDs() []UserID {
	ids := make([]UserID, 0, f.count)
	for _, s := range f.slots {
		if s.occupied {
			ids = append(ids, s.id)
		}
	}
	return ids
}

// MakeFriends links the two named users. Errors are checked from most to
// least severe: a missing user, the same user twice, a full friend set, an
// existing friendship. Neither user changes unless both sides can be linked.
func (d *Directory) MakeFriends(nameA, nameB string) error {
	a, b := d.FindUser(nameA), d.FindUser(nameB)
	if a == nil || b == nil {
		return ErrUserNotFound
	}
	if nameA == nameB {
		return ErrSelfFriend
	}
	if a.friends.Full() || b.friends.Full() {
		return ErrCapacityExceeded
	}
	if a.friends.Contains(b.ID) {
		return ErrAlreadyFriends
	}

	// Both sets have an open slot.
	_, _ = a.friends.Add(b.ID)
	_, _ = b.friends.Add(a.ID)
	return nil
}

// AreFriends reports whether nameA lists nameB as a friend.
func (d *Directory) AreFriends(nameA, nameB string) bool {
	a, b := d.FindUser(nameA), d.FindUser(nameB)
	if a == nil || b == nil {
		return false
	}
	return a.friends.Contains(b.ID)
}

// PurgeReferences clears every friend slot pointing at name and returns the
// number of slots cleared.
func (d *Directory) PurgeReferences(name string) int {
	u := d.FindUser(name)
	if u == nil {
		return 0
	}
	return d.purge(u.ID)
}

func (d *Directory) purge(id UserID) int {
	cleared := 0
	for _, other := range d.users {
		if other.friends.Remove(id) {
			cleared++
		}
	}
	return cleared
}

// FriendNames resolves u's friends to names in slot order.
func (d *Directory) FriendNames(u *User) []string {
	if u == nil {
		return nil
	}
	ids := u.FriendIDs()
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if friend, ok := d.byID[id]; ok {
			names = append(names, friend.Name)
		}
	}
	return names
}

// CheckSymmetry returns an error describing the first one-sided friendship or
// dangling slot it finds.
func (d *Directory) CheckSymmetry() error {
	for _, u := range d.users {
		for _, id := range u.FriendIDs() {
			friend, ok := d.byID[id]
			if !ok {
				return errors.Errorf("%s holds a dangling friend slot %s", u.Name, id)
			}
			if !friend.friends.Contains(u.ID) {
				return errors.Errorf("%s lists %s but not the other way round", u.Name, friend.Name)
			}
		}
	}
	return nil
}
