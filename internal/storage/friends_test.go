package storage_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/jlym/frienddir/internal/storage"
	"github.com/stretchr/testify/require"
)

func TestFriendSet(t *testing.T) {
	set := storage.NewFriendSet(3)
	a, b, c, d := uuid.New(), uuid.New(), uuid.New(), uuid.New()

	require.Equal(t, 3, set.Cap())
	require.Equal(t, 0, set.FirstOpen())

	for i, id := range []uuid.UUID{a, b, c} {
		slot, err := set.Add(id)
		require.NoError(t, err)
		require.Equal(t, i, slot)
	}
	require.True(t, set.Full())
	require.Equal(t, -1, set.FirstOpen())

	_, err := set.Add(d)
	require.ErrorIs(t, err, storage.ErrCapacityExceeded)

	require.True(t, set.Remove(b))
	require.False(t, set.Remove(b))
	require.Equal(t, 2, set.Len())
	require.Equal(t, 1, set.FirstOpen())

	slot, err := set.Add(d)
	require.NoError(t, err)
	require.Equal(t, 1, slot)
	require.Equal(t, []uuid.UUID{a, d, c}, set.IDs())
}

func TestMakeFriends(t *testing.T) {
	d := newTestDirectory(t, "alice", "bob")

	require.NoError(t, d.MakeFriends("alice", "bob"))
	require.True(t, d.AreFriends("alice", "bob"))
	require.True(t, d.AreFriends("bob", "alice"))
	require.Equal(t, []string{"bob"}, d.FriendNames(d.FindUser("alice")))
	require.Equal(t, []string{"alice"}, d.FriendNames(d.FindUser("bob")))
	require.NoError(t, d.CheckSymmetry())

	require.ErrorIs(t, d.MakeFriends("bob", "alice"), storage.ErrAlreadyFriends)
	require.Equal(t, 1, d.FindUser("alice").FriendCount())
}

func TestMakeFriendsErrorPrecedence(t *testing.T) {
	limits := storage.Limits{MaxNameLength: 31, MaxFriends: 1}

	testCases := []struct {
		Description string
		Setup       [][2]string
		NameA       string
		NameB       string
		ExpectedErr error
	}{
		{
			Description: "missing user beats self friending",
			NameA:       "ghost",
			NameB:       "ghost",
			ExpectedErr: storage.ErrUserNotFound,
		},
		{
			Description: "missing second user",
			NameA:       "alice",
			NameB:       "ghost",
			ExpectedErr: storage.ErrUserNotFound,
		},
		{
			Description: "self friending beats capacity",
			Setup:       [][2]string{{"alice", "bob"}},
			NameA:       "alice",
			NameB:       "alice",
			ExpectedErr: storage.ErrSelfFriend,
		},
		{
			Description: "capacity beats already friends",
			Setup:       [][2]string{{"alice", "bob"}},
			NameA:       "alice",
			NameB:       "bob",
			ExpectedErr: storage.ErrCapacityExceeded,
		},
		{
			Description: "capacity on the second user",
			Setup:       [][2]string{{"bob", "carol"}},
			NameA:       "alice",
			NameB:       "bob",
			ExpectedErr: storage.ErrCapacityExceeded,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Description, func(t *testing.T) {
			d := storage.NewDirectory(limits)
			for _, name := range []string{"alice", "bob", "carol"} {
				_, err := d.CreateUser(name)
				require.NoError(t, err)
			}
			for _, pair := range tc.Setup {
				require.NoError(t, d.MakeFriends(pair[0], pair[1]))
			}
			before := friendCounts(d)

			err := d.MakeFriends(tc.NameA, tc.NameB)
			require.ErrorIs(t, err, tc.ExpectedErr)
			require.Equal(t, before, friendCounts(d))
			require.NoError(t, d.CheckSymmetry())
		})
	}
}

func friendCounts(d *storage.Directory) map[string]int {
	counts := make(map[string]int)
	for _, name := range d.ListUsers() {
		counts[name] = d.FindUser(name).FriendCount()
	}
	return counts
}

func TestMakeFriendsCapacity(t *testing.T) {
	names := fakeNames(t, storage.DefaultLimits.MaxFriends+2)
	d := newTestDirectory(t, names...)
	hub, rest := names[0], names[1:]

	for _, name := range rest[:storage.DefaultLimits.MaxFriends] {
		require.NoError(t, d.MakeFriends(hub, name))
	}
	extra := rest[len(rest)-1]

	err := d.MakeFriends(extra, hub)
	require.ErrorIs(t, err, storage.ErrCapacityExceeded)
	require.Equal(t, storage.DefaultLimits.MaxFriends, d.FindUser(hub).FriendCount())
	require.Zero(t, d.FindUser(extra).FriendCount())
	require.False(t, d.AreFriends(hub, extra))
}

func TestFriendSlotsReuseLowestOpen(t *testing.T) {
	d := newTestDirectory(t, "alice", "bob", "carol", "dave")
	require.NoError(t, d.MakeFriends("alice", "bob"))
	require.NoError(t, d.MakeFriends("alice", "carol"))

	require.NoError(t, d.DeleteUser("bob"))
	require.NoError(t, d.MakeFriends("alice", "dave"))

	// dave takes bob's old slot, ahead of carol.
	require.Equal(t, []string{"dave", "carol"}, d.FriendNames(d.FindUser("alice")))
}

func TestAreFriendsMissingUsers(t *testing.T) {
	d := newTestDirectory(t, "alice")
	require.False(t, d.AreFriends("alice", "ghost"))
	require.False(t, d.AreFriends("ghost", "alice"))
	require.False(t, d.AreFriends("alice", "alice"))
}

func TestPurgeReferences(t *testing.T) {
	d := newTestDirectory(t, "alice", "bob", "carol")
	require.NoError(t, d.MakeFriends("alice", "bob"))
	require.NoError(t, d.MakeFriends("carol", "bob"))
	require.NoError(t, d.MakeFriends("alice", "carol"))

	require.Equal(t, 2, d.PurgeReferences("bob"))
	require.Equal(t, []string{"carol"}, d.FriendNames(d.FindUser("alice")))
	require.Equal(t, []string{"alice"}, d.FriendNames(d.FindUser("carol")))
	require.Zero(t, d.PurgeReferences("ghost"))
}

func TestSymmetryHoldsUnderRandomOps(t *testing.T) {
	names := fakeNames(t, 12)
	d := newTestDirectory(t, names...)

	for i, a := range names {
		for _, b := range names[i:] {
			_ = d.MakeFriends(a, b)
		}
		require.NoError(t, d.CheckSymmetry())
	}
	for _, name := range names[:4] {
		require.NoError(t, d.DeleteUser(name))
		require.NoError(t, d.CheckSymmetry())
	}
	for _, a := range d.ListUsers() {
		for _, b := range d.ListUsers() {
			require.Equal(t, d.AreFriends(a, b), d.AreFriends(b, a))
		}
	}
}
