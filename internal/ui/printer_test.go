package ui_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jlym/frienddir/internal/profile"
	"github.com/jlym/frienddir/internal/ui"
	"github.com/stretchr/testify/require"
)

func TestUserList(t *testing.T) {
	var buf bytes.Buffer
	ui.NewPrinter(&buf).UserList([]string{"alice", "bob"})
	require.Equal(t, "User List\n    alice\n    bob\n", buf.String())
}

func TestProfile(t *testing.T) {
	var buf bytes.Buffer
	ui.NewPrinter(&buf).Profile(&profile.View{
		Picture: []string{"<o>"},
		Name:    "bob",
		Friends: []string{"carol", "alice"},
		Posts: []profile.PostView{
			{Author: "carol", Date: "Wed May  1 10:30:00 2024", Contents: "second"},
			{Author: "alice", Date: "Wed May  1 09:30:00 2024", Contents: "first"},
		},
	})

	want := strings.Join([]string{
		"<o>",
		"",
		"Name: bob",
		"",
		"------------------------------------------",
		"Friends:",
		"carol",
		"alice",
		"------------------------------------------",
		"Posts:",
		"From: carol",
		"Date: Wed May  1 10:30:00 2024",
		"",
		"second",
		"",
		"===",
		"",
		"From: alice",
		"Date: Wed May  1 09:30:00 2024",
		"",
		"first",
		"------------------------------------------",
		"",
	}, "\n")
	require.Equal(t, want, buf.String())
}

func TestProfileWithoutPicture(t *testing.T) {
	var buf bytes.Buffer
	ui.NewPrinter(&buf).Profile(&profile.View{Name: "dave"})
	require.True(t, strings.HasPrefix(buf.String(), "Name: dave\n"))
	require.Contains(t, buf.String(), "Friends:\n------------------------------------------\nPosts:\n")
}

func TestError(t *testing.T) {
	var buf bytes.Buffer
	ui.NewPrinter(&buf).Error("Incorrect syntax")
	require.Equal(t, "Incorrect syntax\n", buf.String())
}
