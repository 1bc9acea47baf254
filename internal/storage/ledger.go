package storage

import "time"

// Ledger holds the posts written to one user. Posts are kept oldest first
// internally and handed out newest first.
type Ledger struct {
	posts []Post
}

func (l *Ledger) Len() int {
	return len(l.posts)
}

func (l *Ledger) push(p Post) {
	l.posts = append(l.posts, p)
}

// Posts returns a copy of the ledger, newest first.
func (l *Ledger) Posts() []Post {
	out := make([]Post, len(l.posts))
	for i, p := range l.posts {
		out[len(l.posts)-1-i] = p
	}
	return out
}

func (l *Ledger) drop() {
	l.posts = nil
}

// CreatePost writes contents from author onto target's ledger, provided target
// lists author as a friend. Users that are nil or no longer in the directory
// are rejected with ErrNullUser.
func (d *Directory) CreatePost(author, target *User, contents string, at time.Time) error {
	if !d.owns(author) || !d.owns(target) {
		return ErrNullUser
	}
	if !target.friends.Contains(author.ID) {
		return ErrNotFriends
	}

	target.ledger.push(Post{
		Author:    author.Name,
		Contents:  contents,
		CreatedAt: at,
	})
	return nil
}
