package profile

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/jlym/frienddir/internal/util"
)

// FileStore reads profile pictures. Pictures are plain text (ASCII art).
type FileStore interface {
	ReadTextFile(path string) ([]string, error)
	Exists(path string) bool
}

// OSFileStore reads pictures from the local file system.
type OSFileStore struct{}

func NewOSFileStore() *OSFileStore {
	return &OSFileStore{}
}

func (s *OSFileStore) ReadTextFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening picture failed, path=%q", path)
	}
	defer f.Close()

	var lines []string
	reader := bufio.NewReader(f)
	for {
		line, err := util.ReadLine(reader)
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, errors.Wrapf(err, "reading picture failed, path=%q", path)
		}
		lines = append(lines, line)
	}
}
