package util

import (
	"bufio"
	"io"
	"strings"
)

// ReadLine returns the next line from r without its line ending. Lines have no
// length limit. A last line without a newline comes back with a nil error;
// io.EOF is returned only once nothing is left.
func ReadLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	if err != nil {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}
