package lexer

import (
	"bufio"
	"fmt"
	"os"
)

// TokenSource is the capability the parser depends on: a lazy, finite,
// non-restartable sequence of tokens with position accessors. Two
// concrete implementations exist, the string-backed Scanner and the
// file-backed FileSource.
type TokenSource interface {
	// NextToken returns the next token, returning TokenEOF forever once
	// the source is exhausted.
	NextToken() Token

	// PeekToken returns the next token without advancing.
	PeekToken() Token

	// Line returns the current 1-based line number.
	Line() int

	// Column returns the current 1-based column number.
	Column() int
}

var (
	_ TokenSource = (*Scanner)(nil)
	_ TokenSource = (*FileSource)(nil)
)

// FileSource is a file-backed token source. The file is read lazily, a
// line at a time, into the scanner's append-only buffer, so tokens that
// cross line boundaries (block comments) and PeekToken snapshots both
// work without re-reading the file.
type FileSource struct {
	*Scanner
	file *os.File
}

// NewFileSource opens path and returns a token source over its contents.
// The caller owns the source and must Close it when done.
func NewFileSource(path string) (*FileSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open source file: %w", err)
	}

	r := bufio.NewReader(f)
	sc := New("")
	sc.fill = func() (string, bool) {
		line, err := r.ReadString('\n')
		if err != nil {
			// Deliver any final unterminated line, then report exhaustion.
			return line, false
		}
		return line, true
	}

	return &FileSource{Scanner: sc, file: f}, nil
}

// Close releases the underlying file.
func (fs *FileSource) Close() error {
	return fs.file.Close()
}
