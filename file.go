package scriptfs

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strings"
)

// maxLineSize bounds a single line read by the line scanner
const maxLineSize = 16 * 1024 * 1024

// FileExist reports whether path exists and is not a directory
func FileExist(path string) bool {
	stat, _ := os.Stat(path)
	if stat == nil {
		return false
	}

	return !stat.IsDir()
}

// DirectoryExist reports whether path exists and is a directory
func DirectoryExist(path string) bool {
	stat, _ := os.Stat(path)
	if stat == nil {
		return false
	}

	return stat.IsDir()
}

// ReadFileLines reads file content as slice of lines. Trailing empty
// lines are dropped, empty lines elsewhere are kept.
func ReadFileLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, newOpenFileError(path, err)
	}
	defer file.Close()

	lines, err := scanLines(file)
	if err != nil {
		return nil, newReadFileLinesError(path, err)
	}

	return lines, nil
}

// JoinLines joins lines with a newline separator
func JoinLines(lines []string) string {
	return strings.Join(lines, "\n")
}

// scanLines splits r into lines on \n, \r\n or a lone \r and drops empty
// lines from the end.
func scanLines(r io.Reader) ([]string, error) {
	lines := []string{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	scanner.Split(splitLines)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return trimTrailingEmpty(lines), nil
}

func splitLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}

		switch {
		case i+1 < len(data) && data[i+1] == '\n':
			return i + 2, data[:i], nil
		case i+1 < len(data) || atEOF:
			return i + 1, data[:i], nil
		}

		// A \r at the end of the buffer may be followed by \n
		return 0, nil, nil
	}

	if atEOF {
		return len(data), data, nil
	}

	return 0, nil, nil
}

func trimTrailingEmpty(lines []string) []string {
	end := len(lines)
	for end > 0 && lines[end-1] == "" {
		end--
	}

	return lines[:end]
}
