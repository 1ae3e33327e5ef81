package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The trailing newline is trimmed. If EOF occurs after some input was read,
// the partial line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetOptionalText reads a single line like GetSimpleText, but an empty line
// means "leave unchanged" and yields nil. Used by the update flow, where
// absent fields must be preserved.
func GetOptionalText(reader *bufio.Reader, prompt string, w io.Writer) (*string, error) {
	line, err := GetSimpleText(reader, prompt+" (empty line to keep current)", w)
	if err != nil {
		return nil, err
	}
	if line == "" {
		return nil, nil
	}
	return &line, nil
}
