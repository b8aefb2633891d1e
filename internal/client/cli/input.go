package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
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

// GetMultiline prints a prompt to w and reads multiple lines until an empty
// line is entered. The trailing newline on each line is trimmed and the
// collected text is joined with '\n'.
//
// This helper is used for diary texts and conversation notes.
func GetMultiline(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n(press Enter on an empty line to finish)\n"); err != nil {
		return "", err
	}

	var lines []string
	for {
		line, _ := reader.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}
		lines = append(lines, line)
	}

	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

// GetIntInRange prompts for an integer between min and max inclusive. An
// empty line returns def. Out-of-range or non-numeric input re-prompts.
func GetIntInRange(reader *bufio.Reader, prompt string, min, max, def int, w io.Writer) (int, error) {
	for {
		line, err := GetSimpleText(reader, fmt.Sprintf("%s [%d-%d]", prompt, min, max), w)
		if err != nil {
			return 0, err
		}
		if line == "" {
			return def, nil
		}
		v, err := strconv.Atoi(line)
		if err != nil || v < min || v > max {
			if _, err := fmt.Fprintf(w, "Please enter a number between %d and %d\n", min, max); err != nil {
				return 0, err
			}
			continue
		}
		return v, nil
	}
}
