package prompt

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Validate resolves the prompt from the positional argument or stdin.
// With useStdin set, stdin wins even when an argument was also given.
func Validate(arg string, useStdin bool, stdin *os.File) (string, error) {
	if useStdin {
		return readStdin(stdin)
	}
	if arg == "" {
		return "", errors.New("no prompt provided: pass a PROMPT argument or use --stdin")
	}
	return arg, nil
}

func readStdin(stdin *os.File) (string, error) {
	if term.IsTerminal(int(stdin.Fd())) {
		return "", errors.New(`no input available from stdin: pipe a prompt, e.g. echo "question" | gemini-search query --stdin`)
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}

	content := strings.TrimSpace(string(data))
	if content == "" {
		return "", errors.New("empty input received from stdin")
	}
	return content, nil
}
