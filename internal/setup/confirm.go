package setup

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirmer answers a yes/no question put to the operator. Non-interactive
// invocations substitute a predetermined answer.
type Confirmer func(question string) (bool, error)

// NewReaderConfirmer returns a Confirmer that prompts on w and reads a y/N
// answer from r. Anything other than yes is treated as a decline.
func NewReaderConfirmer(r io.Reader, w io.Writer) Confirmer {
	reader := bufio.NewReader(r)
	return func(question string) (bool, error) {
		fmt.Fprintf(w, "%s [y/N]: ", question)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return false, fmt.Errorf("read confirmation: %w", err)
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		return answer == "y" || answer == "yes", nil
	}
}

// ConfirmAlways returns a Confirmer with a fixed answer.
func ConfirmAlways(answer bool) Confirmer {
	return func(string) (bool, error) { return answer, nil }
}
