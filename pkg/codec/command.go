package codec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/sprig/pkg/domain"
)

// ErrEmptyCommand is returned for blank lines.
var ErrEmptyCommand = errors.New("empty command")

// ParseCommand reads one line of the text grammar:
//
//	add <text...>
//	rm <index>
//	mv <from> <to>
//	clear
func ParseCommand(line string) (domain.Action, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, ErrEmptyCommand
	}

	verb := strings.ToLower(fields[0])
	args := fields[1:]

	switch verb {
	case "add":
		// Keep the text as typed, minus the verb.
		text := strings.TrimSpace(strings.TrimSpace(line)[len(fields[0]):])
		if text == "" {
			return nil, fmt.Errorf("%w: add requires text", ErrInvalidPayload)
		}
		return domain.AddTodo{Text: text}, nil

	case "rm", "remove":
		idx, err := intArgs(verb, args, 1)
		if err != nil {
			return nil, err
		}
		return domain.RemoveTodo{Index: idx[0]}, nil

	case "mv", "move":
		idx, err := intArgs(verb, args, 2)
		if err != nil {
			return nil, err
		}
		return domain.MoveTodo{From: idx[0], To: idx[1]}, nil

	case "clear":
		if len(args) != 0 {
			return nil, fmt.Errorf("%w: clear takes no arguments", ErrInvalidPayload)
		}
		return domain.ClearAll{}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, verb)
	}
}

// FormatCommand is the inverse of ParseCommand.
func FormatCommand(action domain.Action) string {
	switch a := action.(type) {
	case domain.AddTodo:
		return "add " + a.Text
	case domain.RemoveTodo:
		return fmt.Sprintf("rm %d", a.Index)
	case domain.MoveTodo:
		return fmt.Sprintf("mv %d %d", a.From, a.To)
	case domain.ClearAll:
		return "clear"
	default:
		return ""
	}
}

func intArgs(verb string, args []string, n int) ([]int, error) {
	if len(args) != n {
		return nil, fmt.Errorf("%w: %s expects %d integer argument(s), got %d", ErrInvalidPayload, verb, n, len(args))
	}
	out := make([]int, n)
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %q is not an integer", ErrInvalidPayload, verb, a)
		}
		out[i] = v
	}
	return out, nil
}
