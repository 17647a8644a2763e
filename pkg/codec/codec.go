package codec

import (
	"errors"
	"fmt"

	"github.com/aretw0/sprig/pkg/domain"
	"github.com/mitchellh/mapstructure"
)

var (
	// ErrUnknownAction is returned when an envelope names no known action kind.
	ErrUnknownAction = errors.New("unknown action type")
	// ErrInvalidPayload is returned when a payload can't be decoded into its variant.
	ErrInvalidPayload = errors.New("invalid action payload")
)

// Envelope is the wire shape of an action.
// It uses "mapstructure" tags so it decodes from YAML, JSON or MCP arguments alike.
type Envelope struct {
	Type    string         `json:"type" yaml:"type" mapstructure:"type"`
	Payload map[string]any `json:"payload,omitempty" yaml:"payload,omitempty" mapstructure:"payload"`
}

// Decode turns an envelope into its typed action.
func Decode(env Envelope) (domain.Action, error) {
	switch domain.ActionKind(env.Type) {
	case domain.KindAddTodo:
		var a domain.AddTodo
		if err := decodePayload(env, &a, "text"); err != nil {
			return nil, err
		}
		return a, nil

	case domain.KindRemoveTodo:
		var a domain.RemoveTodo
		if err := decodePayload(env, &a, "index"); err != nil {
			return nil, err
		}
		return a, nil

	case domain.KindMoveTodo:
		var a domain.MoveTodo
		if err := decodePayload(env, &a, "from", "to"); err != nil {
			return nil, err
		}
		return a, nil

	case domain.KindClearAll:
		if len(env.Payload) > 0 {
			return nil, fmt.Errorf("%w: %s takes no payload", ErrInvalidPayload, env.Type)
		}
		return domain.ClearAll{}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, env.Type)
	}
}

// DecodeMap decodes a loosely typed map (e.g. parsed JSON) into an action.
func DecodeMap(raw map[string]any) (domain.Action, error) {
	var env Envelope
	if err := mapstructure.Decode(raw, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return Decode(env)
}

// Encode turns an action into its wire envelope.
func Encode(action domain.Action) Envelope {
	env := Envelope{Type: string(domain.KindOf(action))}

	switch a := action.(type) {
	case domain.AddTodo:
		env.Payload = map[string]any{"text": a.Text}
	case domain.RemoveTodo:
		env.Payload = map[string]any{"index": a.Index}
	case domain.MoveTodo:
		env.Payload = map[string]any{"from": a.From, "to": a.To}
	}
	return env
}

func decodePayload(env Envelope, out any, required ...string) error {
	for _, key := range required {
		if _, ok := env.Payload[key]; !ok {
			return fmt.Errorf("%w: %s requires %q", ErrInvalidPayload, env.Type, key)
		}
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true, // JSON numbers arrive as float64 or json.Number
		ErrorUnused:      true,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(env.Payload); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidPayload, env.Type, err)
	}
	return nil
}
