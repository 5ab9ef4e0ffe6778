package protocol

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lox/skyjo/internal/game"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas
var schemaFiles embed.FS

const clientSchemaURL = "https://skyjo.dev/schemas/client.json"

// ErrInvalidMessage wraps every frame rejected before it reaches the engine.
var ErrInvalidMessage = errors.New("invalid message")

// Decoder validates client frames against the embedded schema and turns
// them into commands. It is safe for concurrent use.
type Decoder struct {
	schema *jsonschema.Schema
}

// NewDecoder compiles the client schema.
func NewDecoder() (*Decoder, error) {
	data, err := schemaFiles.ReadFile("schemas/client.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read client schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(clientSchemaURL, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("failed to add client schema: %w", err)
	}
	schema, err := compiler.Compile(clientSchemaURL)
	if err != nil {
		return nil, fmt.Errorf("failed to compile client schema: %w", err)
	}
	return &Decoder{schema: schema}, nil
}

// Decode validates data and returns the command it describes.
func (d *Decoder) Decode(data []byte) (Command, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}
	if err := d.schema.Validate(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}

	var f frame
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}
	return f.command()
}

func (f frame) command() (Command, error) {
	switch f.Type {
	case TypeCreateRoom:
		return CreateRoom{Player: f.Player, Name: f.Name}, nil
	case TypeJoinRoom:
		return JoinRoom{Room: f.Room, Player: f.Player, Name: f.Name}, nil
	case TypeRejoin:
		return Rejoin{Room: f.Room, Player: f.Player}, nil
	case TypeLeaveRoom:
		return LeaveRoom{}, nil
	case TypeStartGame:
		return StartGame{Options: game.Options{
			WinThreshold: f.WinThreshold,
			SingleRound:  f.SingleRound,
		}}, nil
	case TypeAction:
		a, err := game.NewAction(f.Action, f.Index)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidMessage, err)
		}
		return SubmitAction{Action: a}, nil
	case TypeNextRound:
		return NextRound{}, nil
	case TypeRestart:
		return Restart{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown message type %q", ErrInvalidMessage, f.Type)
	}
}
