package protocol

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tinylib/msgp/msgp"
)

// Format selects how server frames are encoded for a connection.
type Format string

const (
	FormatJSON    Format = "json"
	FormatMsgpack Format = "msgpack"
)

// ErrUnknownFormat is returned for an unsupported ?format= value.
var ErrUnknownFormat = errors.New("unknown format")

// ParseFormat maps a query value to a Format. Empty means JSON.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatMsgpack:
		return FormatMsgpack, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Outbound is a server frame.
type Outbound interface {
	msgp.Marshaler
	msgp.Unmarshaler
}

// Binary reports whether frames in f go out as websocket binary messages.
func (f Format) Binary() bool {
	return f == FormatMsgpack
}

// Marshal encodes msg in format f.
func Marshal(f Format, msg Outbound) ([]byte, error) {
	switch f {
	case FormatMsgpack:
		return msg.MarshalMsg(nil)
	case FormatJSON, "":
		return json.Marshal(msg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// Unmarshal decodes a server frame in format f into msg.
func Unmarshal(f Format, data []byte, msg Outbound) error {
	switch f {
	case FormatMsgpack:
		_, err := msg.UnmarshalMsg(data)
		return err
	case FormatJSON, "":
		return json.Unmarshal(data, msg)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// PeekType returns the type field of an encoded server frame.
func PeekType(f Format, data []byte) (MessageType, error) {
	if f != FormatMsgpack {
		var head struct {
			Type MessageType `json:"type"`
		}
		if err := json.Unmarshal(data, &head); err != nil {
			return "", err
		}
		return head.Type, nil
	}

	sz, bts, err := msgp.ReadMapHeaderBytes(data)
	if err != nil {
		return "", err
	}
	for range sz {
		var field []byte
		if field, bts, err = msgp.ReadMapKeyZC(bts); err != nil {
			return "", err
		}
		if string(field) == "type" {
			s, _, err := msgp.ReadStringBytes(bts)
			return MessageType(s), err
		}
		if bts, err = msgp.Skip(bts); err != nil {
			return "", err
		}
	}
	return "", errors.New("frame has no type")
}
