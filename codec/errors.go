package codec

import (
	"errors"
	"fmt"
)

// ErrUnknownCodec is returned when no codec is registered under a name.
var ErrUnknownCodec = errors.New("unknown codec")

// ErrNotText is wrapped by DecodeError when the stored value is neither a
// string nor a byte slice.
var ErrNotText = errors.New("value is not encoded text")

// DecodeError reports stored text that a codec could not parse.
type DecodeError struct {
	Codec string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s decode: %v", e.Codec, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// EncodeError reports a value a codec cannot represent.
type EncodeError struct {
	Codec string
	Err   error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("%s encode: %v", e.Codec, e.Err)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}

// DecodeText decodes a stored attribute value with c. Strings and byte
// slices are decoded, nil decodes to nil, anything else is a *DecodeError
// wrapping ErrNotText.
func DecodeText(c Codec, stored any) (any, error) {
	switch typed := stored.(type) {
	case nil:
		return nil, nil
	case string:
		return c.Decode(typed)
	case []byte:
		return c.Decode(string(typed))
	default:
		return nil, &DecodeError{Codec: c.Name(), Err: fmt.Errorf("%w: got %T", ErrNotText, stored)}
	}
}
