package loader

import (
	"errors"

	"github.com/pelletier/go-toml/v2"
)

func unmarshalTOML(source string, data []byte, v any) error {
	if err := toml.Unmarshal(data, v); err != nil {
		perr := &ParseError{Path: source, Message: err.Error(), Err: err}
		var decErr *toml.DecodeError
		if errors.As(err, &decErr) {
			perr.Line, perr.Column = decErr.Position()
		}
		return perr
	}
	return nil
}

func marshalTOML(v any) ([]byte, error) {
	return toml.Marshal(v)
}
