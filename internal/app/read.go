package app

import (
	"encoding/json"
)

func ReadJSON[T any](content []byte) (*T, error) {
	var t *T
	err := json.Unmarshal(content, &t)

	if err != nil {
		return nil, err
	}

	return t, nil
}

// readArgs decodes the protocol's untyped argument bag into a typed
// request struct by round-tripping through JSON, so field types are
// checked the same way a direct JSON body would be.
func readArgs[T any](args map[string]any) (*T, error) {
	if args == nil {
		args = map[string]any{}
	}

	content, err := json.Marshal(args)

	if err != nil {
		return nil, err
	}

	return ReadJSON[T](content)
}
