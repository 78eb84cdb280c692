// Package helper holds small utilities shared by the handlers and the CLI.
package helper

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// GenerateUUID returns a random UUID string, used as the id of new history
// records and temp upload files.
func GenerateUUID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generating uuid: %w", err)
	}
	return id.String(), nil
}

// PrettyPrint writes v to stdout as indented JSON. Values that cannot be
// marshalled are logged and nothing is printed.
func PrettyPrint(v interface{}) {
	s, err := prettyJSON(v)
	if err != nil {
		log.Warn().Err(err).Msg("pretty print failed")
		return
	}
	fmt.Println(s)
}

func prettyJSON(v interface{}) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
