package testutil

import (
	"github.com/google/uuid"
)

// MakeGameID returns a random upstream-style game id. The deals API identifies
// games by UUID.
func MakeGameID() string {
	return uuid.NewString()
}
