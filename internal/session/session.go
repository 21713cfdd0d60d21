package session

import (
	"fmt"

	"github.com/google/uuid"
)

// DefaultUserID is the simulated customer identity. The simulation has no real
// authentication; everything downstream consumes Info without caring where it
// came from, so a real authenticator can replace this source without touching
// the injection contract.
const DefaultUserID = "cus_28X44"

// Info identifies the customer session on whose behalf tools run.
type Info struct {
	UserID    string
	SessionID string
}

// New creates a session for the given user, minting a fresh session id.
// An empty userID falls back to the simulated default.
func New(userID string) Info {
	if userID == "" {
		userID = DefaultUserID
	}
	return Info{
		UserID:    userID,
		SessionID: fmt.Sprintf("session_%s", uuid.NewString()),
	}
}
