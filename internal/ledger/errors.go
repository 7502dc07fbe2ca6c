package ledger

import (
	"fmt"

	"github.com/track2success-dev/track2success/internal/model"
)

// ValidationError describes a malformed transaction input. The store state
// is untouched when one is returned.
type ValidationError struct {
	Field       string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Description)
}

// NotFoundError signals a reference to an id with no stored transaction,
// typically a stale id held by the caller.
type NotFoundError struct {
	ID model.ID
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("transaction %d not found", e.ID)
}
