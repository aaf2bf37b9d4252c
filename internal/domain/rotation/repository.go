package rotation

import "context"

type Repository interface {
	// Advance bumps the owner's cursor to (last_index+1) mod length and
	// returns the new index, creating the cursor at -1 on first use. Read,
	// increment and write happen under one row lock, never as a separate
	// read then write.
	Advance(ctx context.Context, ownerID string, length int) (int, error)
	Get(ctx context.Context, ownerID string) (*Cursor, error)
}
