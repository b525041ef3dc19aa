package mongo

import (
	"context"
	"fmt"

	"jobboard-api/internal/storage"

	"go.mongodb.org/mongo-driver/mongo"
)

// TxRunner runs units of work inside a MongoDB session transaction when the
// deployment supports it (replica set or sharded cluster). Standalone servers
// run fn directly.
type TxRunner struct {
	client  *mongo.Client
	enabled bool
}

// NewTxRunner creates a TxRunner. enabled must only be true against a
// deployment that supports multi-document transactions.
func NewTxRunner(client *mongo.Client, enabled bool) *TxRunner {
	return &TxRunner{client: client, enabled: enabled && client != nil}
}

var _ storage.TxRunner = (*TxRunner)(nil)

func (t *TxRunner) Transactional() bool { return t.enabled }

// WithinTransaction passes a session context to fn; repositories pick up the
// session from ctx automatically.
func (t *TxRunner) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if !t.enabled {
		return fn(ctx)
	}

	session, err := t.client.StartSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}
