package common

import (
	"context"
	"errors"

	"github.com/doug-martin/goqu/v9"
)

var ErrSessionClosed = errors.New("session already closed")

// Session is a single unit of work against the store. Statements issued
// through it share one transaction. Callers decide when to Commit; Close
// releases whatever is left and must be deferred right after Session.
type Session struct {
	*goqu.TxDatabase
	dialect string
	done    bool
}

// Session begins a new unit of work bound to ctx.
func (s *Store) Session(ctx context.Context) (*Session, error) {
	tx, err := s.gq.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	return &Session{TxDatabase: tx, dialect: s.dsn.Dialect}, nil
}

// SupportsReturning reports whether INSERT ... RETURNING can be used to
// read back generated keys.
func (s *Session) SupportsReturning() bool {
	return s.dialect == dialectPostgres
}

func (s *Session) Commit() error {
	if s.done {
		return ErrSessionClosed
	}
	s.done = true

	return s.TxDatabase.Commit()
}

// Close rolls back an uncommitted session. Calling it after Commit or a
// previous Close is a no-op.
func (s *Session) Close() error {
	if s.done {
		return nil
	}
	s.done = true

	return s.TxDatabase.Rollback()
}
