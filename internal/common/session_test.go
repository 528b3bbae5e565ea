package common

import (
	"context"
	"testing"

	"github.com/doug-martin/goqu/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countBlogs(t *testing.T, store *Store) int {
	t.Helper()

	var count int
	err := store.DB().QueryRow("SELECT COUNT(*) FROM blogs").Scan(&count)
	require.NoError(t, err)

	return count
}

func insertBlog(t *testing.T, s *Session) {
	t.Helper()

	_, err := s.Insert("blogs").Rows(goqu.Record{"title": "Test Blog", "body": "This is a test blog."}).Executor().ExecContext(context.Background())
	require.NoError(t, err)
}

func TestSessionCommit(t *testing.T) {
	store := TestDB(t)

	s, err := store.Session(context.Background())
	require.NoError(t, err)
	defer s.Close()

	insertBlog(t, s)
	assert.NoError(t, s.Commit())

	assert.Equal(t, 1, countBlogs(t, store))

	// closing after commit releases nothing and reports nothing
	assert.NoError(t, s.Close())
	assert.ErrorIs(t, s.Commit(), ErrSessionClosed)
}

func TestSessionCloseDiscardsUncommittedWork(t *testing.T) {
	store := TestDB(t)

	func() {
		s, err := store.Session(context.Background())
		require.NoError(t, err)
		defer s.Close()

		insertBlog(t, s)
	}()

	assert.Equal(t, 0, countBlogs(t, store))

	// the single sqlite connection must be free again
	s, err := store.Session(context.Background())
	require.NoError(t, err)
	assert.NoError(t, s.Close())
	assert.NoError(t, s.Close())
}

func TestSessionSupportsReturning(t *testing.T) {
	store := TestDB(t)

	s, err := store.Session(context.Background())
	require.NoError(t, err)
	defer s.Close()

	assert.False(t, s.SupportsReturning())
}
