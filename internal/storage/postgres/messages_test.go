// internal/storage/postgres/messages_test.go
package postgres

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The inner DISTINCT ON must order by partner to pick each conversation's
// latest message; only the outer query may order the inbox by recency.
func TestMessageRepo_ListInbox_OrdersByRecency(t *testing.T) {
	q := &recordingQuerier{}
	repo := &MessageRepo{db: q}

	_, err := repo.ListInbox(context.Background(), 7)
	require.NoError(t, err)

	closing := strings.LastIndex(q.lastSQL, ")")
	require.Greater(t, closing, 0)
	assert.Contains(t, q.lastSQL[closing:], "ORDER BY sent_at DESC")
}
