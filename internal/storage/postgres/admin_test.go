// internal/storage/postgres/admin_test.go
package postgres

import (
	"context"
	"os"
	"regexp"
	"strings"
	"testing"

	"talenthub/internal/transport/dto"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingQuerier captures the SQL a repo method renders so tests can check
// it against the schema without a database.
type recordingQuerier struct {
	lastSQL  string
	lastArgs []any
}

func (q *recordingQuerier) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	q.lastSQL = sql
	q.lastArgs = args
	return emptyRows{}, nil
}

func (q *recordingQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	q.lastSQL = sql
	q.lastArgs = args
	return noRow{}
}

func (q *recordingQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	q.lastSQL = sql
	q.lastArgs = args
	return pgconn.CommandTag{}, nil
}

type emptyRows struct{}

func (emptyRows) Close()                                       {}
func (emptyRows) Err() error                                   { return nil }
func (emptyRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (emptyRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (emptyRows) Next() bool                                   { return false }
func (emptyRows) Scan(...any) error                            { return nil }
func (emptyRows) Values() ([]any, error)                       { return nil, nil }
func (emptyRows) RawValues() [][]byte                          { return nil }
func (emptyRows) Conn() *pgx.Conn                              { return nil }

type noRow struct{}

func (noRow) Scan(...any) error { return pgx.ErrNoRows }

// schemaColumns parses the embedded DDL into a table -> column set.
func schemaColumns(t *testing.T) map[string]map[string]bool {
	t.Helper()

	ddl, err := os.ReadFile("../../database/schema.sql")
	require.NoError(t, err)

	tables := map[string]map[string]bool{}
	tableRe := regexp.MustCompile(`(?s)CREATE TABLE IF NOT EXISTS (\w+) \((.*?)\n\);`)
	for _, m := range tableRe.FindAllStringSubmatch(string(ddl), -1) {
		cols := map[string]bool{}
		for _, line := range strings.Split(m[2], "\n") {
			fields := strings.Fields(line)
			if len(fields) == 0 {
				continue
			}
			name := fields[0]
			// Column definitions start with a lowercase identifier;
			// constraints and comments do not.
			if strings.HasPrefix(name, "--") || name != strings.ToLower(name) {
				continue
			}
			cols[name] = true
		}
		tables[m[1]] = cols
	}
	require.NotEmpty(t, tables)
	return tables
}

func newTestAdminRepo(q *recordingQuerier) *AdminRepo {
	return &AdminRepo{db: q, sb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar)}
}

func TestAdminRepo_ListCommunities_JoinsCreator(t *testing.T) {
	q := &recordingQuerier{}
	repo := newTestAdminRepo(q)

	_, err := repo.ListCommunities(context.Background(), &dto.ListRequest{Limit: 25})
	require.NoError(t, err)
	assert.Contains(t, q.lastSQL, "JOIN users u ON u.id = c.created_by")
}

// Every aliased column reference in the admin listing queries has to exist in
// the schema the migrator applies; a typo here only surfaces at request time.
func TestAdminRepo_ListingsMatchSchema(t *testing.T) {
	ctx := context.Background()
	tables := schemaColumns(t)
	req := &dto.ListRequest{Query: "x", Limit: 25, Offset: 0}

	q := &recordingQuerier{}
	repo := newTestAdminRepo(q)

	listings := []struct {
		name string
		run  func() error
	}{
		{"Users", func() error { _, err := repo.ListUsers(ctx, req); return err }},
		{"Jobs", func() error { _, err := repo.ListJobs(ctx, req); return err }},
		{"Posts", func() error { _, err := repo.ListPosts(ctx, req); return err }},
		{"Communities", func() error { _, err := repo.ListCommunities(ctx, req); return err }},
	}

	aliasRe := regexp.MustCompile(`(?i)(?:FROM|JOIN)\s+(\w+)\s+(\w+)`)
	refRe := regexp.MustCompile(`\b(\w+)\.(\w+)\b`)

	for _, l := range listings {
		t.Run(l.name, func(t *testing.T) {
			require.NoError(t, l.run())

			aliases := map[string]string{}
			for _, m := range aliasRe.FindAllStringSubmatch(q.lastSQL, -1) {
				if _, known := tables[m[1]]; known {
					aliases[m[2]] = m[1]
				}
			}
			require.NotEmpty(t, aliases)

			for _, m := range refRe.FindAllStringSubmatch(q.lastSQL, -1) {
				table, bound := aliases[m[1]]
				if !bound {
					continue
				}
				assert.True(t, tables[table][m[2]],
					"%s.%s does not exist in table %s", m[1], m[2], table)
			}
		})
	}
}
