package database

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsArePaired(t *testing.T) {
	names, err := fs.Glob(migrations, "migrations/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, names)

	ups := map[string]bool{}
	downs := map[string]bool{}
	for _, n := range names {
		switch {
		case strings.HasSuffix(n, ".up.sql"):
			ups[strings.TrimSuffix(n, ".up.sql")] = true
		case strings.HasSuffix(n, ".down.sql"):
			downs[strings.TrimSuffix(n, ".down.sql")] = true
		default:
			t.Errorf("migration %s is neither up nor down", n)
		}
	}
	assert.Equal(t, ups, downs)
}

func TestInitialSchemaCreatesResourceTables(t *testing.T) {
	b, err := migrations.ReadFile("migrations/000001_init_schema.up.sql")
	require.NoError(t, err)

	for _, table := range []string{"users", "customers", "stores", "vend_infos", "payments"} {
		assert.Contains(t, string(b), "CREATE TABLE IF NOT EXISTS "+table+" (")
	}
}
