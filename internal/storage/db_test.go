package storage

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/meltforce/repflow/migrations"
)

// TestEmbeddedMigrations verifies the schema shipped inside the binary is a
// well-formed migration set: the source driver accepts it and every up
// migration has a matching down.
func TestEmbeddedMigrations(t *testing.T) {
	if _, err := iofs.New(migrations.FS, "."); err != nil {
		t.Fatalf("embedded migrations rejected by source driver: %v", err)
	}

	files, err := fs.Glob(migrations.FS, "*.sql")
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no migrations embedded")
	}

	ups := map[string]bool{}
	downs := map[string]bool{}
	for _, f := range files {
		switch {
		case strings.HasSuffix(f, ".up.sql"):
			ups[strings.TrimSuffix(f, ".up.sql")] = true
		case strings.HasSuffix(f, ".down.sql"):
			downs[strings.TrimSuffix(f, ".down.sql")] = true
		default:
			t.Errorf("migration %q is neither .up.sql nor .down.sql", f)
		}
	}
	for name := range ups {
		if !downs[name] {
			t.Errorf("migration %q has no down migration", name)
		}
	}
	for name := range downs {
		if !ups[name] {
			t.Errorf("migration %q has no up migration", name)
		}
	}
}
