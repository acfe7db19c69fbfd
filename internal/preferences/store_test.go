package preferences

import (
	"context"
	"path/filepath"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func backends(t *testing.T) map[string]Store {
	t.Helper()

	sqliteStore, err := OpenSQLite(filepath.Join(t.TempDir(), "prefs.db"), DefaultName)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if err := sqliteStore.Close(); err != nil {
			t.Fatalf("close sqlite: %v", err)
		}
	})

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})

	return map[string]Store{
		"memory": NewMemoryStore(),
		"sqlite": sqliteStore,
		"redis":  NewRedisStore(client, DefaultName),
	}
}

func TestStoreSaveThenLoadRoundTrip(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			if err := store.Save(ctx, "Clenio", "5511987654321", "4821"); err != nil {
				t.Fatalf("save: %v", err)
			}
			rec, err := store.Load(ctx)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if rec.Name != Value("Clenio") || rec.Phone != Value("5511987654321") || rec.Token != Value("4821") {
				t.Fatalf("unexpected record %+v", rec)
			}
		})
	}
}

func TestStoreLoadEmptyYieldsAbsentFields(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			rec, err := store.Load(context.Background())
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if rec.Name.Valid || rec.Phone.Valid || rec.Token.Valid {
				t.Fatalf("expected all fields absent, got %+v", rec)
			}
		})
	}
}

func TestStoreSaveOverwritesPreviousRecord(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			if err := store.Save(ctx, "Ana", "5521900000000", "1000"); err != nil {
				t.Fatalf("first save: %v", err)
			}
			if err := store.Save(ctx, "Bia", "5531911111111", "9998"); err != nil {
				t.Fatalf("second save: %v", err)
			}
			rec, err := store.Load(ctx)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if rec.Name.String != "Bia" || rec.Phone.String != "5531911111111" || rec.Token.String != "9998" {
				t.Fatalf("expected second generation only, got %+v", rec)
			}
		})
	}
}

func TestStoreKeepsEmptyStringsPresent(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			if err := store.Save(ctx, "", "", "1234"); err != nil {
				t.Fatalf("save: %v", err)
			}
			rec, err := store.Load(ctx)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if !rec.Name.Valid || rec.Name.String != "" {
				t.Fatalf("expected present empty name, got %+v", rec.Name)
			}
		})
	}
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.db")
	ctx := context.Background()

	first, err := OpenSQLite(path, DefaultName)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := first.Save(ctx, "Clenio", "5511987654321", "4821"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	second, err := OpenSQLite(path, DefaultName)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer second.Close()

	rec, err := second.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if rec.Token.String != "4821" {
		t.Fatalf("expected persisted token, got %+v", rec.Token)
	}

	other, err := OpenSQLite(path, "another.store")
	if err != nil {
		t.Fatalf("open other store: %v", err)
	}
	defer other.Close()
	otherRec, err := other.Load(ctx)
	if err != nil {
		t.Fatalf("load other: %v", err)
	}
	if otherRec.Token.Valid {
		t.Fatalf("expected named stores to be isolated")
	}
}

func TestOpenSQLiteRequiresPath(t *testing.T) {
	if _, err := OpenSQLite(" ", DefaultName); err == nil {
		t.Fatalf("expected error for empty path")
	}
}
