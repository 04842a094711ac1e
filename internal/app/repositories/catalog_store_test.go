package repositories

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/yigit/coursefinder/internal/pkg/apperrors"
)

func TestCatalogStoreNotReady(t *testing.T) {
	store := NewCatalogStore(newTestLoader(t, testCourses, testRequirements), zerolog.Nop())
	if _, err := store.Current(); !errors.Is(err, apperrors.ErrCatalogNotReady) {
		t.Fatalf("expected ErrCatalogNotReady before Reload, got %v", err)
	}
}

func TestCatalogStoreReloadSwapsSnapshot(t *testing.T) {
	dir := t.TempDir()
	cp := writeFixture(t, dir, "courses_master.csv", testCourses)
	rp := writeFixture(t, dir, "program_requirements.csv", testRequirements)
	store := NewCatalogStore(NewCSVCatalogLoader(cp, rp, "", zerolog.Nop()), zerolog.Nop())

	if err := store.Reload(); err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	before, err := store.Current()
	if err != nil {
		t.Fatalf("Current failed: %v", err)
	}

	writeFixture(t, dir, "program_requirements.csv", testRequirements+"ME,PE100,elective\n")
	if err := store.Reload(); err != nil {
		t.Fatalf("second Reload failed: %v", err)
	}
	after, _ := store.Current()
	if after == before {
		t.Fatal("Reload did not swap the catalog")
	}
	if len(after.Programs()) != 3 || len(before.Programs()) != 2 {
		t.Errorf("snapshots were not independent: before=%v after=%v", before.Programs(), after.Programs())
	}
}

func TestCatalogStoreKeepsPreviousOnFailure(t *testing.T) {
	dir := t.TempDir()
	cp := writeFixture(t, dir, "courses_master.csv", testCourses)
	rp := writeFixture(t, dir, "program_requirements.csv", testRequirements)
	store := NewCatalogStore(NewCSVCatalogLoader(cp, rp, "", zerolog.Nop()), zerolog.Nop())
	if err := store.Reload(); err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	before, _ := store.Current()

	if err := os.Remove(filepath.Join(dir, "courses_master.csv")); err != nil {
		t.Fatalf("remove: %v", err)
	}
	err := store.Reload()
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound from Reload, got %v", err)
	}

	after, err := store.Current()
	if err != nil || after != before {
		t.Errorf("failed reload replaced the catalog: %v", err)
	}
}
