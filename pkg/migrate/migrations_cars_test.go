package migrate_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readMigration(t *testing.T, pattern string) string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join("migrations", pattern))
	if err != nil {
		t.Fatalf("glob migrations: %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("no migration matching %q found", pattern)
	}
	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read migration file: %v", err)
	}
	return string(data)
}

func TestCarsMigrationContainsConstraints(t *testing.T) {
	content := readMigration(t, "*_create_cars.sql")

	checks := []string{
		"CREATE TABLE IF NOT EXISTS cars",
		"CHECK (price >= 0)",
		"CHECK (mileage >= 0)",
		"CHECK (country IN ('domestic', 'foreign'))",
		"DROP TABLE IF EXISTS cars",
	}
	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestPreOrdersMigrationContainsConstraints(t *testing.T) {
	content := readMigration(t, "*_create_pre_orders.sql")

	checks := []string{
		"CREATE TABLE IF NOT EXISTS pre_orders",
		"FOREIGN KEY (car_id) REFERENCES cars(id) ON DELETE RESTRICT",
		"CHECK (status IN ('pending', 'confirmed', 'cancelled'))",
		"DROP TABLE IF EXISTS pre_orders",
	}
	for _, sub := range checks {
		if !strings.Contains(content, sub) {
			t.Errorf("missing expected statement %q", sub)
		}
	}
}

func TestSeedMigrationShipsIllustrativeCatalog(t *testing.T) {
	content := readMigration(t, "*_seed_cars.sql")

	for _, sub := range []string{"Toyota", "BMW", "LADA"} {
		if !strings.Contains(content, sub) {
			t.Errorf("seed catalog missing %q", sub)
		}
	}
}
