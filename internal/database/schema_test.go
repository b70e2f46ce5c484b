package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/asset-tracker/internal/config"
	"github.com/asset-tracker/internal/domain"
	"github.com/asset-tracker/internal/dto"
	"github.com/asset-tracker/internal/repository"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := Open(config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "assets.db"),
	})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { Close(db) })
	return db
}

func TestEnsureSchema_CreatesTables(t *testing.T) {
	db := openTestDB(t)

	if err := EnsureSchema(context.Background(), db); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}

	m := db.Migrator()
	if !m.HasTable("Assets") {
		t.Error("expected Assets table")
	}
	if !m.HasTable("Employees") {
		t.Error("expected Employees table")
	}
	for _, col := range []string{"name", "value", "city", "room", "date_received"} {
		if !m.HasColumn(&domain.Asset{}, col) {
			t.Errorf("expected Assets.%s", col)
		}
	}
}

func TestEnsureSchema_Idempotent(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	if err := EnsureSchema(ctx, db); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := db.Create(&domain.Asset{
		Name: "Laptop", Value: 10, City: "Kyiv", Street: "Main",
		BuildingNumber: "1", Room: "2", DateReceived: "01-02-2024",
	}).Error; err != nil {
		t.Fatalf("insert: %v", err)
	}
	if err := EnsureSchema(ctx, db); err != nil {
		t.Fatalf("second run: %v", err)
	}

	var count int64
	db.Model(&domain.Asset{}).Count(&count)
	if count != 1 {
		t.Errorf("expected existing row to survive, got %d rows", count)
	}
}

func TestEnsureSchema_PatchesLegacyTables(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	legacy := []string{
		`CREATE TABLE Assets (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			description TEXT,
			value DECIMAL(10, 2) NOT NULL,
			responsible_person TEXT,
			purchase_place TEXT,
			city TEXT NOT NULL,
			street TEXT NOT NULL,
			building_number TEXT NOT NULL,
			room TEXT NOT NULL
		)`,
		`CREATE TABLE Employees (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			position TEXT NOT NULL,
			hire_date TEXT NOT NULL
		)`,
		`INSERT INTO Assets (name, description, value, responsible_person, purchase_place, city, street, building_number, room)
			VALUES ('Desk', '', 50, '', '', 'Lviv', 'Shevchenka', '3', '12')`,
		`INSERT INTO Employees (name, position, hire_date) VALUES ('Olena', 'Engineer', '05-03-2019')`,
		`INSERT INTO Employees (name, position, hire_date) VALUES ('Taras', 'Driver', '7-11-2015')`,
	}
	for _, stmt := range legacy {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("legacy setup: %v", err)
		}
	}

	if err := EnsureSchema(ctx, db); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}

	for _, col := range legacyColumns {
		if !db.Migrator().HasColumn(col.model, col.name) {
			t.Errorf("expected column %s to be added", col.name)
		}
	}

	var asset domain.Asset
	if err := db.First(&asset).Error; err != nil {
		t.Fatalf("read asset: %v", err)
	}
	if asset.DateReceived != "01-01-2000" {
		t.Errorf("expected default date_received, got %q", asset.DateReceived)
	}

	var emp domain.Employee
	if err := db.First(&emp).Error; err != nil {
		t.Fatalf("read employee: %v", err)
	}
	if emp.Salary != 0 || emp.Department != "" || emp.Supervisor != "" {
		t.Errorf("expected zero defaults, got %+v", emp)
	}

	var driver domain.Employee
	if err := db.Where("name = ?", "Taras").First(&driver).Error; err != nil {
		t.Fatalf("read employee: %v", err)
	}
	if driver.HireDate != "07-11-2015" {
		t.Errorf("expected hire_date padded, got %q", driver.HireDate)
	}

	if err := EnsureSchema(ctx, db); err != nil {
		t.Fatalf("re-run on patched schema: %v", err)
	}
}

func legacyAssetsTable(t *testing.T, db *gorm.DB, dates ...string) {
	t.Helper()

	stmt := `CREATE TABLE Assets (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		description TEXT,
		value DECIMAL(10, 2) NOT NULL,
		responsible_person TEXT,
		purchase_place TEXT,
		city TEXT NOT NULL,
		street TEXT NOT NULL,
		building_number TEXT NOT NULL,
		room TEXT NOT NULL,
		date_received TEXT NOT NULL
	)`
	if err := db.Exec(stmt).Error; err != nil {
		t.Fatalf("legacy setup: %v", err)
	}
	for _, d := range dates {
		err := db.Exec(`INSERT INTO Assets (name, value, city, street, building_number, room, date_received)
			VALUES (?, 1, 'Kyiv', 'Main', '1', '1', ?)`, d, d).Error
		if err != nil {
			t.Fatalf("legacy insert: %v", err)
		}
	}
}

func TestEnsureSchema_NormalizesLegacyDates(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	legacyAssetsTable(t, db, "5-1-2024", "20-12-2023", "05-02-2024", "1-10-999", "someday")

	if err := EnsureSchema(ctx, db); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	if err := EnsureSchema(ctx, db); err != nil {
		t.Fatalf("second run: %v", err)
	}

	var assets []domain.Asset
	if err := db.Order("id").Find(&assets).Error; err != nil {
		t.Fatalf("read assets: %v", err)
	}
	want := []string{"05-01-2024", "20-12-2023", "05-02-2024", "01-10-0999", "someday"}
	if len(assets) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(assets))
	}
	for i, a := range assets {
		if a.DateReceived != want[i] {
			t.Errorf("row %d (%s): expected %q, got %q", i, a.Name, want[i], a.DateReceived)
		}
	}
}

func TestEnsureSchema_LegacyDatesFilterByRange(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	legacyAssetsTable(t, db, "5-1-2024", "20-12-2023")

	if err := EnsureSchema(ctx, db); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}

	got, err := repository.NewAssetRepository(db).List(ctx, &dto.ListAssetsQuery{
		Date: &dto.DateRange{Start: "01-01-2024", End: "31-01-2024"},
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].Name != "5-1-2024" {
		t.Errorf("expected only the January asset, got %+v", got)
	}
}
