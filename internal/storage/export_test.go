// ABOUTME: Tests for export and import functionality.
// ABOUTME: Covers JSON round trip, YAML shape, and Markdown day export.
package storage

import (
	"strings"
	"testing"

	"github.com/aurafoods/calorie/internal/models"
)

func seedExportData(t *testing.T, db *DB) {
	t.Helper()
	f := models.NewFood(1, "Rice", 200).WithMacros(4, 45, 0.5)
	if err := db.DefineFood(f); err != nil {
		t.Fatalf("DefineFood failed: %v", err)
	}
	if err := db.AppendEntry(f.Snapshot("2024-01-01", 2)); err != nil {
		t.Fatalf("AppendEntry failed: %v", err)
	}
}

func TestExportImportJSONRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	seedExportData(t, db)

	data, err := db.ExportJSON()
	if err != nil {
		t.Fatalf("ExportJSON failed: %v", err)
	}

	db2 := setupTestDB(t)
	if err := db2.ImportJSON(data); err != nil {
		t.Fatalf("ImportJSON failed: %v", err)
	}

	got, err := db2.GetFood(1, "Rice")
	if err != nil {
		t.Fatalf("GetFood after import failed: %v", err)
	}
	if got.Calories != 200 {
		t.Errorf("Calories = %d, want 200", got.Calories)
	}

	entries, err := db2.ListDay(1, "2024-01-01")
	if err != nil {
		t.Fatalf("ListDay after import failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Calories != 400 {
		t.Errorf("imported entries mismatch: %+v", entries)
	}
}

func TestGetAllDataSnapshotMetadata(t *testing.T) {
	db := setupTestDB(t)
	seedExportData(t, db)

	data, err := db.GetAllData()
	if err != nil {
		t.Fatalf("GetAllData failed: %v", err)
	}
	if data.Version != "1.0" || data.Tool != "calorie" {
		t.Errorf("metadata mismatch: %+v", data)
	}
	if data.SnapshotID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Error("expected non-zero snapshot id")
	}
	if len(data.Foods) != 1 || len(data.Entries) != 1 {
		t.Errorf("expected 1 food and 1 entry, got %d/%d", len(data.Foods), len(data.Entries))
	}
}

func TestExportYAML(t *testing.T) {
	db := setupTestDB(t)
	seedExportData(t, db)

	out, err := db.ExportYAML()
	if err != nil {
		t.Fatalf("ExportYAML failed: %v", err)
	}

	s := string(out)
	if !strings.Contains(s, "Rice") {
		t.Errorf("YAML missing food name:\n%s", s)
	}
	if !strings.Contains(s, "2024-01-01") {
		t.Errorf("YAML missing log date:\n%s", s)
	}
}

func TestExportMarkdownDay(t *testing.T) {
	db := setupTestDB(t)
	seedExportData(t, db)

	out, err := db.ExportMarkdown(1, "2024-01-01")
	if err != nil {
		t.Fatalf("ExportMarkdown failed: %v", err)
	}
	if !strings.Contains(out, "| 2 | Rice | 400 |") {
		t.Errorf("markdown missing entry row:\n%s", out)
	}
	if !strings.Contains(out, "Total: 400 kcal") {
		t.Errorf("markdown missing totals:\n%s", out)
	}
}

func TestExportMarkdownEmptyDay(t *testing.T) {
	db := setupTestDB(t)

	out, err := db.ExportMarkdown(1, "2024-01-01")
	if err != nil {
		t.Fatalf("ExportMarkdown failed: %v", err)
	}
	if !strings.Contains(out, "No entries.") {
		t.Errorf("expected empty-day marker:\n%s", out)
	}
}
