package services

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"

	"github.com/dgeast/jeju-sale1/cache"
	"github.com/dgeast/jeju-sale1/pipeline"
)

const datasetHeader = "주문번호,UID,셀러명,품종,주문경로,광역지역(정식),주문일,실결제 금액,주문수량,취소수량\n"

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLatestDatasetPathHighestVersionWins(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "preprocessed_data_2.csv", datasetHeader)
	writeFile(t, dir, "preprocessed_data_10.csv", datasetHeader)
	writeFile(t, dir, "preprocessed_data_9.csv", datasetHeader)

	path, err := LatestDatasetPath(dir)
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != "preprocessed_data_10.csv" {
		t.Fatalf("picked %s, want preprocessed_data_10.csv (numeric ordering, not lexical)", filepath.Base(path))
	}
}

func TestLatestDatasetPathUnversionedFallback(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "preprocessed_data.csv", datasetHeader)

	path, err := LatestDatasetPath(dir)
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != "preprocessed_data.csv" {
		t.Fatalf("picked %s, want the unversioned fallback", filepath.Base(path))
	}
}

func TestLatestDatasetPathMissing(t *testing.T) {
	_, err := LatestDatasetPath(t.TempDir())
	if !errors.Is(err, ErrNoDataset) {
		t.Fatalf("err = %v, want ErrNoDataset", err)
	}
}

func TestReadCSVRecordsUTF8BOM(t *testing.T) {
	dir := t.TempDir()
	content := "\xEF\xBB\xBF" + "셀러명,실결제 금액\n감귤농장,10000\n"
	path := writeFile(t, dir, "bom.csv", content)

	records, err := ReadCSVRecords(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0]["셀러명"] != "감귤농장" {
		t.Fatalf("BOM not stripped from header: %+v", records[0])
	}
}

func TestReadCSVRecordsEUCKRFallback(t *testing.T) {
	utf8Content := "셀러명,실결제 금액\n감귤농장,10000\n"
	encoded, _, err := transform.Bytes(korean.EUCKR.NewEncoder(), []byte(utf8Content))
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(encoded, []byte(utf8Content)) {
		t.Fatal("fixture did not round-trip through EUC-KR")
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "legacy.csv")
	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		t.Fatal(err)
	}

	records, err := ReadCSVRecords(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 || records[0]["셀러명"] != "감귤농장" {
		t.Fatalf("legacy encoding not decoded: %+v", records)
	}
}

func TestReadCSVRecordsSkipsMalformedLines(t *testing.T) {
	dir := t.TempDir()
	content := "a,b\n1,2\n\"unterminated\n3,4\n"
	path := writeFile(t, dir, "bad.csv", content)

	records, err := ReadCSVRecords(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 surviving record, got %d", len(records))
	}
	if records[0]["a"] != "1" {
		t.Fatalf("unexpected record: %+v", records[0])
	}
}

func TestLoadDatasetCachesUntilFileChanges(t *testing.T) {
	cache.InvalidateDataset()
	t.Cleanup(cache.InvalidateDataset)

	dir := t.TempDir()
	writeFile(t, dir, "preprocessed_data_1.csv",
		datasetHeader+"O1,c1,감귤농장,한라봉,네이버,서울특별시,2025-03-15,10000,1,0\n")

	rows, stats, err := LoadDataset(dir, pipeline.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 || stats.TotalRecords != 1 {
		t.Fatalf("rows=%d total=%d, want 1 and 1", len(rows), stats.TotalRecords)
	}
	if rows[0].SellerName != "감귤농장" || rows[0].PaidAmount != 10000 {
		t.Fatalf("unexpected row: %+v", rows[0])
	}

	// a second load with an unchanged file serves the cached rows
	again, _, err := LoadDataset(dir, pipeline.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if len(again) != 1 {
		t.Fatalf("cached load returned %d rows", len(again))
	}
}
