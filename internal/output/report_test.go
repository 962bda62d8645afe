package output_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/rpgo/growth-calculator/internal/calculation"
	"github.com/rpgo/growth-calculator/internal/config"
	"github.com/rpgo/growth-calculator/internal/domain"
	"github.com/rpgo/growth-calculator/internal/output"
)

func runFixture(t *testing.T, path string) *domain.BatchResult {
	t.Helper()
	cfg, err := config.NewInputParser().LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile(%s) error: %v", path, err)
	}
	results, err := calculation.NewCalculationEngineWithDisplay(cfg.Display).RunScenarios(context.Background(), cfg)
	if err != nil {
		t.Fatalf("RunScenarios error: %v", err)
	}
	return results
}

func TestReportPipeline_AllFormats(t *testing.T) {
	results := runFixture(t, "../config/testdata/scenarios.yaml")

	for _, format := range append(output.AvailableFormatterNames(), output.AvailableFormatAliases()...) {
		var buf bytes.Buffer
		if err := output.GenerateReport(&buf, results, format); err != nil {
			t.Fatalf("GenerateReport %s error: %v", format, err)
		}
		if buf.Len() == 0 {
			t.Fatalf("GenerateReport %s wrote nothing", format)
		}
	}
}

func TestReportPipeline_ConsoleKorean(t *testing.T) {
	results := runFixture(t, "../config/testdata/scenarios.yaml")

	var buf bytes.Buffer
	if err := output.GenerateReport(&buf, results, "console"); err != nil {
		t.Fatalf("GenerateReport error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"총 수익률: 10%",
		"총 금액: 1,104,000원",
		"약 110만원대",
		"총 금액: 7,052,000원",
		"약 700만원대",
		"총 수익률: 97%",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("console report missing %q:\n%s", want, out)
		}
	}
}

func TestReportPipeline_CSVRows(t *testing.T) {
	results := runFixture(t, "../config/testdata/scenarios.toml")

	var buf bytes.Buffer
	if err := output.GenerateReport(&buf, results, "csv"); err != nil {
		t.Fatalf("GenerateReport error: %v", err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("csv parse error: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[1][0] != "baseline" || rows[2][0] != "rate only" {
		t.Fatalf("unexpected scenario order: %v / %v", rows[1][0], rows[2][0])
	}
	if rows[1][7] != "approximately 110 man range" {
		t.Fatalf("baseline summary = %q", rows[1][7])
	}
	if rows[2][6] != "" {
		t.Fatalf("rate-only scenario should have no amount, got %q", rows[2][6])
	}
}

func TestGenerateReport_UnknownFormat(t *testing.T) {
	results := runFixture(t, "../config/testdata/scenarios.toml")
	err := output.GenerateReport(&bytes.Buffer{}, results, "html")
	if err == nil || !strings.Contains(err.Error(), "Try one of") {
		t.Fatalf("expected unsupported format error, got %v", err)
	}
}
