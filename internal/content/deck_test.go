package content

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/julianstephens/flipdeck/internal/models"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

var wantItems = []models.Item{
	{ID: 1, Prompt: "Taika Reform", Answer: "大化の改新", Note: "645"},
	{ID: 2, Prompt: "Heian-kyo", Answer: "平安京"},
}

func assertItems(t *testing.T, got []models.Item) {
	t.Helper()
	if len(got) != len(wantItems) {
		t.Fatalf("got %d items %+v, want %d", len(got), got, len(wantItems))
	}
	for i := range wantItems {
		if got[i] != wantItems[i] {
			t.Errorf("item %d = %+v, want %+v", i, got[i], wantItems[i])
		}
	}
}

func TestLoadItems_TSV(t *testing.T) {
	body := "1\tTaika Reform\t大化の改新\t645\r\n" +
		"\n" +
		"short\trow\n" +
		"2\tHeian-kyo\t平安京\n"
	items, err := LoadItems(writeFile(t, "deck.tsv", body))
	if err != nil {
		t.Fatalf("LoadItems() failed: %v", err)
	}
	assertItems(t, items)
}

func TestLoadItems_CSV(t *testing.T) {
	body := "id,prompt,answer,note\n" +
		"1,Taika Reform,大化の改新,645\n" +
		"2,\"Heian-kyo\",平安京\n"
	items, err := LoadItems(writeFile(t, "deck.csv", body))
	if err != nil {
		t.Fatalf("LoadItems() failed: %v", err)
	}
	assertItems(t, items)
}

func TestLoadItems_XLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.xlsx")

	f := excelize.NewFile()
	rows := [][]interface{}{
		{"id", "prompt", "answer", "note"},
		{1, "Taika Reform", "大化の改新", "645"},
		{2, "Heian-kyo", "平安京"},
	}
	for i, row := range rows {
		if err := f.SetSheetRow("Sheet1", fmt.Sprintf("A%d", i+1), &row); err != nil {
			t.Fatalf("failed to write row: %v", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("failed to save workbook: %v", err)
	}
	f.Close()

	items, err := LoadItems(path)
	if err != nil {
		t.Fatalf("LoadItems() failed: %v", err)
	}
	assertItems(t, items)

	if _, err := LoadItems(path, WithSheet("Missing")); err == nil {
		t.Error("LoadItems() with missing sheet succeeded, want error")
	}
}

func TestLoadItems_HTML(t *testing.T) {
	body := `<html><body>
<p>Nara to Heian</p>
<table>
  <tr><th>id</th><th>prompt</th><th>answer</th></tr>
  <tr><td>1</td><td>Taika Reform</td><td>大化の改新</td><td> 645 </td></tr>
  <tr><td>2</td><td>Heian-kyo</td><td>平安京</td></tr>
</table>
<table><tr><td>9</td><td>ignored</td><td>ignored</td></tr></table>
</body></html>`
	items, err := LoadItems(writeFile(t, "deck.html", body))
	if err != nil {
		t.Fatalf("LoadItems() failed: %v", err)
	}
	assertItems(t, items)
}

func TestLoadItems_Errors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
		want string
	}{
		{"unsupported extension", func(t *testing.T) string { return writeFile(t, "deck.pdf", "") }, "unsupported deck format"},
		{"missing file", func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.tsv") }, "failed to open deck"},
		{"html without table", func(t *testing.T) string { return writeFile(t, "deck.html", "<p>hi</p>") }, "no table"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadItems(tt.path(t))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("LoadItems() error = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestParseRows(t *testing.T) {
	rows := [][]string{
		{"3", "c", "C"},
		{"x", "header", "row"},
		{"1", "a"},
		{" 4 ", " d ", " D ", ""},
		{"3", "dup", "DUP"},
	}

	got := ParseRows(rows)
	want := []models.Item{
		{ID: 3, Prompt: "c", Answer: "C"},
		{ID: 4, Prompt: "d", Answer: "D"},
	}
	if len(got) != len(want) {
		t.Fatalf("ParseRows() = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("item %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}
