package textgrid

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	xunicode "golang.org/x/text/encoding/unicode"
)

const longGrid = `File type = "ooTextFile"
Object class = "TextGrid"

xmin = 0
xmax = 1.5
tiers? <exists>
size = 3
item []:
    item [1]:
        class = "IntervalTier"
        name = "production"
        xmin = 0
        xmax = 1.5
        intervals: size = 3
        intervals [1]:
            xmin = 0
            xmax = 0.25
            text = ""
        intervals [2]:
            xmin = 0.25
            xmax = 1.1
            text = "kæt"
        intervals [3]:
            xmin = 1.1
            xmax = 1.5
            text = "say ""hi"""
    item [2]:
        class = "IntervalTier"
        name = "vowels"
        xmin = 0
        xmax = 1.5
        intervals: size = 1
        intervals [1]:
            xmin = 0.4
            xmax = 0.6
            text = "æ"
    item [3]:
        class = "TextTier"
        name = "events"
        xmin = 0
        xmax = 1.5
        points: size = 1
        points [1]:
            number = 0.3
            mark = "click"
`

const shortGrid = `File type = "ooTextFile"
Object class = "TextGrid"

0
1.5
<exists>
2
"IntervalTier"
"words"
0
1.5
2
0
0.7
"kæt"
0.7
1.5
""
"TextTier"
"events"
0
1.5
1
0.3
"click"
`

func TestParseLong(t *testing.T) {
	tg, err := Parse(strings.NewReader(longGrid))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	if tg.XMin != 0 || tg.XMax != 1.5 {
		t.Errorf("range = [%v, %v], want [0, 1.5]", tg.XMin, tg.XMax)
	}
	if len(tg.Tiers) != 3 {
		t.Fatalf("tiers = %d, want 3", len(tg.Tiers))
	}

	prod := tg.Tier("production")
	if prod == nil {
		t.Fatal("production tier not found")
	}
	if len(prod.Intervals) != 3 {
		t.Fatalf("intervals = %d, want 3", len(prod.Intervals))
	}
	iv := prod.Intervals[1]
	if iv.XMin != 0.25 || iv.XMax != 1.1 || iv.Text != "kæt" {
		t.Errorf("interval = %+v, want {0.25 1.1 kæt}", iv)
	}
	if got := prod.Intervals[2].Text; got != `say "hi"` {
		t.Errorf("text = %q, want %q", got, `say "hi"`)
	}

	events := tg.Tier("events")
	if events == nil || events.Class != TextTier {
		t.Fatalf("events tier = %+v", events)
	}
	if len(events.Points) != 1 || events.Points[0].Time != 0.3 || events.Points[0].Mark != "click" {
		t.Errorf("points = %+v", events.Points)
	}
}

func TestParseShort(t *testing.T) {
	tg, err := Parse(strings.NewReader(shortGrid))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(tg.Tiers) != 2 {
		t.Fatalf("tiers = %d, want 2", len(tg.Tiers))
	}
	words := tg.Tier("words")
	if words == nil {
		t.Fatal("words tier not found")
	}
	marks := words.Marks()
	if len(marks) != 2 || marks[0] != "kæt" || marks[1] != "" {
		t.Errorf("marks = %q, want [kæt \"\"]", marks)
	}
	if got := tg.Tier("events").Marks(); len(got) != 1 || got[0] != "click" {
		t.Errorf("event marks = %q", got)
	}
}

func TestParseUTF16(t *testing.T) {
	enc := xunicode.UTF16(xunicode.LittleEndian, xunicode.UseBOM).NewEncoder()
	data, err := enc.String(shortGrid)
	if err != nil {
		t.Fatal(err)
	}
	tg, err := Parse(strings.NewReader(data))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if got := tg.Tier("words").Intervals[0].Text; got != "kæt" {
		t.Errorf("text = %q, want %q", got, "kæt")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"wrong_type", `File type = "ooBinaryFile"` + "\n" + `Object class = "TextGrid"`},
		{"wrong_class", `File type = "ooTextFile"` + "\n" + `Object class = "Sound"`},
		{"truncated", shortGrid[:strings.Index(shortGrid, `"kæt"`)]},
		{"unterminated", `File type = "ooTextFile`},
		{"bad_class", strings.Replace(shortGrid, `"TextTier"`, `"PointTier"`, 1)},
		{"bad_number", strings.Replace(shortGrid, "0.7\n\"kæt\"", "0.7x\n\"kæt\"", 1)},
		{"huge_interval_count", strings.Replace(shortGrid, "1.5\n2\n0\n0.7", "1.5\n1e18\n0\n0.7", 1)},
		{"huge_point_count", strings.Replace(shortGrid, "1.5\n1\n0.3", "1.5\n1e18\n0.3", 1)},
		{"huge_tier_count", strings.Replace(shortGrid, "<exists>\n2\n", "<exists>\n1e300\n", 1)},
		{"fractional_count", strings.Replace(shortGrid, "1.5\n2\n0\n0.7", "1.5\n2.5\n0\n0.7", 1)},
		{"negative_count", strings.Replace(shortGrid, "1.5\n2\n0\n0.7", "1.5\n-1\n0\n0.7", 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.input == shortGrid {
				t.Fatal("test input was not modified")
			}
			if _, err := Parse(strings.NewReader(tt.input)); err == nil {
				t.Error("Parse should fail")
			}
		})
	}
}

func TestWriteRoundTrip(t *testing.T) {
	tg, err := Parse(strings.NewReader(longGrid))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	var buf bytes.Buffer
	if err := tg.Write(&buf); err != nil {
		t.Fatalf("Write error: %v", err)
	}
	if buf.String() != longGrid {
		t.Errorf("Write output differs:\n%s", buf.String())
	}

	back, err := Parse(&buf)
	if err != nil {
		t.Fatalf("Parse written grid: %v", err)
	}
	if len(back.Tiers) != len(tg.Tiers) {
		t.Fatalf("tiers = %d, want %d", len(back.Tiers), len(tg.Tiers))
	}
	for i := range tg.Tiers {
		a, b := tg.Tiers[i], back.Tiers[i]
		if a.Name != b.Name || a.Class != b.Class || len(a.Intervals) != len(b.Intervals) || len(a.Points) != len(b.Points) {
			t.Errorf("tier %d = %+v, want %+v", i, b, a)
		}
	}
}

func TestWriteFileNoTiers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.TextGrid")
	tg := &TextGrid{XMax: 2}
	if err := tg.WriteFile(path); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}
	back, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if back.XMax != 2 || len(back.Tiers) != 0 {
		t.Errorf("got %+v, want xmax 2 and no tiers", back)
	}
}

func TestTierEditing(t *testing.T) {
	tg, err := Parse(strings.NewReader(longGrid))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	if !tg.RemoveTier("vowels") {
		t.Error("RemoveTier(vowels) = false")
	}
	if tg.RemoveTier("vowels") {
		t.Error("second RemoveTier(vowels) = true")
	}
	if err := tg.RenameTier("production", "S01"); err != nil {
		t.Fatalf("RenameTier error: %v", err)
	}
	if err := tg.RenameTier("production", "S02"); err == nil {
		t.Error("RenameTier of a missing tier should fail")
	}

	names := tg.TierNames()
	want := []string{"S01", "events"}
	if len(names) != len(want) {
		t.Fatalf("names = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}
