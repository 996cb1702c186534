package prompt

import (
	"bytes"
	"strings"
	"testing"
)

func TestSelect_PicksByNumber(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("2\n"), &out)

	got, err := p.Select("Pick a framework:", []string{"react", "nextjs", "vue"}, "react")
	if err != nil {
		t.Fatalf("Select() error: %v", err)
	}
	if got != "nextjs" {
		t.Errorf("Select() = %q, want %q", got, "nextjs")
	}
	if !strings.Contains(out.String(), "Pick a framework:") {
		t.Error("question was not written to output")
	}
}

func TestSelect_EmptyAnswerUsesDefault(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("\n"), &out)

	got, err := p.Select("Pick:", []string{"react", "nextjs", "vue"}, "vue")
	if err != nil {
		t.Fatalf("Select() error: %v", err)
	}
	if got != "vue" {
		t.Errorf("Select() = %q, want %q", got, "vue")
	}
}

func TestSelect_UnknownDefaultFallsBackToFirst(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("\n"), &out)

	got, err := p.Select("Pick:", []string{"react", "vue"}, "svelte")
	if err != nil {
		t.Fatalf("Select() error: %v", err)
	}
	if got != "react" {
		t.Errorf("Select() = %q, want %q", got, "react")
	}
}

func TestSelect_InvalidInput(t *testing.T) {
	cases := []string{"0\n", "4\n", "abc\n"}
	for _, input := range cases {
		t.Run(strings.TrimSpace(input), func(t *testing.T) {
			var out bytes.Buffer
			p := New(strings.NewReader(input), &out)
			if _, err := p.Select("Pick:", []string{"a", "b", "c"}, "a"); err == nil {
				t.Errorf("Select(%q) expected error, got nil", input)
			}
		})
	}
}

func TestMultiSelect_OrderedAndDeduplicated(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("3, 1, 3\n"), &out)

	got, err := p.MultiSelect("Pick features:", []string{"styling", "state", "testing"})
	if err != nil {
		t.Fatalf("MultiSelect() error: %v", err)
	}
	want := []string{"testing", "styling"}
	if len(got) != len(want) {
		t.Fatalf("MultiSelect() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("MultiSelect()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestMultiSelect_EmptySelectsNothing(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("\n"), &out)

	got, err := p.MultiSelect("Pick:", []string{"a", "b"})
	if err != nil {
		t.Fatalf("MultiSelect() error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("MultiSelect() = %v, want empty", got)
	}
}

func TestConfirm(t *testing.T) {
	cases := []struct {
		input      string
		defaultYes bool
		want       bool
	}{
		{"y\n", false, true},
		{"yes\n", false, true},
		{"n\n", true, false},
		{"no\n", true, false},
		{"\n", true, true},
		{"\n", false, false},
		{"Y\n", false, true},
	}

	for _, tc := range cases {
		t.Run(strings.TrimSpace(tc.input)+"_default", func(t *testing.T) {
			var out bytes.Buffer
			p := New(strings.NewReader(tc.input), &out)
			got, err := p.Confirm("Continue?", tc.defaultYes)
			if err != nil {
				t.Fatalf("Confirm() error: %v", err)
			}
			if got != tc.want {
				t.Errorf("Confirm(%q, %v) = %v, want %v", tc.input, tc.defaultYes, got, tc.want)
			}
		})
	}
}

func TestConfirm_InvalidAnswer(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("maybe\n"), &out)
	if _, err := p.Confirm("Continue?", true); err == nil {
		t.Error("expected error for invalid answer")
	}
}

func TestInput_DefaultOnEmpty(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("\n"), &out)

	got, err := p.Input("App name", "my-app")
	if err != nil {
		t.Fatalf("Input() error: %v", err)
	}
	if got != "my-app" {
		t.Errorf("Input() = %q, want %q", got, "my-app")
	}
}

func TestInput_TrimsWhitespace(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("  demo  \n"), &out)

	got, err := p.Input("App name", "")
	if err != nil {
		t.Fatalf("Input() error: %v", err)
	}
	if got != "demo" {
		t.Errorf("Input() = %q, want %q", got, "demo")
	}
}

func TestReadLine_LastLineWithoutNewline(t *testing.T) {
	var out bytes.Buffer
	p := New(strings.NewReader("2"), &out)

	got, err := p.Select("Pick:", []string{"a", "b"}, "a")
	if err != nil {
		t.Fatalf("Select() error: %v", err)
	}
	if got != "b" {
		t.Errorf("Select() = %q, want %q", got, "b")
	}
}
