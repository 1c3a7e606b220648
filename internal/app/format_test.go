package app

import (
	"reflect"
	"testing"
)

func TestFormatContentClassifiesHeadingListAndBold(t *testing.T) {
	got := FormatContent("# Title\n- item1\n**bold** text\n")
	want := []ContentBlock{
		{Kind: BlockHeading, Level: 1, Text: "Title"},
		{Kind: BlockListItem, Text: "item1"},
		{Kind: BlockParagraph, Spans: []Span{
			{Text: "bold", Bold: true},
			{Text: " text", Bold: false},
		}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("block mismatch:\n got: %#v\nwant: %#v", got, want)
	}
}

func TestFormatContentHeadingLevels(t *testing.T) {
	got := FormatContent("### deep\n## mid\n# top")
	if len(got) != 3 {
		t.Fatalf("expected 3 blocks, got %d", len(got))
	}
	for i, level := range []int{3, 2, 1} {
		if got[i].Kind != BlockHeading || got[i].Level != level {
			t.Fatalf("block %d: got kind=%v level=%d, want heading level %d", i, got[i].Kind, got[i].Level, level)
		}
	}
}

func TestFormatContentBulletMarkers(t *testing.T) {
	got := FormatContent("- dash\n• dot")
	if len(got) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(got))
	}
	if got[0].Text != "dash" || got[1].Text != "dot" {
		t.Fatalf("list texts: %q, %q", got[0].Text, got[1].Text)
	}
}

func TestFormatContentSuppressesFenceLines(t *testing.T) {
	got := FormatContent("```go\nfmt.Println(1)\n```")
	want := []ContentBlock{
		{Kind: BlockParagraph, Spans: []Span{{Text: "fmt.Println(1)"}}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("fence handling mismatch:\n got: %#v\nwant: %#v", got, want)
	}
}

func TestFormatContentBlankLinesBecomeBlankBlocks(t *testing.T) {
	got := FormatContent("one\n\ntwo")
	if len(got) != 3 {
		t.Fatalf("expected 3 blocks, got %d: %#v", len(got), got)
	}
	if got[1].Kind != BlockBlank {
		t.Fatalf("middle block should be blank, got %#v", got[1])
	}
}

func TestFormatContentHeadingWinsOverBold(t *testing.T) {
	got := FormatContent("# a **b**")
	if len(got) != 1 || got[0].Kind != BlockHeading {
		t.Fatalf("expected heading to win precedence, got %#v", got)
	}
	if got[0].Text != "a **b**" {
		t.Fatalf("heading text: %q", got[0].Text)
	}
}

func TestFormatContentBoldSpanParity(t *testing.T) {
	got := FormatContent("a **b** c **d**")
	want := []Span{
		{Text: "a ", Bold: false},
		{Text: "b", Bold: true},
		{Text: " c ", Bold: false},
		{Text: "d", Bold: true},
	}
	if len(got) != 1 || !reflect.DeepEqual(got[0].Spans, want) {
		t.Fatalf("span mismatch:\n got: %#v\nwant: %#v", got, want)
	}
}

func TestFormatContentIsDeterministic(t *testing.T) {
	input := "# h\n\n- a\n**x** y\nplain"
	first := FormatContent(input)
	second := FormatContent(input)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same input produced different blocks")
	}
}
