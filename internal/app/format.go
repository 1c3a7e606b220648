package app

import "strings"

// BlockKind discriminates ContentBlock variants.
type BlockKind int

const (
	BlockHeading BlockKind = iota
	BlockListItem
	BlockParagraph
	BlockBlank
)

// Span is a run of paragraph text with a single weight.
type Span struct {
	Text string
	Bold bool
}

// ContentBlock is one classified line of assistant output.
type ContentBlock struct {
	Kind  BlockKind
	Level int    // headings only, 1..3
	Text  string // headings and list items
	Spans []Span // paragraphs only
}

// FormatContent turns a message's content into typed blocks, one per
// line, classified independently. First match wins: heading markers
// (###/##/#), list markers (-/•), bold-span paragraphs (** pairs),
// code-fence lines (suppressed entirely; fenced bodies render as
// ordinary lines), plain paragraphs, blanks. Pure and stateless:
// identical input always yields identical output.
func FormatContent(content string) []ContentBlock {
	lines := strings.Split(content, "\n")
	// A trailing newline is not a blank line.
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	blocks := make([]ContentBlock, 0, len(lines))
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "### "):
			blocks = append(blocks, ContentBlock{Kind: BlockHeading, Level: 3, Text: strings.TrimPrefix(line, "### ")})
		case strings.HasPrefix(line, "## "):
			blocks = append(blocks, ContentBlock{Kind: BlockHeading, Level: 2, Text: strings.TrimPrefix(line, "## ")})
		case strings.HasPrefix(line, "# "):
			blocks = append(blocks, ContentBlock{Kind: BlockHeading, Level: 1, Text: strings.TrimPrefix(line, "# ")})
		case strings.HasPrefix(line, "- "), strings.HasPrefix(line, "• "):
			text := strings.TrimPrefix(line, "- ")
			text = strings.TrimPrefix(text, "• ")
			blocks = append(blocks, ContentBlock{Kind: BlockListItem, Text: strings.TrimLeft(text, " ")})
		case strings.Contains(line, "**"):
			blocks = append(blocks, ContentBlock{Kind: BlockParagraph, Spans: splitBoldSpans(line)})
		case strings.HasPrefix(line, "```"):
			continue
		case strings.TrimSpace(line) != "":
			blocks = append(blocks, ContentBlock{Kind: BlockParagraph, Spans: []Span{{Text: line}}})
		default:
			blocks = append(blocks, ContentBlock{Kind: BlockBlank})
		}
	}
	return blocks
}

// splitBoldSpans splits a line on "**" into alternating plain/bold
// spans; odd-indexed segments are bold. Empty segments are dropped.
func splitBoldSpans(line string) []Span {
	parts := strings.Split(line, "**")
	spans := make([]Span, 0, len(parts))
	for i, part := range parts {
		if part == "" {
			continue
		}
		spans = append(spans, Span{Text: part, Bold: i%2 == 1})
	}
	return spans
}
