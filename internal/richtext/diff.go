package richtext

import (
	"github.com/sergi/go-diff/diffmatchpatch"
)

// SpanKind marks how a diff span relates the old text to the new text.
type SpanKind int

const (
	SpanEqual SpanKind = iota
	SpanInsert
	SpanDelete
)

// Span is one run of text in a computed diff.
type Span struct {
	Kind SpanKind
	Text string
}

// Diff compares two rich-content strings on their tag-stripped plain text
// and returns insert/delete/equal spans for side-by-side rendering.
//
// When either side is empty after stripping there is nothing to compare:
// the content is wholly new or wholly removed, not an edit. Diff returns
// nil in that case.
func Diff(oldContent, newContent string) []Span {
	oldText := Strip(oldContent)
	newText := Strip(newContent)

	if oldText == "" || newText == "" {
		return nil
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(oldText, newText, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	spans := make([]Span, 0, len(diffs))
	for _, d := range diffs {
		if d.Text == "" {
			continue
		}
		spans = append(spans, Span{Kind: spanKind(d.Type), Text: d.Text})
	}

	return spans
}

func spanKind(op diffmatchpatch.Operation) SpanKind {
	switch op {
	case diffmatchpatch.DiffInsert:
		return SpanInsert
	case diffmatchpatch.DiffDelete:
		return SpanDelete
	default:
		return SpanEqual
	}
}
