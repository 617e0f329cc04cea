package merge

import (
	"fmt"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Report describes the structure of a merged document.
type Report struct {
	Title      string   // Text of the first level-1 heading.
	Sections   []string // Level-2 heading texts, one per file fragment.
	CodeBlocks int      // Fenced code blocks found.
}

// Consistent reports whether every section has exactly one code block.
// Embedded fences in merged content break this.
func (r Report) Consistent() bool {
	return len(r.Sections) == r.CodeBlocks
}

// Inspect parses a merged document and reports its sections and code blocks.
func Inspect(r io.Reader) (Report, error) {
	source, err := io.ReadAll(r)
	if err != nil {
		return Report{}, fmt.Errorf("failed to read document: %w", err)
	}

	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	var report Report
	err = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			title := headingText(node, source)
			switch {
			case node.Level == 1 && report.Title == "":
				report.Title = title
			case node.Level == 2:
				report.Sections = append(report.Sections, title)
			}
			return ast.WalkSkipChildren, nil
		case *ast.FencedCodeBlock:
			report.CodeBlocks++
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return Report{}, err
	}
	return report, nil
}

func headingText(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if t, ok := c.(*ast.Text); ok {
				b.Write(t.Segment.Value(source))
			}
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}
