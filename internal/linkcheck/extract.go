package linkcheck

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"golang.org/x/net/html"
)

// ExtractLinks returns the destinations of markdown links and raw HTML
// anchors in a markdown body, in document order. Images are not included.
func ExtractLinks(body []byte) []string {
	root := goldmark.New().Parser().Parse(text.NewReader(body))

	var links []string
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *gmast.Link:
			links = append(links, string(node.Destination))
		case *gmast.RawHTML:
			var buf bytes.Buffer
			for i := 0; i < node.Segments.Len(); i++ {
				seg := node.Segments.At(i)
				buf.Write(seg.Value(body))
			}
			links = append(links, anchorHrefs(buf.Bytes())...)
		case *gmast.HTMLBlock:
			var buf bytes.Buffer
			lines := node.Lines()
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				buf.Write(seg.Value(body))
			}
			if node.HasClosure() {
				buf.Write(node.ClosureLine.Value(body))
			}
			links = append(links, anchorHrefs(buf.Bytes())...)
		}
		return gmast.WalkContinue, nil
	})
	return links
}

// anchorHrefs tokenizes an HTML fragment and collects <a href> values.
func anchorHrefs(fragment []byte) []string {
	var hrefs []string
	z := html.NewTokenizer(bytes.NewReader(fragment))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return hrefs
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := z.Token()
			if tok.Data != "a" {
				continue
			}
			for _, attr := range tok.Attr {
				if strings.EqualFold(attr.Key, "href") && attr.Val != "" {
					hrefs = append(hrefs, attr.Val)
				}
			}
		}
	}
}
