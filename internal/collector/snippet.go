package collector

import (
	"strings"

	"golang.org/x/net/html"
)

// renderStartTag rebuilds the opening tag of a control for reporting,
// preserving attribute order as parsed. Boolean attributes render without a
// value, matching how authors wrote them.
func renderStartTag(n *html.Node) string {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(n.Data)
	for _, attr := range n.Attr {
		b.WriteByte(' ')
		b.WriteString(attr.Key)
		if attr.Val == "" {
			continue
		}
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(attr.Val))
		b.WriteByte('"')
	}
	b.WriteByte('>')
	return b.String()
}

// textContent concatenates the text nodes under n, collapsing surrounding
// whitespace per text node.
func textContent(n *html.Node) string {
	var parts []string

	var visit func(n *html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.TextNode {
			if trimmed := strings.TrimSpace(n.Data); trimmed != "" {
				parts = append(parts, trimmed)
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			visit(child)
		}
	}
	visit(n)

	return strings.Join(parts, " ")
}
