// Package document audits HTML pages against the theme. It resolves each
// element's colours from <style> blocks and inline styles the way a browser
// cascade would (specificity, source order, !important, inheritance and
// custom properties) and runs the component analyser over every element
// that renders text.
package document

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/net/html"

	"github.com/moeen/hemam-theme/internal/colour"
	"github.com/moeen/hemam-theme/internal/security"
	httputil "github.com/moeen/hemam-theme/internal/util/http"
)

const maxTextPreview = 60

// Elements whose content never renders as text.
var skipped = map[string]bool{
	"head":     true,
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
	"svg":      true,
	"math":     true,
}

// Document is a parsed HTML page.
type Document struct {
	root   *html.Node
	logger hclog.Logger
}

// Option configures a Document.
type Option func(*Document)

// WithLogger sets the logger used for stylesheet warnings.
func WithLogger(l hclog.Logger) Option {
	return func(d *Document) {
		if l != nil {
			d.logger = l
		}
	}
}

// Parse reads an HTML document.
func Parse(data []byte, opts ...Option) (*Document, error) {
	root, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("document: parse html: %w", err)
	}
	d := &Document{root: root, logger: hclog.NewNullLogger()}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Load reads a document from a local file or an HTTPS URL.
func Load(ctx context.Context, source string, opts ...Option) (*Document, error) {
	var (
		data []byte
		err  error
	)
	if security.IsRemote(source) {
		if err := security.ValidateHTTPURL(source); err != nil {
			return nil, fmt.Errorf("document: %w", err)
		}
		data, err = httputil.Fetch(ctx, source, httputil.FetchOptions{
			Headers:      map[string]string{"Accept": "text/html"},
			ContentTypes: []string{"text/html", "application/xhtml+xml"},
		})
		if err != nil {
			return nil, fmt.Errorf("document: fetch %s: %w", source, err)
		}
	} else {
		f, err := os.Open(source) // #nosec G304 - user-supplied audit target
		if err != nil {
			return nil, fmt.Errorf("document: %w", err)
		}
		defer f.Close()
		data, err = security.ReadAllLimited(f, security.MaxDocumentSize)
		if err != nil {
			return nil, fmt.Errorf("document: read %s: %w", source, err)
		}
	}
	return Parse(data, opts...)
}

// Element is a text-bearing element with its resolved style.
type Element struct {
	// Path is a CSS-like locator such as "body > main > p.note".
	Path string
	// Text is a whitespace-collapsed preview of the element's own text.
	Text  string
	style map[string]string
}

// PropertyValue returns the resolved value of a CSS property, or "".
func (e *Element) PropertyValue(name string) string {
	return e.style[name]
}

// Elements returns the text-bearing elements in document order with styles
// resolved for mode; @media (prefers-color-scheme) blocks follow mode.
func (d *Document) Elements(mode colour.Mode) []*Element {
	ss := buildStylesheet(d.root, mode, d.logger)

	var out []*Element
	var walk func(n *html.Node, parent map[string]string, path []string)
	walk = func(n *html.Node, parent map[string]string, path []string) {
		style := parent
		if n.Type == html.ElementNode {
			if skipped[n.Data] {
				return
			}
			style = computeStyle(ss.declared(n, d.logger), parent)
			if n.Data != "html" {
				path = append(path[:len(path):len(path)], selectorFor(n))
			}
			if text := ownText(n); text != "" {
				out = append(out, &Element{
					Path:  strings.Join(path, " > "),
					Text:  text,
					style: style,
				})
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c, style, path)
		}
	}
	walk(d.root, map[string]string{}, nil)

	return out
}

// computeStyle applies inheritance and var() substitution to declared.
// color and custom properties inherit as in CSS. background-color also
// carries down: the analyser needs the colour painted behind the text,
// not the element's own (usually transparent) background.
func computeStyle(declared, parent map[string]string) map[string]string {
	style := make(map[string]string, len(parent)+len(declared))
	for k, v := range parent {
		if k == "color" || k == "background-color" || strings.HasPrefix(k, "--") {
			style[k] = v
		}
	}

	for k, v := range declared {
		if strings.HasPrefix(k, "--") {
			style[k] = v
		}
	}
	for range 3 {
		for k := range declared {
			if strings.HasPrefix(k, "--") && strings.Contains(style[k], "var(") {
				if v := resolveVars(style[k], style); v != "" {
					style[k] = v
				}
			}
		}
	}

	// color first, so currentColor elsewhere sees this element's value.
	keys := make([]string, 0, len(declared))
	for k := range declared {
		if !strings.HasPrefix(k, "--") {
			keys = append(keys, k)
		}
	}
	slices.SortFunc(keys, func(a, b string) int {
		switch {
		case a == b:
			return 0
		case a == "color":
			return -1
		case b == "color":
			return 1
		}
		return strings.Compare(a, b)
	})

	for _, k := range keys {
		v := resolveVars(declared[k], style)
		switch strings.ToLower(v) {
		case "", "inherit", "unset":
			continue
		case "initial":
			delete(style, k)
			continue
		case "currentcolor":
			v = style["color"]
		}
		if k == "background-color" && isTransparent(v) {
			continue
		}
		style[k] = v
	}
	return style
}

func isTransparent(v string) bool {
	v = strings.ToLower(strings.ReplaceAll(v, " ", ""))
	if v == "transparent" || v == "none" {
		return true
	}
	if strings.HasPrefix(v, "rgba(") {
		parts := strings.Split(strings.TrimSuffix(strings.TrimPrefix(v, "rgba("), ")"), ",")
		return len(parts) == 4 && (parts[3] == "0" || parts[3] == "0.0" || parts[3] == "0%")
	}
	return false
}

func selectorFor(n *html.Node) string {
	var b strings.Builder
	b.WriteString(n.Data)
	if id := attr(n, "id"); id != "" {
		b.WriteString("#" + id)
		return b.String()
	}
	for _, class := range strings.Fields(attr(n, "class")) {
		b.WriteString("." + class)
	}
	return b.String()
}

// ownText collects the element's direct text children.
func ownText(n *html.Node) string {
	var parts []string
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			parts = append(parts, strings.Fields(c.Data)...)
		}
	}
	text := strings.Join(parts, " ")
	if utf8.RuneCountInString(text) > maxTextPreview {
		runes := []rune(text)
		text = string(runes[:maxTextPreview-1]) + "…"
	}
	return text
}
