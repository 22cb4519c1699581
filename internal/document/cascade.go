package document

import (
	"regexp"
	"strings"

	"github.com/andybalholm/cascadia"
	cssast "github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/hashicorp/go-hclog"
	"golang.org/x/net/html"

	"github.com/moeen/hemam-theme/internal/colour"
)

// inlineSpecificity outranks any selector.
var inlineSpecificity = cascadia.Specificity{1 << 12, 0, 0}

type declaration struct {
	property  string
	value     string
	important bool
}

type rule struct {
	selector     cascadia.Sel
	specificity  cascadia.Specificity
	declarations []declaration
	order        int
}

// stylesheet holds every rule from the document's <style> blocks that is
// active for one theme mode, in source order.
type stylesheet struct {
	rules []rule
}

type propState struct {
	value     string
	spec      cascadia.Specificity
	order     int
	important bool
}

func buildStylesheet(doc *html.Node, mode colour.Mode, logger hclog.Logger) *stylesheet {
	ss := &stylesheet{}
	order := 0

	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "style" && mediaActive(attr(n, "media"), mode) {
			var text strings.Builder
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.TextNode {
					text.WriteString(c.Data)
				}
			}
			order = ss.parse(text.String(), order, mode, logger)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(doc)

	return ss
}

// parse appends the rules in css and returns the next source order.
func (ss *stylesheet) parse(css string, order int, mode colour.Mode, logger hclog.Logger) int {
	css = strings.TrimSpace(css)
	if css == "" {
		return order
	}
	sheet, err := parser.Parse(css)
	if err != nil {
		logger.Warn("skipping unparsable style block", "error", err)
		return order
	}

	var walk func([]*cssast.Rule)
	walk = func(list []*cssast.Rule) {
		for _, r := range list {
			if r == nil {
				continue
			}
			switch r.Kind {
			case cssast.AtRule:
				switch strings.ToLower(strings.TrimSpace(r.Name)) {
				case "@media":
					if mediaActive(r.Prelude, mode) {
						walk(r.Rules)
					}
				case "@supports", "@layer", "@container":
					walk(r.Rules)
				}
			case cssast.QualifiedRule:
				decls := convertDeclarations(r.Declarations)
				if len(decls) == 0 || len(r.Selectors) == 0 {
					continue
				}
				group, err := cascadia.ParseGroup(strings.Join(r.Selectors, ","))
				if err != nil {
					logger.Debug("skipping rule with unsupported selector", "selector", r.Selectors, "error", err)
					continue
				}
				for _, sel := range group {
					if sel == nil || sel.PseudoElement() != "" {
						continue
					}
					ss.rules = append(ss.rules, rule{
						selector:     sel,
						specificity:  sel.Specificity(),
						declarations: decls,
						order:        order,
					})
					order++
				}
			}
		}
	}
	walk(sheet.Rules)

	return order
}

func convertDeclarations(list []*cssast.Declaration) []declaration {
	out := make([]declaration, 0, len(list))
	for _, d := range list {
		if d == nil {
			continue
		}
		prop := strings.TrimSpace(d.Property)
		// Custom property names are case-sensitive.
		if !strings.HasPrefix(prop, "--") {
			prop = strings.ToLower(prop)
		}
		val := strings.TrimSpace(d.Value)
		if prop == "" || val == "" {
			continue
		}
		out = append(out, declaration{property: prop, value: val, important: d.Important})
	}
	return out
}

// declared returns the cascaded (not yet inherited) values for n.
func (ss *stylesheet) declared(n *html.Node, logger hclog.Logger) map[string]string {
	props := map[string]propState{}

	for _, r := range ss.rules {
		if !r.selector.Match(n) {
			continue
		}
		for _, d := range r.declarations {
			apply(props, d, r.specificity, r.order)
		}
	}

	if inline := strings.TrimSpace(attr(n, "style")); inline != "" {
		decls, err := parser.ParseDeclarations(inline)
		if err != nil {
			logger.Debug("skipping unparsable style attribute", "style", inline, "error", err)
		}
		for i, d := range convertDeclarations(decls) {
			apply(props, d, inlineSpecificity, (1<<30)+i)
		}
	}

	out := make(map[string]string, len(props))
	for k, st := range props {
		out[k] = st.value
	}
	return out
}

// apply merges d into props following the cascade: !important first, then
// specificity, then source order.
func apply(props map[string]propState, d declaration, spec cascadia.Specificity, order int) {
	prop, value := d.property, d.value
	if prop == "background" {
		c := extractColour(value)
		if c == "" {
			return
		}
		prop, value = "background-color", c
	}

	entry := propState{value: value, spec: spec, order: order, important: d.important}
	prev, ok := props[prop]
	switch {
	case !ok:
	case prev.important && !d.important:
		return
	case d.important && !prev.important:
	case spec.Less(prev.spec):
		return
	case prev.spec.Less(spec):
	case order < prev.order:
		return
	}
	props[prop] = entry
}

var colourToken = regexp.MustCompile(`(?i)rgba?\([^)]*\)|#[0-9a-f]{3,8}\b|var\([^)]*\)|\b[a-z]+\b`)

// extractColour finds the colour inside a background shorthand.
func extractColour(value string) string {
	for _, tok := range colourToken.FindAllString(value, -1) {
		if strings.HasPrefix(strings.ToLower(tok), "var(") {
			return tok
		}
		if _, ok := colour.HexToRGB(tok); ok {
			return tok
		}
	}
	return ""
}

var varRef = regexp.MustCompile(`var\(\s*(--[A-Za-z0-9_-]+)\s*(?:,\s*([^()]*(?:\([^()]*\))?[^()]*))?\)`)

// resolveVars substitutes var() references from props. Unknown references
// use their fallback, or resolve to "".
func resolveVars(value string, props map[string]string) string {
	for range 8 {
		if !strings.Contains(value, "var(") {
			return strings.TrimSpace(value)
		}
		value = varRef.ReplaceAllStringFunc(value, func(m string) string {
			sub := varRef.FindStringSubmatch(m)
			if v, ok := props[sub[1]]; ok && !strings.Contains(v, "var(") {
				return v
			}
			return strings.TrimSpace(sub[2])
		})
	}
	return ""
}

// mediaActive reports whether a media query list applies on screen in mode.
// Viewport features are assumed to match.
func mediaActive(prelude string, mode colour.Mode) bool {
	if strings.TrimSpace(prelude) == "" {
		return true
	}
	for _, q := range strings.Split(strings.ToLower(prelude), ",") {
		if queryActive(strings.TrimSpace(q), mode) {
			return true
		}
	}
	return false
}

func queryActive(q string, mode colour.Mode) bool {
	if q == "" {
		return false
	}
	negate := strings.HasPrefix(q, "not ")
	q = strings.TrimPrefix(strings.TrimPrefix(q, "not "), "only ")

	active := true
	for _, part := range strings.Split(q, " and ") {
		part = strings.Trim(strings.TrimSpace(part), "()")
		name, value, _ := strings.Cut(part, ":")
		name, value = strings.TrimSpace(name), strings.TrimSpace(value)
		switch name {
		case "print", "speech", "aural", "braille", "embossed", "tty", "tv":
			active = false
		case "prefers-color-scheme":
			if value != "" && value != mode.String() {
				active = false
			}
		}
	}
	return active != negate
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}
