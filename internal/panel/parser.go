package panel

import (
	"strings"
)

// Rule is one selector and its raw property values.
type Rule struct {
	Selector string            // ".slider" or "#title"
	Props    map[string]string // "background" -> "#333"
}

// Stylesheet is a list of rules; later rules override earlier ones.
type Stylesheet struct {
	Rules []Rule
}

// Lookup merges the properties of every rule matching selector, in order.
func (s *Stylesheet) Lookup(selector string) map[string]string {
	merged := make(map[string]string)
	if s == nil {
		return merged
	}
	for _, r := range s.Rules {
		if r.Selector != selector {
			continue
		}
		for k, v := range r.Props {
			merged[k] = v
		}
	}
	return merged
}

// ParseCSS parses a small CSS subset: .class and #id selectors (comma lists allowed)
// followed by a block of "key: value;" declarations. Comments are stripped,
// other selectors and @rules are skipped.
func ParseCSS(content string) *Stylesheet {
	sheet := &Stylesheet{}
	rest := stripCSSComments(content)
	for {
		open := strings.Index(rest, "{")
		if open == -1 {
			break
		}
		close := findMatchingBrace(rest, open)
		if close == -1 {
			break
		}
		props := parseDeclarations(strings.TrimSpace(rest[open+1 : close]))
		for _, sel := range strings.Split(rest[:open], ",") {
			sel = strings.TrimSpace(sel)
			if len(sel) < 2 || (sel[0] != '.' && sel[0] != '#') {
				continue
			}
			sheet.Rules = append(sheet.Rules, Rule{Selector: sel, Props: props})
		}
		rest = rest[close+1:]
	}
	return sheet
}

func stripCSSComments(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); {
		if i+1 < len(s) && s[i] == '/' && s[i+1] == '*' {
			end := strings.Index(s[i+2:], "*/")
			if end == -1 {
				break
			}
			i += end + 4
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

func findMatchingBrace(s string, openIdx int) int {
	depth := 1
	for i := openIdx + 1; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func parseDeclarations(body string) map[string]string {
	props := make(map[string]string)
	for _, part := range strings.Split(body, ";") {
		k, v, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		k = strings.TrimSpace(k)
		if k != "" {
			props[k] = strings.TrimSpace(v)
		}
	}
	return props
}
