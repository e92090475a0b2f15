package skills

import "strings"

// ParseMeta extracts a name and description from descriptor content. The
// parser is deliberately forgiving: descriptors in the wild carry frontmatter
// that is close to YAML but not always valid, so it never fails. Missing
// fields fall back to the first markdown heading for the name (then
// fallbackName) and the first prose line for the description (then a fixed
// placeholder).
func ParseMeta(content, fallbackName string) Meta {
	header, body := splitHeader(content)

	name := headerValue(header, "name")
	description := headerValue(header, "description")

	if name == "" {
		name = headingName(body)
	}
	if name == "" {
		name = fallbackName
	}
	if description == "" {
		description = proseLine(body)
	}
	if description == "" {
		description = "No description"
	}
	return Meta{Name: name, Description: description}
}

// splitHeader separates a leading "---" delimited header from the body. A
// header with no closing delimiter is not a header at all; the whole content
// is treated as body.
func splitHeader(content string) (header, body string) {
	trimmed := strings.TrimLeft(content, " \t\r\n")
	if !strings.HasPrefix(trimmed, "---") {
		return "", content
	}
	rest := trimmed[3:]
	pos := strings.Index(rest, "\n---")
	if pos < 0 {
		return "", content
	}
	header = rest[:pos]
	body = strings.TrimLeft(rest[pos+4:], "\r\n")
	return header, body
}

// headerValue finds the first "key:" line in the header and returns its
// value. A remainder that is exactly a ">" or "|" marker (with optional
// chomping) is a block scalar: the following indented lines are trimmed and
// joined with single spaces. Inline values lose one layer of matching
// surrounding quotes.
func headerValue(header, key string) string {
	if header == "" {
		return ""
	}
	lines := strings.Split(header, "\n")
	prefix := key + ":"
	for i, line := range lines {
		rest, ok := strings.CutPrefix(strings.TrimSpace(line), prefix)
		if !ok {
			continue
		}
		rest = strings.TrimSpace(rest)
		if blockMarker(rest) {
			return blockScalar(lines[i+1:])
		}
		return strings.TrimSpace(stripQuotes(rest))
	}
	return ""
}

// blockMarker reports whether rest is exactly a block scalar indicator,
// optionally followed by a chomping character. An inline value that merely
// starts with ">" or "|" is not a block.
func blockMarker(rest string) bool {
	switch rest {
	case ">", ">-", ">+", "|", "|-", "|+":
		return true
	}
	return false
}

// blockScalar joins the indented continuation lines that follow a ">" or "|"
// indicator. The first non-indented line ends the block.
func blockScalar(lines []string) string {
	var parts []string
	for _, line := range lines {
		if !strings.HasPrefix(line, " ") && !strings.HasPrefix(line, "\t") {
			break
		}
		if t := strings.TrimSpace(line); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}

// stripQuotes removes one matching pair of surrounding single or double
// quotes. Unbalanced or nested quoting is left alone.
func stripQuotes(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

// headingName returns the text of the first markdown heading in body.
func headingName(body string) string {
	for _, line := range strings.Split(body, "\n") {
		t := strings.TrimSpace(line)
		if !strings.HasPrefix(t, "#") {
			continue
		}
		return strings.TrimSpace(strings.TrimLeft(t, "#"))
	}
	return ""
}

// proseLine returns the first body line that is neither blank, a heading,
// nor a horizontal rule.
func proseLine(body string) string {
	for _, line := range strings.Split(body, "\n") {
		t := strings.TrimSpace(line)
		if t == "" || strings.HasPrefix(t, "#") || ruleOnly(t) {
			continue
		}
		return t
	}
	return ""
}

func ruleOnly(s string) bool {
	for _, r := range s {
		switch r {
		case '-', '=', '*', '_':
		default:
			return false
		}
	}
	return true
}
