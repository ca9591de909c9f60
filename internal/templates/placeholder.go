package templates

import "regexp"

// pathPlaceholder matches the shortest __inner__ span. Leading underscores
// beyond the first two belong to inner.
var pathPlaceholder = regexp.MustCompile(`__+.*?__`)

// PathToTemplateSyntax rewrites path placeholders (__name__, __lower name__)
// into content placeholders ({{name}}, {{lower name}}) so one render pass
// resolves both.
func PathToTemplateSyntax(path string) string {
	return pathPlaceholder.ReplaceAllStringFunc(path, func(m string) string {
		return "{{" + m[2:len(m)-2] + "}}"
	})
}
