// Package templates materializes a template tree into an output tree,
// resolving placeholders in path names and file contents.
package templates

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aymerick/raymond"
)

// Engine renders handlebars templates against a variable mapping.
// Helpers are registered on each parsed template, never globally, so
// independent engines do not share state.
type Engine struct {
	helpers map[string]interface{}
}

// NewEngine creates an engine with the lower and upper helpers.
func NewEngine() *Engine {
	return &Engine{
		helpers: map[string]interface{}{
			"lower": lowerHelper,
			"upper": upperHelper,
		},
	}
}

func lowerHelper(value interface{}) raymond.SafeString {
	return raymond.SafeString(strings.ToLower(raymond.Str(value)))
}

func upperHelper(value interface{}) raymond.SafeString {
	return raymond.SafeString(strings.ToUpper(raymond.Str(value)))
}

// Helpers returns the registered helper names, sorted.
func (e *Engine) Helpers() []string {
	names := make([]string, 0, len(e.helpers))
	for name := range e.helpers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render substitutes {{name}} and {{helper name}} tokens in text.
// Names missing from vars render as the empty string. Text without "{{" is
// returned unchanged.
func (e *Engine) Render(text string, vars map[string]interface{}) (string, error) {
	if !strings.Contains(text, "{{") {
		return text, nil
	}

	tpl, err := raymond.Parse(text)
	if err != nil {
		return "", fmt.Errorf("parsing template: %w", err)
	}
	tpl.RegisterHelpers(e.helpers)

	out, err := tpl.Exec(verbatim(vars))
	if err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}
	return out, nil
}

// verbatim marks every string in vars as safe so values are substituted
// without HTML escaping. Non-string values keep their type, so
// {{#if flag}} still sees booleans and numbers.
func verbatim(vars map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(vars))
	for k, v := range vars {
		out[k] = verbatimValue(v)
	}
	return out
}

func verbatimValue(v interface{}) interface{} {
	switch val := v.(type) {
	case string:
		return raymond.SafeString(val)
	case map[string]interface{}:
		return verbatim(val)
	case []interface{}:
		items := make([]interface{}, len(val))
		for i, item := range val {
			items[i] = verbatimValue(item)
		}
		return items
	default:
		return v
	}
}
