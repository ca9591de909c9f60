package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/tidwall/gjson"
	"sigs.k8s.io/yaml"

	oerrors "github.com/opmodel/skeleton/internal/errors"
)

// requiredField is a configuration key and the JSON type it must carry.
type requiredField struct {
	name string
	typ  gjson.Type
}

// requiredFields lists the mandatory keys in the order they are checked.
var requiredFields = []requiredField{
	{name: "output_path", typ: gjson.String},
	{name: "templates_path", typ: gjson.String},
	{name: "template_name", typ: gjson.String},
	{name: "variables", typ: gjson.JSON},
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report JSON field names so errors match what the user wrote.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Load reads and validates the configuration file at path.
// Files with a .yaml or .yml extension are converted to JSON first.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &oerrors.DetailError{
			Kind:     oerrors.KindConfigRead,
			Message:  "loading configuration failed",
			Location: path,
			Hint:     "Pass the configuration file path as the first argument.",
			Cause:    err,
		}
	}

	if !utf8.Valid(data) {
		return nil, oerrors.New(oerrors.KindConfigRead,
			"configuration file is not valid UTF-8", path, nil)
	}

	return Parse(data, path)
}

// Parse validates raw configuration bytes. source is used for error locations
// and to detect YAML input by extension.
func Parse(data []byte, source string) (*Config, error) {
	if isYAML(source) {
		converted, err := yaml.YAMLToJSON(data)
		if err != nil {
			return nil, oerrors.New(oerrors.KindConfigParse, "YAML error in configuration", source, err)
		}
		data = converted
	}

	if !gjson.ValidBytes(data) {
		return nil, oerrors.New(oerrors.KindConfigParse, "JSON error in configuration", source, nil)
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, oerrors.New(oerrors.KindConfigParse, "configuration must be a JSON object", source, nil)
	}

	for _, f := range requiredFields {
		r := root.Get(f.name)
		if !r.Exists() {
			return nil, oerrors.NewConfigValidationError(f.name, source,
				fmt.Sprintf("no %s in configuration", f.name))
		}
		if f.typ == gjson.JSON && !r.IsObject() {
			return nil, oerrors.NewConfigValidationError(f.name, source,
				fmt.Sprintf("%s must be an object", f.name))
		}
		if f.typ != gjson.JSON && r.Type != f.typ {
			return nil, oerrors.NewConfigValidationError(f.name, source,
				fmt.Sprintf("%s must be a string", f.name))
		}
	}

	vars, _ := variableValue(root.Get("variables")).(map[string]interface{})

	cfg := &Config{
		OutputPath:    root.Get("output_path").String(),
		TemplatesPath: root.Get("templates_path").String(),
		TemplateName:  root.Get("template_name").String(),
		Variables:     vars,
	}

	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			field := verrs[0].Field()
			return nil, oerrors.NewConfigValidationError(field, source,
				fmt.Sprintf("%s must not be empty", field))
		}
		return nil, oerrors.New(oerrors.KindConfigValidation, "validating configuration", source, err)
	}

	return cfg, nil
}

// variableValue converts r to a template value. Numbers keep their literal
// precision: integers become int64, or json.Number beyond the int64 range.
func variableValue(r gjson.Result) interface{} {
	switch {
	case r.IsObject():
		m := make(map[string]interface{})
		r.ForEach(func(key, value gjson.Result) bool {
			m[key.String()] = variableValue(value)
			return true
		})
		return m
	case r.IsArray():
		items := make([]interface{}, 0)
		r.ForEach(func(_, value gjson.Result) bool {
			items = append(items, variableValue(value))
			return true
		})
		return items
	case r.Type == gjson.Number:
		return numberValue(r.Raw)
	default:
		return r.Value()
	}
}

func numberValue(raw string) interface{} {
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return i
	}
	if !strings.ContainsAny(raw, ".eE") {
		return json.Number(raw)
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	return json.Number(raw)
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
