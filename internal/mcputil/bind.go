// Package mcputil holds small helpers shared by the MCP tool handlers.
package mcputil

import (
	"encoding/json"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// ArgumentSource yields the raw argument map of an MCP tool call.
type ArgumentSource interface {
	GetArguments() map[string]interface{}
}

// BindArguments decodes MCP call arguments into target, coercing string
// values where needed. Some MCP clients send every parameter as a string,
// including numbers, booleans and JSON-encoded arrays, so plain decoding
// is not enough.
func BindArguments[T any](request ArgumentSource, target *T) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			coerceStringHook,
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
		Result:  target,
		TagName: "json",
	})
	if err != nil {
		return err
	}
	return decoder.Decode(request.GetArguments())
}

// coerceStringHook reinterprets string inputs whose target type is not a
// string: JSON arrays and objects are unmarshalled, "true"/"false" become
// booleans, and numeric strings pass through as json.Number so the
// decoder can convert them.
func coerceStringHook(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
	if f.Kind() != reflect.String {
		return data, nil
	}
	raw := data.(string)
	if raw == "" {
		return data, nil
	}

	switch t.Kind() {
	case reflect.Slice:
		if looksLikeJSON(raw) {
			slicePtr := reflect.New(t)
			if err := json.Unmarshal([]byte(raw), slicePtr.Interface()); err == nil {
				return slicePtr.Elem().Interface(), nil
			}
		}
	case reflect.Map, reflect.Struct:
		if looksLikeJSON(raw) {
			var result interface{}
			if err := json.Unmarshal([]byte(raw), &result); err == nil {
				return result, nil
			}
		}
	case reflect.Bool:
		switch strings.TrimSpace(raw) {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
	default:
		if t.Kind() >= reflect.Int && t.Kind() <= reflect.Float64 {
			var result json.Number
			if err := json.Unmarshal([]byte(raw), &result); err == nil {
				return result, nil
			}
		}
	}
	return data, nil
}

func looksLikeJSON(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	return (strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]")) ||
		(strings.HasPrefix(trimmed, "{") && strings.HasSuffix(trimmed, "}"))
}
