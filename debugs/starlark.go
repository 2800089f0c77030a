package debugs

import (
	"fmt"
	"reflect"

	"github.com/reusee/decaf/lex"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
)

func tokenValue(token lex.Token) starlark.Value {
	d := starlark.NewDict(4)
	d.SetKey(starlark.String("type"), starlark.String(token.Type.String()))
	d.SetKey(starlark.String("line"), starlark.MakeInt(token.Pos.Line))
	d.SetKey(starlark.String("column"), starlark.MakeInt(token.Pos.Column))
	d.SetKey(starlark.String("text"), starlark.String(token.Text))
	return d
}

func toStarlarkValue(v any) starlark.Value {
	switch v := v.(type) {

	case nil:
		return starlark.None

	case starlark.Value:
		return v

	case lex.Token:
		return tokenValue(v)
	case []lex.Token:
		elems := make([]starlark.Value, len(v))
		for i, token := range v {
			elems[i] = tokenValue(token)
		}
		return starlark.NewList(elems)
	case lex.TokenType:
		return starlark.String(v.String())
	case error:
		return starlark.String(v.Error())

	case bool:
		return starlark.Bool(v)
	case string:
		return starlark.String(v)
	case []byte:
		return starlark.Bytes(v)

	}

	value := reflect.ValueOf(v)
	switch value.Kind() {

	case reflect.Bool:
		return starlark.Bool(value.Bool())

	case reflect.String:
		return starlark.String(value.String())

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return starlark.MakeInt64(value.Int())

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return starlark.MakeUint64(value.Uint())

	case reflect.Float32, reflect.Float64:
		return starlark.Float(value.Float())

	case reflect.Slice, reflect.Array:
		elems := make([]starlark.Value, value.Len())
		for i := range value.Len() {
			elems[i] = toStarlarkValue(value.Index(i).Interface())
		}
		return starlark.NewList(elems)

	case reflect.Map:
		d := starlark.NewDict(value.Len())
		iter := value.MapRange()
		for iter.Next() {
			d.SetKey(
				toStarlarkValue(iter.Key().Interface()),
				toStarlarkValue(iter.Value().Interface()),
			)
		}
		return d

	case reflect.Struct:
		typ := value.Type()
		d := starlark.NewDict(value.NumField())
		for i := range value.NumField() {
			field := typ.Field(i)
			if !field.IsExported() {
				continue
			}
			d.SetKey(
				starlark.String(field.Name),
				toStarlarkValue(value.Field(i).Interface()),
			)
		}
		return d

	case reflect.Pointer, reflect.Interface:
		elem := value.Elem()
		if !elem.IsValid() {
			return starlark.None
		}
		return toStarlarkValue(elem.Interface())

	case reflect.Func:
		return starlarkutil.MakeFunc("", value.Interface())

	}

	panic(fmt.Errorf("unsupported type for starlark: %T", v))
}

// builtins are the helpers available to queries and taps besides tokens.
func builtins() starlark.StringDict {
	return starlark.StringDict{
		"display_name": starlarkutil.MakeFunc("display_name", func(name string) string {
			for typ := range lex.TokenTypes() {
				if typ.String() == name {
					spelling, _ := typ.DisplayName()
					return spelling
				}
			}
			return ""
		}),
		"keyword_type": starlarkutil.MakeFunc("keyword_type", func(text string) string {
			if typ, ok := lex.KeywordType(text); ok {
				return typ.String()
			}
			return ""
		}),
		"punctuator_type": starlarkutil.MakeFunc("punctuator_type", func(text string) string {
			if typ, ok := lex.PunctuatorType(text); ok {
				return typ.String()
			}
			return ""
		}),
	}
}
