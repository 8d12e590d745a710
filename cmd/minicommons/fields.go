package main

import (
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Pro7ech/minicommons/hashcode"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// field is a typed value given to the hash command, either on the command
// line as "type:value" or as an entry of a YAML field file.
type field struct {
	Type  string `yaml:"type"`
	Value string `yaml:"value"`
}

// fieldFile is the layout of the file given to hash --file.
type fieldFile struct {
	Fields []field `yaml:"fields"`
}

const arrayPrefix = "[]"

func parseField(arg string) (field, error) {

	if arg == "null" {
		return field{Type: "null"}, nil
	}

	typ, value, ok := strings.Cut(arg, ":")
	if !ok {
		return field{}, errors.Errorf("invalid field %q: expected type:value", arg)
	}

	return field{Type: typ, Value: value}, nil
}

func readFieldFile(path string) ([]field, error) {

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read field file")
	}

	var ff fieldFile
	if err = yaml.Unmarshal(data, &ff); err != nil {
		return nil, errors.Wrapf(err, "decode field file %s", path)
	}

	return ff.Fields, nil
}

// appendTo folds the field into b with the append method of its type.
func (f field) appendTo(b *hashcode.Builder) error {

	if elem, ok := strings.CutPrefix(f.Type, arrayPrefix); ok {
		return f.appendArrayTo(b, elem)
	}

	if f.Type == "null" {
		b.AppendObject(nil)
		return nil
	}

	if f.Type == "string" {
		b.AppendString(f.Value)
		return nil
	}

	v, err := parseScalar(f.Type, f.Value)
	if err != nil {
		return err
	}

	switch v := v.(type) {
	case bool:
		b.AppendBool(v)
	case byte:
		b.AppendByte(v)
	case rune:
		b.AppendRune(v)
	case int16:
		b.AppendInt16(v)
	case int:
		b.AppendInt(v)
	case int64:
		b.AppendInt64(v)
	case float32:
		b.AppendFloat32(v)
	case float64:
		b.AppendFloat64(v)
	}

	return nil
}

// appendArrayTo parses a comma separated list of elements. The value
// null stands for an absent array, the empty value for an empty one.
func (f field) appendArrayTo(b *hashcode.Builder, elem string) error {

	var items []string
	switch f.Value {
	case "null":
	case "":
		items = []string{}
	default:
		items = strings.Split(f.Value, ",")
	}

	switch elem {
	case "bool":
		return appendArray(items, elem, b.AppendBools)
	case "byte":
		return appendArray(items, elem, b.AppendBytes)
	case "rune":
		return appendArray(items, elem, b.AppendRunes)
	case "int16":
		return appendArray(items, elem, b.AppendInt16s)
	case "int32":
		return appendArray(items, elem, b.AppendInt32s)
	case "int64":
		return appendArray(items, elem, b.AppendInt64s)
	case "float32":
		return appendArray(items, elem, b.AppendFloat32s)
	case "float64":
		return appendArray(items, elem, b.AppendFloat64s)
	case "string":
		var a []any
		if items != nil {
			a = make([]any, len(items))
			for i := range items {
				a[i] = items[i]
			}
		}
		b.AppendObjects(a)
		return nil
	default:
		return errors.Errorf("unknown array type %q", f.Type)
	}
}

func appendArray[T any](items []string, elem string, appendFn func([]T) *hashcode.Builder) error {

	if items == nil {
		appendFn(nil)
		return nil
	}

	a := make([]T, len(items))
	for i, s := range items {

		v, err := parseScalar(elem, strings.TrimSpace(s))
		if err != nil {
			return errors.Wrapf(err, "element %d", i)
		}

		var ok bool
		if a[i], ok = v.(T); !ok {
			return errors.Errorf("element %d: %T is not a %s", i, v, elem)
		}
	}

	appendFn(a)
	return nil
}

// parseScalar parses s as a value of the named type.
func parseScalar(typ, s string) (v any, err error) {

	switch typ {
	case "bool":
		v, err = strconv.ParseBool(s)
	case "byte":
		var u uint64
		u, err = strconv.ParseUint(s, 10, 8)
		v = byte(u)
	case "rune":
		r, size := utf8.DecodeRuneInString(s)
		if size == 0 || size != len(s) {
			return nil, errors.Errorf("invalid rune %q: expected a single character", s)
		}
		v = r
	case "int16":
		var i int64
		i, err = strconv.ParseInt(s, 10, 16)
		v = int16(i)
	case "int32":
		var i int64
		i, err = strconv.ParseInt(s, 10, 32)
		v = int32(i)
	case "int":
		var i int64
		i, err = strconv.ParseInt(s, 10, 0)
		v = int(i)
	case "int64":
		v, err = strconv.ParseInt(s, 10, 64)
	case "float32":
		var f float64
		f, err = strconv.ParseFloat(s, 32)
		v = float32(f)
	case "float64":
		v, err = strconv.ParseFloat(s, 64)
	default:
		return nil, errors.Errorf("unknown field type %q", typ)
	}

	if err != nil {
		return nil, errors.Wrapf(err, "invalid %s %q", typ, s)
	}

	return v, nil
}
