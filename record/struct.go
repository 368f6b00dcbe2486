package record

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"
)

// StructRecord is a Record over the exported fields of a struct.
//
// An attribute name resolves, in order, to the field tagged with that name
// under `db`, then under `json`, then to the field with that Go name. When no
// exact match exists a case-insensitive match is tried; when several names
// fold to the same key the smallest in byte order wins. Fields of embedded
// structs are promoted as usual.
type StructRecord struct {
	value  reflect.Value
	fields map[string][]int
	folded map[string][]int
}

// Struct returns a StructRecord for ptr, which must be a non-nil pointer to
// a struct. Writes through the record modify *ptr.
func Struct(ptr any) (*StructRecord, error) {
	value := reflect.ValueOf(ptr)
	if value.Kind() != reflect.Pointer || value.IsNil() || value.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: got %T", ErrNotStructPointer, ptr)
	}

	fields := fieldIndexes(value.Elem().Type())

	return &StructRecord{
		value:  value.Elem(),
		fields: fields,
		folded: foldIndexes(fields),
	}, nil
}

// Get implements Record.
func (r *StructRecord) Get(name string) (any, error) {
	field, err := r.field(name)
	if err != nil {
		return nil, err
	}

	return field.Interface(), nil
}

// Set implements Record. A nil value zeroes the field; strings and byte
// slices convert into each other.
func (r *StructRecord) Set(name string, value any) error {
	field, err := r.field(name)
	if err != nil {
		return err
	}

	if value == nil {
		field.SetZero()

		return nil
	}

	rv := reflect.ValueOf(value)

	switch {
	case rv.Type().AssignableTo(field.Type()):
		field.Set(rv)
	case isText(rv.Type()) && isText(field.Type()):
		field.Set(rv.Convert(field.Type()))
	default:
		return fmt.Errorf("%w: attribute %q of type %s cannot hold %T", ErrIncompatibleValue, name, field.Type(), value)
	}

	return nil
}

func (r *StructRecord) field(name string) (reflect.Value, error) {
	index, ok := r.fields[name]
	if !ok {
		index, ok = r.folded[strings.ToLower(name)]
	}

	if !ok {
		return reflect.Value{}, fmt.Errorf("%w: %q on %s", ErrUnknownAttribute, name, r.value.Type())
	}

	field, err := r.value.FieldByIndexErr(index)
	if err != nil {
		return reflect.Value{}, fmt.Errorf("attribute %q: %w", name, err)
	}

	return field, nil
}

// fieldIndexes maps every attribute name of typ to its field index. Tag
// names take precedence over Go field names.
func fieldIndexes(typ reflect.Type) map[string][]int {
	byGoName := map[string][]int{}
	byJSON := map[string][]int{}
	byDB := map[string][]int{}

	for _, field := range reflect.VisibleFields(typ) {
		if !field.IsExported() || field.Anonymous && field.Type.Kind() == reflect.Struct {
			continue
		}

		byGoName[field.Name] = field.Index

		if name := tagName(field, "json"); name != "" {
			byJSON[name] = field.Index
		}

		if name := tagName(field, "db"); name != "" {
			byDB[name] = field.Index
		}
	}

	fields := make(map[string][]int, len(byGoName))

	for _, names := range []map[string][]int{byGoName, byJSON, byDB} {
		for name, index := range names {
			fields[name] = index
		}
	}

	return fields
}

// foldIndexes maps lowercased attribute names to field indexes. Names are
// visited in sorted order so collisions resolve the same way every time.
func foldIndexes(fields map[string][]int) map[string][]int {
	folded := make(map[string][]int, len(fields))

	for _, name := range slices.Sorted(maps.Keys(fields)) {
		key := strings.ToLower(name)
		if _, ok := folded[key]; !ok {
			folded[key] = fields[name]
		}
	}

	return folded
}

func tagName(field reflect.StructField, key string) string {
	name, _, _ := strings.Cut(field.Tag.Get(key), ",")
	if name == "-" {
		return ""
	}

	return name
}

func isText(typ reflect.Type) bool {
	return typ.Kind() == reflect.String ||
		typ.Kind() == reflect.Slice && typ.Elem().Kind() == reflect.Uint8
}
