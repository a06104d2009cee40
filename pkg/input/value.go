// Package input defines the program input record (spec.md §6): the tagged
// values an External caller supplies for each of a program's declared
// `main` parameters, matched against the parameter's declared ast.Type
// before synthesis allocates it into a constraint system.
package input

import (
	"fmt"

	"github.com/npty/leo/pkg/ast"
)

// Value is the closed set of input-value variants.
type Value interface {
	isValue()
}

// Boolean is a boolean input value.
type Boolean bool

func (Boolean) isValue() {}

// Integer is a fixed-width integer input value, carried as decimal text
// until the target width/signedness is known to the allocator.
type Integer struct {
	Kind ast.IntegerKind
	Text string
}

func (Integer) isValue() {}

// Field is a base-field input value, carried as decimal text.
type Field string

func (Field) isValue() {}

// Group is a group-element input value, carried as source text.
type Group string

func (Group) isValue() {}

// Address is an address input value, carried as source text.
type Address string

func (Address) isValue() {}

// Char is a character input value.
type Char rune

func (Char) isValue() {}

// Array is an ordered array input value.
type Array []Value

func (Array) isValue() {}

// Tuple is a fixed-arity tuple input value.
type Tuple []Value

func (Tuple) isValue() {}

// Record maps each expected `main` parameter name to its supplied value.
type Record map[string]Value

// Matches reports whether v is shaped like a legal input for t, without
// validating an Integer's decimal text against its kind's width (that is
// the allocator's job, since it is the one that parses the text).
func Matches(v Value, t ast.Type) bool {
	switch ty := t.(type) {
	case ast.BoolType:
		_, ok := v.(Boolean)
		return ok
	case ast.IntType:
		iv, ok := v.(Integer)
		return ok && iv.Kind == ty.Kind
	case ast.FieldType:
		_, ok := v.(Field)
		return ok
	case ast.GroupType:
		_, ok := v.(Group)
		return ok
	case ast.AddressType:
		_, ok := v.(Address)
		return ok
	case ast.CharType:
		_, ok := v.(Char)
		return ok
	case ast.ArrayType:
		arr, ok := v.(Array)
		if !ok || len(ty.Dimensions) == 0 {
			return false
		}

		if uint(len(arr)) != ty.Dimensions[0] {
			return false
		}

		elemType := ast.Type(ty.Element)
		if len(ty.Dimensions) > 1 {
			elemType = ast.ArrayType{Element: ty.Element, Dimensions: ty.Dimensions[1:]}
		}

		for _, el := range arr {
			if !Matches(el, elemType) {
				return false
			}
		}

		return true
	case ast.TupleType:
		tup, ok := v.(Tuple)
		if !ok || len(tup) != len(ty.Elements) {
			return false
		}

		for i, el := range tup {
			if !Matches(el, ty.Elements[i]) {
				return false
			}
		}

		return true
	default:
		return false
	}
}

func (v Integer) String() string {
	return fmt.Sprintf("%s(%s)", v.Kind, v.Text)
}
