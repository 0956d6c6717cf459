package lang

import (
	"github.com/npillmayer/noam"
)

type opKey struct {
	op   string
	kind ValueKind
}

type opFunc func(l, r Value) (Value, error)

// operators is the table of binary operators. Both operands must be of the
// same type, which is part of the key.
var operators = map[opKey]opFunc{
	{"+", IntType}: func(l, r Value) (Value, error) { return l.(IntValue) + r.(IntValue), nil },
	{"-", IntType}: func(l, r Value) (Value, error) { return l.(IntValue) - r.(IntValue), nil },
	{"*", IntType}: func(l, r Value) (Value, error) { return l.(IntValue) * r.(IntValue), nil },
	{"/", IntType}: func(l, r Value) (Value, error) {
		if r.(IntValue) == 0 {
			return nil, errDivisionByZero()
		}
		return l.(IntValue) / r.(IntValue), nil
	},
	{"==", IntType}: func(l, r Value) (Value, error) { return BoolValue(l.(IntValue) == r.(IntValue)), nil },
	{"!=", IntType}: func(l, r Value) (Value, error) { return BoolValue(l.(IntValue) != r.(IntValue)), nil },
	{"<", IntType}:  func(l, r Value) (Value, error) { return BoolValue(l.(IntValue) < r.(IntValue)), nil },
	{">", IntType}:  func(l, r Value) (Value, error) { return BoolValue(l.(IntValue) > r.(IntValue)), nil },

	{"+", FloatType}: func(l, r Value) (Value, error) { return l.(FloatValue) + r.(FloatValue), nil },
	{"-", FloatType}: func(l, r Value) (Value, error) { return l.(FloatValue) - r.(FloatValue), nil },
	{"*", FloatType}: func(l, r Value) (Value, error) { return l.(FloatValue) * r.(FloatValue), nil },
	{"/", FloatType}: func(l, r Value) (Value, error) {
		if r.(FloatValue) == 0 {
			return nil, errDivisionByZero()
		}
		return l.(FloatValue) / r.(FloatValue), nil
	},
	{"==", FloatType}: func(l, r Value) (Value, error) { return BoolValue(l.(FloatValue) == r.(FloatValue)), nil },
	{"!=", FloatType}: func(l, r Value) (Value, error) { return BoolValue(l.(FloatValue) != r.(FloatValue)), nil },
	{"<", FloatType}:  func(l, r Value) (Value, error) { return BoolValue(l.(FloatValue) < r.(FloatValue)), nil },
	{">", FloatType}:  func(l, r Value) (Value, error) { return BoolValue(l.(FloatValue) > r.(FloatValue)), nil },

	{"+", StringType}: func(l, r Value) (Value, error) { return l.(StringValue) + r.(StringValue), nil },

	{"==", BoolType}: func(l, r Value) (Value, error) { return BoolValue(l.(BoolValue) == r.(BoolValue)), nil },
	{"!=", BoolType}: func(l, r Value) (Value, error) { return BoolValue(l.(BoolValue) != r.(BoolValue)), nil },
}

// Apply applies a binary operator to two values. There is no implicit
// conversion between types: operands of different types are an error, as is
// an operator not defined for the operands' type.
func Apply(op string, l, r Value) (Value, error) {
	if l.Kind() != r.Kind() {
		return nil, noam.Errorf(noam.RuntimeError, noam.Span{},
			"type mismatch: %s %s %s", l.Kind(), op, r.Kind())
	}
	f, ok := operators[opKey{op, l.Kind()}]
	if !ok {
		return nil, noam.Errorf(noam.RuntimeError, noam.Span{},
			"operator %s not defined for type %s", op, l.Kind())
	}
	return f(l, r)
}

func errDivisionByZero() error {
	return noam.Errorf(noam.RuntimeError, noam.Span{}, "division by zero")
}
