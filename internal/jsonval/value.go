// Package jsonval defines the JSON value model shared by parsing, path
// resolution, and rendering, along with the strict and relaxed parsers that
// produce it.
//
// Values are one of: nil, bool, json.Number, string, Array, or Object.
// Objects preserve member insertion order, which plain Go maps cannot do.
package jsonval

import "encoding/json"

// Value is any JSON value: nil, bool, json.Number, string, Array, or Object.
type Value any

// Member is a single key/value entry of an Object.
type Member struct {
	Key   string
	Value Value
}

// Object is a JSON object as an ordered member list.
type Object []Member

// Array is a JSON array.
type Array []Value

// Get returns the value for key and whether the key is present.
func (o Object) Get(key string) (Value, bool) {
	for _, m := range o {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// set replaces the value of an existing key in place, or appends a new
// member. Last duplicate wins, keeping the first occurrence's position.
func (o Object) set(key string, v Value) Object {
	for i := range o {
		if o[i].Key == key {
			o[i].Value = v
			return o
		}
	}
	return append(o, Member{Key: key, Value: v})
}

// Number builds a numeric Value from its literal text.
func Number(literal string) Value {
	return json.Number(literal)
}
