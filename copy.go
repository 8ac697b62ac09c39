/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package strictstore

import (
	"reflect"
)

// DeepCopier lets a value provide its own deep copy, for types whose state cannot be
// reached through exported fields.
type DeepCopier interface {
	DeepCopy() any
}

// deepCopy creates a copy of value that shares no mutable substructure with it.
func deepCopy(value any) any {
	if value == nil {
		return nil
	}
	return copyValue(reflect.ValueOf(value)).Interface()
}

func copyValue(v reflect.Value) reflect.Value {
	if v.CanInterface() && v.Kind() != reflect.Interface && !(v.Kind() == reflect.Pointer && v.IsNil()) {
		if c, ok := v.Interface().(DeepCopier); ok {
			if out := reflect.ValueOf(c.DeepCopy()); out.IsValid() && out.Type().AssignableTo(v.Type()) {
				return out
			}
		}
	}

	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return reflect.Zero(v.Type())
		}
		n := reflect.New(v.Type().Elem())
		n.Elem().Set(copyValue(v.Elem()))
		return n

	case reflect.Interface:
		if v.IsNil() {
			return reflect.Zero(v.Type())
		}
		n := reflect.New(v.Type()).Elem()
		n.Set(copyValue(v.Elem()))
		return n

	case reflect.Map:
		if v.IsNil() {
			return reflect.Zero(v.Type())
		}
		n := reflect.MakeMapWithSize(v.Type(), v.Len())
		iter := v.MapRange()
		for iter.Next() {
			n.SetMapIndex(iter.Key(), copyValue(iter.Value()))
		}
		return n

	case reflect.Slice:
		if v.IsNil() {
			return reflect.Zero(v.Type())
		}
		n := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		for i := 0; i < v.Len(); i++ {
			n.Index(i).Set(copyValue(v.Index(i)))
		}
		return n

	case reflect.Array:
		n := reflect.New(v.Type()).Elem()
		for i := 0; i < v.Len(); i++ {
			n.Index(i).Set(copyValue(v.Index(i)))
		}
		return n

	case reflect.Struct:
		n := reflect.New(v.Type()).Elem()
		// unexported fields stay shallow
		n.Set(v)
		for i := 0; i < v.NumField(); i++ {
			if n.Field(i).CanSet() {
				n.Field(i).Set(copyValue(v.Field(i)))
			}
		}
		return n

	default:
		return v
	}
}

// identical is the write short-circuit test: value equality for comparable values,
// reference equality for maps, slices, functions and channels.
func identical(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}

	switch va.Kind() {
	case reflect.Map, reflect.Func, reflect.Chan, reflect.Pointer, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	}

	if va.Comparable() && vb.Comparable() {
		return a == b
	}
	return false
}
