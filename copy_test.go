/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package strictstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type settings struct {
	Theme  string
	Tags   []string
	Limits map[string]int
	Parent *settings
}

type opaque struct {
	values []int
}

func (o *opaque) DeepCopy() any {
	return &opaque{values: append([]int(nil), o.values...)}
}

func TestDeepCopy(t *testing.T) {
	t.Run("Scalars", func(t *testing.T) {
		assert.Nil(t, deepCopy(nil))
		assert.Equal(t, 42, deepCopy(42))
		assert.Equal(t, "guest", deepCopy("guest"))
		assert.Equal(t, false, deepCopy(false))
	})

	t.Run("NestedGeneric", func(t *testing.T) {
		src := map[string]any{
			"name": "John",
			"tags": []any{"a", map[string]any{"deep": true}},
		}
		dst := deepCopy(src).(map[string]any)
		assert.Equal(t, src, dst)

		dst["tags"].([]any)[1].(map[string]any)["deep"] = false
		assert.Equal(t, true, src["tags"].([]any)[1].(map[string]any)["deep"])
	})

	t.Run("Struct", func(t *testing.T) {
		src := settings{
			Theme:  "dark",
			Tags:   []string{"x"},
			Limits: map[string]int{"max": 3},
			Parent: &settings{Theme: "light"},
		}
		dst := deepCopy(src).(settings)
		assert.Equal(t, src, dst)

		dst.Tags[0] = "y"
		dst.Limits["max"] = 9
		dst.Parent.Theme = "blue"
		assert.Equal(t, "x", src.Tags[0])
		assert.Equal(t, 3, src.Limits["max"])
		assert.Equal(t, "light", src.Parent.Theme)
	})

	t.Run("NilContainers", func(t *testing.T) {
		var m map[string]any
		var p *settings
		assert.Nil(t, deepCopy(m).(map[string]any))
		assert.Nil(t, deepCopy(p).(*settings))
	})

	t.Run("DeepCopier", func(t *testing.T) {
		src := &opaque{values: []int{1, 2}}
		dst := deepCopy(src).(*opaque)
		assert.NotSame(t, src, dst)

		dst.values[0] = 9
		assert.Equal(t, 1, src.values[0])
	})
}

func TestIdentical(t *testing.T) {
	m := map[string]any{"a": 1}
	s := []any{1, 2}
	p := &settings{}

	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"both nil", nil, nil, true},
		{"nil and value", nil, "x", false},
		{"equal strings", "x", "x", true},
		{"different strings", "x", "y", false},
		{"equal ints", 1, 1, true},
		{"int and float", 1, 1.0, false},
		{"same map", m, m, true},
		{"equal maps", m, map[string]any{"a": 1}, false},
		{"same slice", s, s, true},
		{"resliced", s, s[:1], false},
		{"same pointer", p, p, true},
		{"other pointer", p, &settings{}, false},
		{"undefined", Undefined, Undefined, true},
		{"undefined and nil", Undefined, nil, false},
		{"structs with slices", settings{}, settings{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, identical(tt.a, tt.b))
		})
	}
}
