// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/AleutianSeal/model"
)

// dataProp is a shorthand for a writable/enumerable/configurable data
// descriptor, the shape ordinary assignment creates.
func dataProp(v model.Value) model.DataDescriptor {
	return model.DataDescriptor{Value: v, Writable: true, Enumerable: true, Configurable: true}
}

func TestObject_GetSet_OwnData(t *testing.T) {
	obj := New(nil)
	key := model.StringKey("count")

	require.NoError(t, obj.DefineOwn(key, dataProp(Int(1))))
	require.NoError(t, obj.Set(key, Int(2)))

	got, err := obj.Get(key)
	require.NoError(t, err)
	assert.Equal(t, Int(2), got)
}

func TestObject_Get_MissingKeyReadsNull(t *testing.T) {
	obj := New(nil)

	got, err := obj.Get(model.StringKey("absent"))
	require.NoError(t, err)
	assert.Equal(t, Null{}, got)
}

func TestObject_Get_WalksPrototypeChain(t *testing.T) {
	grandparent := New(nil)
	parent := New(grandparent)
	child := New(parent)
	key := model.StringKey("inherited")

	require.NoError(t, grandparent.DefineOwn(key, dataProp(String("from grandparent"))))

	got, err := child.Get(key)
	require.NoError(t, err)
	assert.Equal(t, String("from grandparent"), got)
}

func TestObject_Set_ShadowsInheritedData(t *testing.T) {
	parent := New(nil)
	child := New(parent)
	key := model.StringKey("color")

	require.NoError(t, parent.DefineOwn(key, dataProp(String("red"))))
	require.NoError(t, child.Set(key, String("blue")))

	childValue, err := child.Get(key)
	require.NoError(t, err)
	assert.Equal(t, String("blue"), childValue)

	parentValue, err := parent.Get(key)
	require.NoError(t, err)
	assert.Equal(t, String("red"), parentValue, "shadowing must not touch the prototype")

	_, own := child.OwnDescriptor(key)
	assert.True(t, own, "the write must create an own property on the receiver")
}

func TestObject_Set_InheritedAccessorGetsOriginalReceiver(t *testing.T) {
	parent := New(nil)
	child := New(parent)
	key := model.StringKey("guarded")

	var receivers []model.Value
	setter := NewFunc("set guarded", func(receiver model.Value, args []model.Value) (model.Value, error) {
		receivers = append(receivers, receiver)
		return Null{}, nil
	})
	require.NoError(t, parent.DefineOwn(key, model.AccessorDescriptor{
		Set:          setter,
		Enumerable:   true,
		Configurable: true,
	}))

	require.NoError(t, child.Set(key, Int(7)))

	require.Len(t, receivers, 1)
	assert.Same(t, child, receivers[0], "setter must see the receiver the write started on, not the holder")
}

func TestObject_Get_AccessorGetsOriginalReceiver(t *testing.T) {
	parent := New(nil)
	child := New(parent)
	key := model.StringKey("computed")

	getter := NewFunc("get computed", func(receiver model.Value, args []model.Value) (model.Value, error) {
		return receiver, nil
	})
	require.NoError(t, parent.DefineOwn(key, model.AccessorDescriptor{
		Get:          getter,
		Enumerable:   true,
		Configurable: true,
	}))

	got, err := child.Get(key)
	require.NoError(t, err)
	assert.Same(t, child, got)
}

func TestObject_Set_NonWritableFails(t *testing.T) {
	obj := New(nil)
	key := model.StringKey("pinned")

	require.NoError(t, obj.DefineOwn(key, model.DataDescriptor{
		Value:        Int(1),
		Writable:     false,
		Enumerable:   true,
		Configurable: true,
	}))

	err := obj.Set(key, Int(2))
	assert.ErrorIs(t, err, ErrReadOnlyProperty)
}

func TestObject_Set_InheritedNonWritableFails(t *testing.T) {
	parent := New(nil)
	child := New(parent)
	key := model.StringKey("pinned")

	require.NoError(t, parent.DefineOwn(key, model.DataDescriptor{
		Value:    Int(1),
		Writable: false,
	}))

	err := child.Set(key, Int(2))
	assert.ErrorIs(t, err, ErrReadOnlyProperty, "non-writable data on the chain blocks shadowing")
}

func TestObject_Set_AccessorWithoutSetterFails(t *testing.T) {
	obj := New(nil)
	key := model.StringKey("readonly")

	require.NoError(t, obj.DefineOwn(key, model.AccessorDescriptor{
		Get:          NewFunc("get readonly", nil),
		Configurable: true,
	}))

	err := obj.Set(key, Int(1))
	assert.ErrorIs(t, err, ErrNoSetter)
}

func TestObject_Set_UnknownKeyCreatesOwnProperty(t *testing.T) {
	obj := New(nil)
	key := model.StringKey("fresh")

	require.NoError(t, obj.Set(key, Bool(true)))

	desc, ok := obj.OwnDescriptor(key)
	require.True(t, ok)
	dd, ok := desc.(model.DataDescriptor)
	require.True(t, ok)
	assert.Equal(t, Bool(true), dd.Value)
	assert.True(t, dd.Writable)
	assert.True(t, dd.Enumerable)
	assert.True(t, dd.Configurable)
}

func TestObject_DefineOwn_FrozenFails(t *testing.T) {
	obj := New(nil)
	obj.Freeze()

	err := obj.DefineOwn(model.StringKey("late"), dataProp(Int(1)))
	assert.ErrorIs(t, err, ErrFrozen)
	assert.True(t, obj.Frozen())
}

func TestObject_DefineOwn_NonConfigurableRedefineFails(t *testing.T) {
	obj := New(nil)
	key := model.StringKey("fixed")

	require.NoError(t, obj.DefineOwn(key, model.DataDescriptor{
		Value:    Int(1),
		Writable: false,
	}))

	err := obj.DefineOwn(key, model.AccessorDescriptor{Get: NewFunc("get fixed", nil)})
	assert.ErrorIs(t, err, ErrNonConfigurable)
}

func TestObject_DefineOwn_ValueUpdateOnWritableNonConfigurable(t *testing.T) {
	obj := New(nil)
	key := model.StringKey("slot")
	base := model.DataDescriptor{Value: Int(1), Writable: true, Enumerable: true}

	require.NoError(t, obj.DefineOwn(key, base))

	// Pure value replacement is allowed.
	updated := base
	updated.Value = Int(2)
	require.NoError(t, obj.DefineOwn(key, updated))

	// Changing any attribute is not.
	relaxed := updated
	relaxed.Configurable = true
	err := obj.DefineOwn(key, relaxed)
	assert.ErrorIs(t, err, ErrNonConfigurable)
}

func TestObject_Freeze_ClampsWritability(t *testing.T) {
	obj := New(nil)
	dataKey := model.StringKey("data")
	accessorKey := model.StringKey("accessor")

	require.NoError(t, obj.DefineOwn(dataKey, dataProp(Int(1))))
	require.NoError(t, obj.DefineOwn(accessorKey, model.AccessorDescriptor{
		Get:          NewFunc("get accessor", nil),
		Enumerable:   true,
		Configurable: true,
	}))

	obj.Freeze()

	desc, ok := obj.OwnDescriptor(dataKey)
	require.True(t, ok)
	dd := desc.(model.DataDescriptor)
	assert.False(t, dd.Writable)
	assert.False(t, dd.Configurable)
	assert.True(t, dd.Enumerable, "freeze must not disturb enumerability")

	desc, ok = obj.OwnDescriptor(accessorKey)
	require.True(t, ok)
	ad := desc.(model.AccessorDescriptor)
	assert.False(t, ad.Configurable)

	assert.ErrorIs(t, obj.Set(dataKey, Int(2)), ErrReadOnlyProperty)
}

func TestObject_OwnKeys_DefinitionOrder(t *testing.T) {
	obj := New(nil)
	sym := model.NewSymbol("tag")
	keys := []model.Key{
		model.StringKey("b"),
		model.StringKey("a"),
		model.SymbolKey(sym),
		model.StringKey("c"),
	}
	for _, key := range keys {
		require.NoError(t, obj.DefineOwn(key, dataProp(Null{})))
	}

	// Redefinition must not move a key.
	require.NoError(t, obj.DefineOwn(model.StringKey("a"), dataProp(Int(1))))

	assert.Equal(t, keys, obj.OwnKeys())
}

func TestFunc_Call(t *testing.T) {
	fn := NewFunc("double", func(receiver model.Value, args []model.Value) (model.Value, error) {
		return Int(args[0].(Int) * 2), nil
	})
	assert.Equal(t, model.KindFunction, fn.Kind())
	assert.Equal(t, "double", fn.Name())

	got, err := fn.Call(nil, []model.Value{Int(21)})
	require.NoError(t, err)
	assert.Equal(t, Int(42), got)

	// Nil impl calls return Null.
	empty := NewFunc("noop", nil)
	got, err = empty.Call(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, Null{}, got)
}

func TestFunc_PropertiesAndPrototype(t *testing.T) {
	proto := New(nil)
	fn := NewFuncWithPrototype("tagged", nil, proto)
	key := model.StringKey("version")

	require.NoError(t, fn.Set(key, Int(3)))
	got, err := fn.Get(key)
	require.NoError(t, err)
	assert.Equal(t, Int(3), got)
	assert.Same(t, proto, fn.Prototype())

	fn.Freeze()
	assert.True(t, fn.Frozen())
	assert.Error(t, fn.Set(key, Int(4)))
}

func TestPrimitive_Kinds(t *testing.T) {
	tests := []struct {
		value    model.Value
		expected model.Kind
	}{
		{Null{}, model.KindNull},
		{Bool(true), model.KindBool},
		{Int(0), model.KindInt},
		{Float(1.5), model.KindFloat},
		{String(""), model.KindString},
	}

	for _, tc := range tests {
		if got := tc.value.Kind(); got != tc.expected {
			t.Errorf("%T.Kind() = %v, expected %v", tc.value, got, tc.expected)
		}
		if _, ok := tc.value.(model.Composite); ok {
			t.Errorf("%T must not be a composite", tc.value)
		}
	}
}
