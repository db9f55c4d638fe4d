package genspec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromParams_SelectorArity(t *testing.T) {
	tests := []struct {
		name         string
		keys, m, typ string
		wantKind     Kind
		wantErr      bool
	}{
		{name: "keys only", keys: "firstName", wantKind: ByKeys},
		{name: "map only", m: `"email"`, wantKind: ByMap},
		{name: "type only", typ: "user", wantKind: ByType},
		{name: "none", wantErr: true},
		{name: "keys and type", keys: "firstName", typ: "user", wantErr: true},
		{name: "all three", keys: "a", m: `"b"`, typ: "c", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := FromParams(tt.keys, tt.m, tt.typ)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRequest)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, spec.Kind)
		})
	}
}

func TestFromParams_KeysSplitting(t *testing.T) {
	spec, err := FromParams(" firstName , ,lastName,, email ", "", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"firstName", "lastName", "email"}, spec.Keys)
}

func TestParseMap_PreservesObjectOrder(t *testing.T) {
	node, err := ParseMap(`{"z":"firstName","a":"lastName","nested":{"b":"email"}}`)
	require.NoError(t, err)

	obj, ok := node.(Object)
	require.True(t, ok)
	require.Len(t, obj, 3)
	assert.Equal(t, "z", obj[0].Key)
	assert.Equal(t, "a", obj[1].Key)
	assert.Equal(t, "nested", obj[2].Key)

	inner, ok := obj[2].Node.(Object)
	require.True(t, ok)
	assert.Equal(t, "b", inner[0].Key)
	assert.Equal(t, Field("email"), inner[0].Node)
}

func TestParseMap_Lists(t *testing.T) {
	node, err := ParseMap(`["firstName",{"a":"email"},["lastName"]]`)
	require.NoError(t, err)

	list, ok := node.(List)
	require.True(t, ok)
	require.Len(t, list, 3)
	assert.Equal(t, Field("firstName"), list[0])
	_, isObj := list[1].(Object)
	assert.True(t, isObj)
	_, isList := list[2].(List)
	assert.True(t, isList)
}

func TestParseMap_Rejections(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{not json}`},
		{"number leaf", `{"age": 42}`},
		{"boolean leaf", `{"a": true}`},
		{"null leaf", `{"a": null}`},
		{"bare number", `5`},
		{"truncated", `{"a":"firstName"`},
		{"trailing content", `"firstName" "lastName"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMap(tt.raw)
			assert.ErrorIs(t, err, ErrInvalidMapJSON, "input %q", tt.raw)
		})
	}
}

func TestParseMap_BareFieldString(t *testing.T) {
	node, err := ParseMap(`"email"`)
	require.NoError(t, err)
	assert.Equal(t, Field("email"), node)
}

func TestErrors_AreDistinct(t *testing.T) {
	_, err := ParseMap(`5`)
	assert.False(t, errors.Is(err, ErrInvalidRequest),
		"map shape errors must not alias selector errors")
}
