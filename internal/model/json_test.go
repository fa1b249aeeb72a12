package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListScan(t *testing.T) {
	var l StringList
	require.NoError(t, l.Scan(`["Corolla","Hilux"]`))
	assert.Equal(t, StringList{"Corolla", "Hilux"}, l)

	require.NoError(t, l.Scan(nil))
	assert.Equal(t, StringList{}, l)

	require.NoError(t, l.Scan("not json"))
	assert.Equal(t, StringList{}, l)
}

func TestStringListValue(t *testing.T) {
	v, err := StringList(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)

	v, err = StringList{"a"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["a"]`, v)
}

func TestSpecMapScan(t *testing.T) {
	var m SpecMap
	require.NoError(t, m.Scan([]byte(`{"material":"ceramic"}`)))
	assert.Equal(t, SpecMap{"material": "ceramic"}, m)

	require.NoError(t, m.Scan([]byte(`{"broken`)))
	assert.Equal(t, SpecMap{}, m)
}

func TestNullDimensionsScan(t *testing.T) {
	var n NullDimensions
	require.NoError(t, n.Scan(`{"length":10,"width":5,"height":2,"unit":"cm"}`))
	require.NotNil(t, n.Dimensions)
	assert.Equal(t, 10.0, n.Dimensions.Length)
	assert.Equal(t, "cm", n.Dimensions.Unit)

	require.NoError(t, n.Scan(nil))
	assert.Nil(t, n.Dimensions)

	require.NoError(t, n.Scan("garbage"))
	assert.Nil(t, n.Dimensions)
}

func TestNullDimensionsValue(t *testing.T) {
	v, err := NullDimensions{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestShippingAddressScan(t *testing.T) {
	var a ShippingAddress
	require.NoError(t, a.Scan(`{"name":"Jane","address_line1":"12 Main Rd","city":"Cape Town"}`))
	assert.Equal(t, "Jane", a.Name)
	assert.Equal(t, "Cape Town", a.City)

	require.NoError(t, a.Scan("{{"))
	assert.Equal(t, ShippingAddress{}, a)
}
