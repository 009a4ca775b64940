package miniparquet

import (
	"errors"
	"testing"

	"github.com/nanoparquet/miniparquet/parquet"
	"github.com/stretchr/testify/require"
)

func TestPhysicalAndConvertedTypeString(t *testing.T) {
	physical, converted, logical, err := physicalAndConvertedType(StringLogicalType())
	require.NoError(t, err)
	require.Equal(t, ByteArray, physical)
	require.Equal(t, parquet.ConvertedType_UTF8, converted)
	require.NotNil(t, logical.STRING)
	require.Nil(t, logical.INTEGER)
}

func TestPhysicalAndConvertedTypeSigned32BitInteger(t *testing.T) {
	physical, converted, logical, err := physicalAndConvertedType(IntegerLogicalType(32, true))
	require.NoError(t, err)
	require.Equal(t, Int32, physical)
	require.Equal(t, parquet.ConvertedType_INT_32, converted)
	require.NotNil(t, logical.INTEGER)
	require.EqualValues(t, 32, logical.INTEGER.BitWidth)
	require.True(t, logical.INTEGER.IsSigned)
}

func TestPhysicalAndConvertedTypeRejectsUnsignedInteger(t *testing.T) {
	_, _, _, err := physicalAndConvertedType(IntegerLogicalType(32, false))
	require.True(t, errors.Is(err, ErrUnsupportedLogicalType))
}

func TestPhysicalAndConvertedTypeRejectsNon32BitInteger(t *testing.T) {
	_, _, _, err := physicalAndConvertedType(IntegerLogicalType(64, true))
	require.True(t, errors.Is(err, ErrUnsupportedLogicalType))
}

func TestPhysicalAndConvertedTypeRejectsEmptyLogicalType(t *testing.T) {
	_, _, _, err := physicalAndConvertedType(LogicalType{})
	require.True(t, errors.Is(err, ErrUnsupportedLogicalType))
}
