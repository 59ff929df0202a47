package apiclient

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAmount_AcceptsNumbersAndStrings(t *testing.T) {
	var v struct {
		A Amount `json:"a"`
		B Amount `json:"b"`
		C Amount `json:"c"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a":1234.5,"b":"99.90","c":null}`), &v))
	require.InDelta(t, 1234.5, v.A.Float64(), 1e-9)
	require.InDelta(t, 99.9, v.B.Float64(), 1e-9)
	require.Zero(t, v.C)

	require.Error(t, json.Unmarshal([]byte(`{"a":"ten"}`), &v))
}
