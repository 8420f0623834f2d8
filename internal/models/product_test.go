package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSizeList_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    SizeList
		wantErr bool
	}{
		{
			name:  "array of strings",
			input: `["S","M","L"]`,
			want:  SizeList{"S", "M", "L"},
		},
		{
			name:  "serialized array",
			input: `"[\"S\",\"M\",\"L\"]"`,
			want:  SizeList{"S", "M", "L"},
		},
		{
			name:  "empty array",
			input: `[]`,
			want:  SizeList{},
		},
		{
			name:    "garbage string",
			input:   `"just a string"`,
			wantErr: true,
		},
		{
			name:    "number",
			input:   `42`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got SizeList
			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSizeList_ValueAndScan(t *testing.T) {
	original := SizeList{"XS", "S", "M"}

	value, err := original.Value()
	require.NoError(t, err)
	assert.Equal(t, `["XS","S","M"]`, value)

	// Порядок размеров сохраняется при круговом проходе через колонку.
	var scanned SizeList
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, original, scanned)

	var fromBytes SizeList
	require.NoError(t, fromBytes.Scan([]byte(`["L","XL"]`)))
	assert.Equal(t, SizeList{"L", "XL"}, fromBytes)

	var fromNil SizeList
	require.NoError(t, fromNil.Scan(nil))
	assert.Nil(t, fromNil)
}
