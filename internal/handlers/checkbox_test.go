package handlers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckboxUnmarshalText(t *testing.T) {
	tests := []struct {
		in      string
		want    bool
		wantErr bool
	}{
		{in: "y", want: true},
		{in: "Y", want: true},
		{in: "on", want: true},
		{in: "true", want: true},
		{in: "1", want: true},
		{in: "", want: false},
		{in: "n", want: false},
		{in: "off", want: false},
		{in: "false", want: false},
		{in: "maybe", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			b := Checkbox(!tt.want)
			err := b.UnmarshalText([]byte(tt.in))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, bool(b))
		})
	}
}

func TestCheckboxJSON(t *testing.T) {
	var req ArtistRequest
	require.NoError(t, json.Unmarshal([]byte(`{"seeking_venue":true}`), &req))
	assert.True(t, bool(req.SeekingVenue))

	require.NoError(t, json.Unmarshal([]byte(`{"seeking_venue":"y"}`), &req))
	assert.True(t, bool(req.SeekingVenue))

	require.NoError(t, json.Unmarshal([]byte(`{"seeking_venue":false}`), &req))
	assert.False(t, bool(req.SeekingVenue))

	assert.Error(t, json.Unmarshal([]byte(`{"seeking_venue":3}`), &req))

	out, err := json.Marshal(artistRequestFrom(req.toModel()))
	require.NoError(t, err)
	assert.Contains(t, string(out), `"seeking_venue":false`)
}
