package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAddress(t *testing.T) {
	canonical := "0x52908400098527886e0f7030069857d2e4169ee7"

	tests := []struct {
		name    string
		input   string
		expect  string
		wantErr bool
	}{
		{"lowercase with prefix", canonical, canonical, false},
		{"uppercase hex", "0x52908400098527886E0F7030069857D2E4169EE7", canonical, false},
		{"uppercase prefix", "0X52908400098527886E0F7030069857D2E4169EE7", canonical, false},
		{"no prefix", "52908400098527886e0f7030069857d2e4169ee7", canonical, false},
		{"empty", "", "", true},
		{"too short", "0x1234", "", true},
		{"too long", canonical + "00", "", true},
		{"not hex", "0xZZ908400098527886e0f7030069857d2e4169ee7", "", true},
		{"right length wrong chars", "0xGARBAGEGARBAGEGARBAGEGARBAGEGARBAGEGARBA", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAddress(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidAddress)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expect, got)
		})
	}
}

func TestNormalizeTopic(t *testing.T) {
	canonical := "0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef"

	got, ok := NormalizeTopic("0xDDF252AD1BE2C89B69C2B068FC378DAA952BA7F163C4A11628F55A4DF523B3EF")
	require.True(t, ok)
	assert.Equal(t, canonical, got)

	got, ok = NormalizeTopic(canonical[2:])
	require.True(t, ok)
	assert.Equal(t, canonical, got)

	for _, bad := range []string{"", "0x1234", canonical + "00", "0xzz" + canonical[4:]} {
		_, ok := NormalizeTopic(bad)
		assert.False(t, ok, "input %q", bad)
	}
}
