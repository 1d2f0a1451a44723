package charset_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/leapstack-labs/proplint/pkg/charset"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name    string
		charset string
		want    any
		wantErr bool
	}{
		{name: "empty uses default", charset: "", want: charmap.ISO8859_1},
		{name: "latin1", charset: "ISO-8859-1", want: charmap.ISO8859_1},
		{name: "utf8", charset: "UTF-8", want: unicode.UTF8},
		{name: "unknown", charset: "NOT-A-CHARSET", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc, err := charset.Lookup(tt.charset)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, enc)
		})
	}
}

func TestDecode_Latin1(t *testing.T) {
	s, err := charset.Decode([]byte{'k', '=', 0xE9}, charmap.ISO8859_1)
	require.NoError(t, err)
	assert.Equal(t, "k=é", s)
}

func TestDecode_InvalidUTF8(t *testing.T) {
	_, err := charset.Decode([]byte{'k', '=', 0xff}, unicode.UTF8)
	assert.ErrorContains(t, err, "byte 2")
}

func TestReadFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := charset.ReadFile(filepath.Join(dir, "missing.properties"), nil)
	var readErr *charset.ReadError
	require.True(t, errors.As(err, &readErr))
	assert.Equal(t, charset.DefaultName, readErr.Charset)

	bad := filepath.Join(dir, "bad.properties")
	require.NoError(t, os.WriteFile(bad, []byte{0xc3, 0x28}, 0o600))
	_, err = charset.ReadFile(bad, unicode.UTF8)
	require.True(t, errors.As(err, &readErr))
	assert.Equal(t, bad, readErr.Path)
}
