package exemption

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	const doc = `
exemptions:
  - kind: type
    identifier: "*time.Location"
    reason: zone data is never mutated after load
  - kind: Member
    identifier: example.com/app.Config.cache
  - kind: package
    identifier: "golang.org/x/**"
`

	got, err := Decode(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, []Exemption{
		New(KindType, "*time.Location"),
		New(KindMember, "example.com/app.Config.cache"),
		New(KindPackage, "golang.org/x/**"),
	}, got)
}

func TestDecodeEmpty(t *testing.T) {
	for name, doc := range map[string]string{
		"empty document": "",
		"no entries":     "exemptions: []\n",
	} {
		t.Run(name, func(t *testing.T) {
			got, err := Decode(strings.NewReader(doc))
			require.NoError(t, err)
			assert.Empty(t, got)
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
		invalid bool
	}{
		{
			name:    "unknown kind",
			doc:     "exemptions:\n  - kind: method\n    identifier: T.m\n",
			wantErr: "entry 0",
			invalid: true,
		},
		{
			name:    "missing identifier",
			doc:     "exemptions:\n  - kind: type\n    identifier: time.Time\n  - kind: type\n",
			wantErr: "entry 1",
			invalid: true,
		},
		{
			name:    "unknown field",
			doc:     "exemptions:\n  - kind: type\n    name: time.Time\n",
			wantErr: "field name not found",
		},
		{
			name:    "malformed yaml",
			doc:     "exemptions: [\n",
			wantErr: "decode exemptions",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			if tt.invalid {
				assert.ErrorIs(t, err, ErrInvalidExemption)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exemptions.yaml")
	require.NoError(t, os.WriteFile(path, []byte("exemptions:\n  - kind: type\n    identifier: time.Location\n"), 0o600))

	got, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []Exemption{New(KindType, "time.Location")}, got)
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFile(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("exemptions:\n  - kind: bogus\n    identifier: x\n"), 0o600))

	_, err = LoadFile(path)
	require.ErrorIs(t, err, ErrInvalidExemption)
	assert.Contains(t, err.Error(), path)
}
