package chartarchive

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryArchive_CopiesPayload(t *testing.T) {
	archive := NewMemoryArchive()
	payload := []byte(`{"id":"a"}`)
	require.NoError(t, archive.Put(context.Background(), "charts/1/a.json", payload))
	payload[2] = 'X'

	got, ok := archive.Object("charts/1/a.json")
	require.True(t, ok)
	require.Equal(t, `{"id":"a"}`, string(got))

	require.NoError(t, archive.Delete(context.Background(), "charts/1/a.json"))
	_, ok = archive.Object("charts/1/a.json")
	require.False(t, ok)
}

func TestSanitizeEndpoint(t *testing.T) {
	cases := map[string]string{
		"https://acct.r2.cloudflarestorage.com": "acct.r2.cloudflarestorage.com",
		"http://localhost:9000/charts":          "localhost:9000",
		"  minio:9000 ":                         "minio:9000",
		"":                                      "",
	}
	for in, want := range cases {
		require.Equal(t, want, sanitizeEndpoint(in), in)
	}
}

func TestNewR2Archive_DoesNotDial(t *testing.T) {
	archive, err := NewR2Archive("http://localhost:9000", "key", "secret", "charts", "auto", nil)
	require.NoError(t, err)
	require.Equal(t, "charts", archive.bucket)
}
