package dataset

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBundleJSON = `{
	"type": "bundle",
	"id": "bundle--test",
	"objects": [
		{"type": "x-mitre-tactic", "id": "x-mitre-tactic--exec", "name": "Execution", "x_mitre_shortname": "execution"},
		{"type": "attack-pattern", "id": "attack-pattern--parent", "name": "Scripting"},
		{"type": "attack-pattern", "id": "attack-pattern--sub", "name": "PowerShell", "x_mitre_is_subtechnique": true},
		{"type": "relationship", "source_ref": "attack-pattern--sub", "target_ref": "attack-pattern--parent", "relationship_type": "subtechnique-of"},
		{"type": "intrusion-set", "id": "intrusion-set--g1", "name": "APT99"},
		{"type": "relationship", "source_ref": "intrusion-set--g1", "target_ref": "attack-pattern--sub", "relationship_type": "uses"},
		{"type": "relationship", "source_ref": "intrusion-set--g1", "target_ref": "attack-pattern--parent", "relationship_type": "uses"}
	]
}`

const testEnrichmentJSON = `{
	"techniques": [
		{"technique_id": "T1059", "command_list": ["powershell -enc SQBFAFgA"]}
	]
}`

// newDocServer serves both documents and counts requests.
func newDocServer(t *testing.T) (*httptest.Server, *atomic.Int64) {
	t.Helper()
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		switch r.URL.Path {
		case "/graph.json":
			_, _ = w.Write([]byte(testBundleJSON))
		case "/enrichment.json":
			_, _ = w.Write([]byte(testEnrichmentJSON))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func newTestProvider(t *testing.T, cache Cache) (*HTTPProvider, *atomic.Int64) {
	t.Helper()
	srv, hits := newDocServer(t)
	p := NewHTTPProvider(HTTPOptions{
		GraphDocument:      srv.URL + "/graph.json",
		EnrichmentDocument: srv.URL + "/enrichment.json",
		Cache:              cache,
	})
	return p, hits
}

func TestHTTPProvider_FetchGraphDocument(t *testing.T) {
	ctx := context.Background()

	t.Run("sub-techniques excluded by default scope", func(t *testing.T) {
		p, _ := newTestProvider(t, nil)
		b, err := p.FetchGraphDocument(ctx, false, false)
		require.NoError(t, err)

		for _, o := range b.Objects {
			assert.False(t, o.SubTechnique, "sub-technique %s leaked through", o.ID)
			assert.NotEqual(t, "subtechnique-of", o.RelationshipType)
			if o.RelationshipType != "" {
				assert.NotEqual(t, "attack-pattern--sub", o.SourceRef)
				assert.NotEqual(t, "attack-pattern--sub", o.TargetRef)
			}
		}
		// tactic, parent technique, actor, one surviving uses edge
		assert.Len(t, b.Objects, 4)
	})

	t.Run("sub-techniques included on request", func(t *testing.T) {
		p, _ := newTestProvider(t, nil)
		b, err := p.FetchGraphDocument(ctx, false, true)
		require.NoError(t, err)
		assert.Len(t, b.Objects, 7)
	})

	t.Run("unreachable source", func(t *testing.T) {
		p := NewHTTPProvider(HTTPOptions{
			GraphDocument: "http://127.0.0.1:1/graph.json",
			Logger:        testLogger(),
		})
		_, err := p.FetchGraphDocument(ctx, false, false)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnavailable))
	})

	t.Run("http error status", func(t *testing.T) {
		srv, _ := newDocServer(t)
		p := NewHTTPProvider(HTTPOptions{
			GraphDocument: srv.URL + "/missing.json",
			Logger:        testLogger(),
		})
		_, err := p.FetchGraphDocument(ctx, false, false)
		assert.True(t, errors.Is(err, ErrUnavailable))
	})
}

func TestHTTPProvider_FetchEnrichmentDocument(t *testing.T) {
	p, _ := newTestProvider(t, nil)
	doc, err := p.FetchEnrichmentDocument(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, doc.Techniques, 1)
	assert.Equal(t, "T1059", doc.Techniques[0].TechniqueID)
}

func TestHTTPProvider_Cache(t *testing.T) {
	ctx := context.Background()

	t.Run("second fetch served from cache", func(t *testing.T) {
		p, hits := newTestProvider(t, NewFSCache(t.TempDir()))

		_, err := p.FetchGraphDocument(ctx, false, true)
		require.NoError(t, err)
		_, err = p.FetchGraphDocument(ctx, false, true)
		require.NoError(t, err)

		assert.Equal(t, int64(1), hits.Load(), "second fetch should not hit the server")
	})

	t.Run("force bypasses cache", func(t *testing.T) {
		p, hits := newTestProvider(t, NewFSCache(t.TempDir()))

		_, err := p.FetchGraphDocument(ctx, false, true)
		require.NoError(t, err)
		_, err = p.FetchGraphDocument(ctx, true, true)
		require.NoError(t, err)

		assert.Equal(t, int64(2), hits.Load())
	})

	t.Run("graph and enrichment cached under distinct keys", func(t *testing.T) {
		p, _ := newTestProvider(t, NewFSCache(t.TempDir()))

		_, err := p.FetchGraphDocument(ctx, false, true)
		require.NoError(t, err)
		doc, err := p.FetchEnrichmentDocument(ctx, false)
		require.NoError(t, err)
		assert.Len(t, doc.Techniques, 1)
	})
}

func TestHTTPProvider_LocalFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bundle.json")
	require.NoError(t, os.WriteFile(path, []byte(testBundleJSON), 0o644))

	p := NewHTTPProvider(HTTPOptions{
		GraphDocument:      path,
		EnrichmentDocument: filepath.Join(dir, "missing.json"),
		Logger:             testLogger(),
	})

	b, err := p.FetchGraphDocument(context.Background(), false, true)
	require.NoError(t, err)
	assert.Len(t, b.Objects, 7)

	_, err = p.FetchEnrichmentDocument(context.Background(), false)
	assert.True(t, errors.Is(err, ErrUnavailable))
}
