package changeset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/e-Spirit/FSDevTools-sub000/internal/testutil"
)

func TestLoadDocument(t *testing.T) {
	result, err := LoadDocument(testutil.Testdata(t, "import-result.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "import", result.Operation)
	assert.False(t, result.Failed())

	created := result.Bucket(StatusCreated)
	require.Len(t, created, 4)
	assert.Equal(t, KindProperty, created[0].Kind)
	assert.Equal(t, PropertyUsers, created[0].Property)
	assert.True(t, created[1].IsMetadata())
	assert.Equal(t, KindElement, created[2].Kind)
	assert.Equal(t, StorePage, created[2].Store)
	assert.Len(t, created[2].Files.Created, 1, "duplicate paths are collapsed")
	assert.Equal(t, "products", created[3].Schema)
	assert.Equal(t, "product", created[3].Name)
	assert.Equal(t, 12, created[3].EntityCount)

	updated := result.Bucket(StatusUpdated)
	require.Len(t, updated, 1)
	assert.Equal(t, StoreMedia, updated[0].Store)
	assert.Equal(t, "logo.png", updated[0].Files.Updated[1].Name)

	deleted := result.Bucket(StatusDeleted)
	require.Len(t, deleted, 1)
	assert.Equal(t, PropertyScheduleEntries, deleted[0].Property)

	moved := result.Bucket(StatusMoved)
	require.Len(t, moved, 1)
	require.Len(t, moved[0].Files.Moved, 1)
	assert.Equal(t, "/pagestore/archive/news", moved[0].Files.Moved[0].To.Dir())

	assert.Empty(t, result.Bucket(StatusLostAndFound))
}

func TestLoadDocument_Missing(t *testing.T) {
	_, err := LoadDocument("/nonexistent/result.yaml")
	assert.Error(t, err)
}

func TestDecodeDocument_JSON(t *testing.T) {
	doc := `{"operation": "export", "error": "aborted", "lost_and_found": [{"kind": "element", "name": "orphan", "type": "PAGE", "store": "pagestore"}]}`

	result, err := DecodeDocument(strings.NewReader(doc))
	require.NoError(t, err)
	assert.True(t, result.Failed())
	assert.Equal(t, "aborted", result.Error)
	require.Len(t, result.Bucket(StatusLostAndFound), 1)
	assert.Equal(t, StatusLostAndFound, result.Bucket(StatusLostAndFound)[0].Status)
}

func TestDecodeDocument_Empty(t *testing.T) {
	result, err := DecodeDocument(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, result.Buckets)
}

func TestDecodeDocument_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "malformed yaml",
			doc:  "created: [",
			want: "failed to parse result document",
		},
		{
			name: "unknown kind",
			doc:  "created:\n  - kind: widget\n",
			want: `created[0]: unknown record kind: "widget"`,
		},
		{
			name: "unknown store",
			doc:  "updated:\n  - kind: element\n    name: x\n    store: filestore\n",
			want: `updated[0]: unknown store category: "filestore"`,
		},
		{
			name: "element without name",
			doc:  "updated:\n  - kind: element\n    store: pagestore\n",
			want: "element name is required",
		},
		{
			name: "unknown property",
			doc:  "deleted:\n  - kind: property\n    property: COLORS\n",
			want: `unknown property kind: "COLORS"`,
		},
		{
			name: "entity type without schema",
			doc:  "moved:\n  - kind: entity_type\n    entity_type: product\n",
			want: "entity type schema is required",
		},
		{
			name: "entity type without name",
			doc:  "moved:\n  - kind: entity_type\n    schema: products\n",
			want: "entity type name is required",
		},
		{
			name: "negative entity count",
			doc:  "moved:\n  - kind: entity_type\n    schema: products\n    entity_type: product\n    entities: -1\n",
			want: "entity count must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeDocument(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDecodeDocument_PropertyWithoutKindIsMetadata(t *testing.T) {
	result, err := DecodeDocument(strings.NewReader("created:\n  - kind: property\n"))
	require.NoError(t, err)
	require.Len(t, result.Bucket(StatusCreated), 1)
	assert.Equal(t, KindMetadata, result.Bucket(StatusCreated)[0].Kind)
}
