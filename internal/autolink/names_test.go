// Copyright AfriWiki contributors, 2026. All rights reserved.

package autolink

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afriwiki/afriwiki/internal/catalog"
)

func TestParseNameRef(t *testing.T) {
	tests := []struct {
		in      string
		want    NameRef
		wantErr bool
	}{
		{in: "jane-doe=Jane Doe", want: NameRef{Slug: "jane-doe", DisplayName: "Jane Doe"}},
		{in: " amadou-ba = Amadou Ba ", want: NameRef{Slug: "amadou-ba", DisplayName: "Amadou Ba"}},
		{in: "jane-doe", wantErr: true},
		{in: "=Jane Doe", wantErr: true},
		{in: "jane-doe=", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseNameRef(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestNameEntities(t *testing.T) {
	got := NameEntities([]NameRef{
		{Slug: "ba", DisplayName: "Ba"},
		{Slug: "", DisplayName: "Sans Slug"},
		{Slug: "amadou-ba", DisplayName: "Amadou Ba"},
		{Slug: "autre-ba", DisplayName: "ba"},
	}, "/e/")

	assert.Equal(t, []catalog.LinkableEntity{
		{Name: "Amadou Ba", TargetPath: "/e/amadou-ba", Category: catalog.CategoryPerson},
		{Name: "Ba", TargetPath: "/e/ba", Category: catalog.CategoryPerson},
	}, got)
}

func TestLinkNames(t *testing.T) {
	refs := []NameRef{{Slug: "jane-doe", DisplayName: "Jane Doe"}}

	got, err := LinkNames("<p>Par Jane Doe. Jane Doe remercie.</p>", refs, "/e")
	require.NoError(t, err)
	assert.Equal(t, `<p>Par <a href="/e/jane-doe" title="Voir la page Jane Doe">Jane Doe</a>. Jane Doe remercie.</p>`, got)
}
