// Copyright AfriWiki contributors, 2026. All rights reserved.

package access

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/afriwiki/afriwiki/pkg/types"
)

func TestPolicy(t *testing.T) {
	p := NewPolicy(types.AccessConfig{AdminEmails: []string{" Admin@AfriWiki.org ", "", "editeur@afriwiki.org"}})

	tests := []struct {
		email string
		admin bool
	}{
		{"admin@afriwiki.org", true},
		{"ADMIN@afriwiki.org", true},
		{"  editeur@afriwiki.org", true},
		{"lecteur@afriwiki.org", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.admin, p.IsAdmin(tt.email), tt.email)
		if tt.admin {
			assert.NoError(t, p.Require(tt.email))
		} else {
			assert.ErrorIs(t, p.Require(tt.email), ErrForbidden)
		}
	}
}

func TestPolicy_NoAdmins(t *testing.T) {
	p := NewPolicy(types.AccessConfig{})
	assert.False(t, p.IsAdmin("admin@afriwiki.org"))
	assert.ErrorIs(t, p.Require(""), ErrForbidden)
}
