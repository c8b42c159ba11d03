// Copyright AfriWiki contributors, 2026. All rights reserved.

// Package access holds the single authorization predicate for
// administrative actions.
package access

import (
	"errors"
	"fmt"
	"strings"

	"github.com/afriwiki/afriwiki/pkg/types"
)

// ErrForbidden is returned when an actor lacks the admin role.
var ErrForbidden = errors.New("forbidden: admin role required")

// Policy decides who is an administrator. It is built once from
// configuration and shared by every check.
type Policy struct {
	admins map[string]bool
}

// NewPolicy builds a Policy from cfg. Blank entries are ignored.
func NewPolicy(cfg types.AccessConfig) *Policy {
	admins := make(map[string]bool, len(cfg.AdminEmails))
	for _, e := range cfg.AdminEmails {
		if k := normalizeEmail(e); k != "" {
			admins[k] = true
		}
	}
	return &Policy{admins: admins}
}

// IsAdmin reports whether email belongs to an administrator. Comparison
// ignores case and surrounding whitespace.
func (p *Policy) IsAdmin(email string) bool {
	k := normalizeEmail(email)
	return k != "" && p.admins[k]
}

// Require returns ErrForbidden unless email is an administrator.
func (p *Policy) Require(email string) error {
	if !p.IsAdmin(email) {
		if strings.TrimSpace(email) == "" {
			return fmt.Errorf("%w (no actor given)", ErrForbidden)
		}
		return fmt.Errorf("%w (%s)", ErrForbidden, email)
	}
	return nil
}

func normalizeEmail(e string) string {
	return strings.ToLower(strings.TrimSpace(e))
}
