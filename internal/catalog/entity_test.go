// Copyright AfriWiki contributors, 2026. All rights reserved.

package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestKey(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Kenya", "kenya"},
		{"  Sénégal ", "sénégal"},
		{"Sénégal", "sénégal"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Key(tt.in); got != tt.want {
			t.Errorf("Key(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestOrder(t *testing.T) {
	in := []LinkableEntity{
		{Name: "Doe", TargetPath: "/e/jane-doe", Category: CategoryPerson},
		{Name: "Côte", TargetPath: "/glossaire/cote", Category: CategoryTerm},
		{Name: "Jane Doe", TargetPath: "/e/jane-doe", Category: CategoryPerson},
		{Name: " ", TargetPath: "/vide"},
		{Name: "Côte d'Ivoire", TargetPath: "/pays/ci", Category: CategoryPlace},
		{Name: "Mali", TargetPath: "/pays/ml", Category: CategoryPlace},
		{Name: "MALI", TargetPath: "/e/mali", Category: CategoryPerson},
		{Name: "Bénin", TargetPath: "/pays/bj", Category: CategoryPlace},
		{Name: "Bénin", TargetPath: "/e/benin", Category: CategoryPerson},
	}
	orig := append([]LinkableEntity(nil), in...)

	want := []LinkableEntity{
		{Name: "Côte d'Ivoire", TargetPath: "/pays/ci", Category: CategoryPlace},
		{Name: "Jane Doe", TargetPath: "/e/jane-doe", Category: CategoryPerson},
		{Name: "Bénin", TargetPath: "/pays/bj", Category: CategoryPlace},
		{Name: "Côte", TargetPath: "/glossaire/cote", Category: CategoryTerm},
		{Name: "Mali", TargetPath: "/pays/ml", Category: CategoryPlace},
		{Name: "Doe", TargetPath: "/e/jane-doe", Category: CategoryPerson},
	}

	got := Order(in)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(orig, in); diff != "" {
		t.Errorf("Order modified its input (-want +got):\n%s", diff)
	}
}

func TestOrder_Empty(t *testing.T) {
	if got := Order(nil); len(got) != 0 {
		t.Errorf("Order(nil) = %v, want empty", got)
	}
}
