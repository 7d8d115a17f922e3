package autocorrect_test

import (
	"testing"

	"github.com/edgard/autocorrect/pkg/autocorrect"
)

func TestHasIgnoreDirective(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want bool
	}{
		{"# autocorrect: false\nHello world", true},
		{"# autocorrect:false\nHello world", true},
		{"# autocorrect: 0\nHello world", true},
		{"# autocorrect: 1\nHello world", false},
		{"# autocorrect: true\nHello world", false},
		{"Hello world", false},
	}

	for _, tc := range cases {
		if got := autocorrect.HasIgnoreDirective(tc.in); got != tc.want {
			t.Errorf("HasIgnoreDirective(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
