package catalog

import (
	"testing"

	"cfdsmoke/internal/domain"

	"github.com/google/go-cmp/cmp"
)

func paths(cases []domain.TestCase) []string {
	out := make([]string, 0, len(cases))
	for _, tc := range cases {
		out = append(out, tc.Path)
	}
	return out
}

func TestBuildTestList(t *testing.T) {
	t.Run("short only without metis", func(t *testing.T) {
		got := paths(BuildTestList(false, false))
		if diff := cmp.Diff(shortCases, got); diff != "" {
			t.Errorf("short list mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("metis case lands after the su2 case", func(t *testing.T) {
		got := paths(BuildTestList(false, true))
		if len(got) != len(shortCases)+1 {
			t.Fatalf("expected %d cases, got %d", len(shortCases)+1, len(got))
		}
		if got[4] != MetisCase {
			t.Errorf("expected metis case at index 4, got %s", got[4])
		}

		want := append([]string{}, shortCases[:4]...)
		want = append(want, MetisCase)
		want = append(want, shortCases[4:]...)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("list mismatch (-want +got):\n%s", diff)
		}
		for _, p := range got {
			for _, l := range longCases {
				if p == l {
					t.Errorf("long case %s in short run", p)
				}
			}
		}
	})

	for _, metis := range []bool{false, true} {
		t.Run("long tests follow short tests", func(t *testing.T) {
			short := paths(BuildTestList(false, metis))
			got := paths(BuildTestList(true, metis))

			want := append(append([]string{}, short...), longCases...)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("list mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCatalog_Build(t *testing.T) {
	t.Run("predicate evaluated once", func(t *testing.T) {
		calls := 0
		c := New(func() bool {
			calls++
			return true
		})
		sel := c.Build(true)
		if calls != 1 {
			t.Errorf("expected one predicate call, got %d", calls)
		}
		if diff := cmp.Diff([]string{"Found gpmetis"}, sel.Notices); diff != "" {
			t.Errorf("notices mismatch (-want +got):\n%s", diff)
		}
		if !sel.Long {
			t.Error("expected long selection")
		}
	})

	t.Run("no notices when optional case excluded", func(t *testing.T) {
		sel := New(func() bool { return false }).Build(false)
		if len(sel.Notices) != 0 {
			t.Errorf("expected no notices, got %v", sel.Notices)
		}
	})

	t.Run("nil predicate excludes case", func(t *testing.T) {
		sel := New(nil).Build(false)
		if len(sel.Cases) != len(shortCases) {
			t.Errorf("expected %d cases, got %d", len(shortCases), len(sel.Cases))
		}
	})

	t.Run("custom registry", func(t *testing.T) {
		c := &Catalog{
			Short: []string{"a/one.test", "b/two.rb"},
			Optional: []OptionalCase{
				{Path: "c/three.tcl", After: "a/one.test", Available: func() bool { return true }},
				{Path: "d/four.test", After: "b/two.rb", Available: func() bool { return false }},
			},
			Long: []string{"e/five.test"},
		}
		got := paths(c.Build(true).Cases)
		want := []string{"a/one.test", "c/three.tcl", "b/two.rb", "e/five.test"}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("list mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("building does not mutate the catalog", func(t *testing.T) {
		c := New(func() bool { return true })
		c.Build(true)
		if diff := cmp.Diff(shortCases, c.Short); diff != "" {
			t.Errorf("short list changed (-want +got):\n%s", diff)
		}
	})
}
