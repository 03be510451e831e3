package navi_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lestrrat-go/navi"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	testcases := []struct {
		Input    string
		Expected string
	}{
		{Input: "", Expected: "/"},
		{Input: "/", Expected: "/"},
		{Input: "///", Expected: "/"},
		{Input: "settings", Expected: "settings"},
		{Input: "/settings/", Expected: "settings"},
		{Input: "//user/42//", Expected: "user/42"},
		{Input: "a//b", Expected: "a//b"},
	}

	for _, tc := range testcases {
		t.Run(fmt.Sprintf("input = %q", tc.Input), func(t *testing.T) {
			got := navi.Normalize(tc.Input)
			require.Equal(t, tc.Expected, got, "normalized path should match")
			require.Equal(t, got, navi.Normalize(got), "normalize should be idempotent")
		})
	}
}

func TestCompile(t *testing.T) {
	t.Run("parameters", func(t *testing.T) {
		testcases := []struct {
			Pattern string
			Path    string
			Match   bool
			Params  navi.Params
		}{
			{Pattern: "/", Path: "/", Match: true, Params: navi.Params{}},
			{Pattern: "/", Path: "home", Match: false},
			{Pattern: "user/[id]", Path: "user/42", Match: true, Params: navi.Params{"id": "42"}},
			{Pattern: "/user/[id]/", Path: "user/42", Match: true, Params: navi.Params{"id": "42"}},
			{Pattern: "user/[id]", Path: "user", Match: false},
			{Pattern: "user/[id]", Path: "user/42/edit", Match: false},
			{Pattern: "user/[id]", Path: "users/42", Match: false},
			{
				Pattern: "org/[org]/repo/[repo]",
				Path:    "org/acme/repo/navi",
				Match:   true,
				Params:  navi.Params{"org": "acme", "repo": "navi"},
			},
			{Pattern: "[a]/[b]", Path: "x/y", Match: true, Params: navi.Params{"a": "x", "b": "y"}},
			{Pattern: "files/a.b", Path: "files/a.b", Match: true, Params: navi.Params{}},
			{Pattern: "files/a.b", Path: "files/axb", Match: false},
			{Pattern: "search/(x|y)+", Path: "search/xy", Match: false},
			{Pattern: "search/(x|y)+", Path: "search/(x|y)+", Match: true, Params: navi.Params{}},
		}

		for _, tc := range testcases {
			t.Run(fmt.Sprintf("%q against %q", tc.Pattern, tc.Path), func(t *testing.T) {
				m, err := navi.Compile(tc.Pattern)
				require.NoError(t, err, "compile should succeed")

				params, ok := m.Match(tc.Path)
				require.Equal(t, tc.Match, ok, "match result should be as expected")
				if tc.Match {
					require.Equal(t, tc.Params, params, "params should match")
				}
			})
		}
	})
	t.Run("parameter names keep declared order", func(t *testing.T) {
		m := navi.MustCompile("[z]/static/[a]/[m]")
		require.Equal(t, []string{"z", "a", "m"}, m.Names())
		require.Equal(t, "[z]/static/[a]/[m]", m.Pattern())
	})
	t.Run("compiling twice yields equivalent matchers", func(t *testing.T) {
		a := navi.MustCompile("user/[id]")
		b := navi.MustCompile("user/[id]")
		for _, path := range []string{"user/1", "user", "user/1/2", "/"} {
			pa, oka := a.Match(path)
			pb, okb := b.Match(path)
			require.Equal(t, oka, okb, "match should agree for %q", path)
			require.Equal(t, pa, pb, "params should agree for %q", path)
		}
	})
	t.Run("malformed patterns", func(t *testing.T) {
		for _, pattern := range []string{
			"user/[id",
			"user/id]",
			"user/[]",
			"user/x[id]",
			"user/[id]x",
			"[[id]]",
			"[a]/[a]",
		} {
			t.Run(fmt.Sprintf("pattern = %q", pattern), func(t *testing.T) {
				_, err := navi.Compile(pattern)
				require.Error(t, err, "compile should fail")
				require.True(t, errors.Is(err, navi.ErrMalformedPattern), "error should be ErrMalformedPattern")
			})
		}
	})
	t.Run("MustCompile panics", func(t *testing.T) {
		require.Panics(t, func() { navi.MustCompile("user/[id") })
	})
}
