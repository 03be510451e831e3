package navi_test

import (
	"fmt"
	"testing"

	"github.com/lestrrat-go/navi"
	"github.com/stretchr/testify/require"
)

func TestHashFragment(t *testing.T) {
	testcases := []struct {
		Path     string
		Fragment string
	}{
		{Path: "/", Fragment: "#/"},
		{Path: "settings", Fragment: "#/settings"},
		{Path: "user/42", Fragment: "#/user/42"},
		{Path: "a b/c", Fragment: "#/a%20b/c"},
	}
	for _, tc := range testcases {
		t.Run(fmt.Sprintf("path = %q", tc.Path), func(t *testing.T) {
			require.Equal(t, tc.Fragment, navi.HashFragment(tc.Path))
			require.Equal(t, tc.Path, navi.Normalize(navi.PathFromFragment(tc.Fragment)))
		})
	}

	t.Run("undecodable fragment is returned as-is", func(t *testing.T) {
		require.Equal(t, "/bad%zz", navi.PathFromFragment("#/bad%zz"))
	})
	t.Run("empty fragment is the root", func(t *testing.T) {
		require.Equal(t, "/", navi.Normalize(navi.PathFromFragment("")))
	})
}

func TestLocationPath(t *testing.T) {
	require.Equal(t, "/", navi.LocationPath("/"))
	require.Equal(t, "/user/42", navi.LocationPath("user/42"))
}

func TestMemoryHistory(t *testing.T) {
	h := navi.NewMemoryHistory("")
	require.Equal(t, "/", h.Current(), "empty initial path is the root")

	var notified []string
	h.Listen(func(path string) { notified = append(notified, path) })

	h.Push("a")
	h.Push("/b/")
	require.Equal(t, "/b", h.Current())
	require.Empty(t, notified, "push should not notify")

	require.True(t, h.Back())
	require.True(t, h.Back())
	require.False(t, h.Back(), "nothing before the first entry")
	require.Equal(t, []string{"/a", "/"}, notified)

	h.Push("c")
	require.Equal(t, 2, h.Len(), "push discards forward entries")
	require.False(t, h.Forward())
}

func TestMemoryHash(t *testing.T) {
	h := navi.NewMemoryHash("")
	require.Equal(t, "", h.Fragment())

	var notified []string
	h.Listen(func(path string) { notified = append(notified, path) })

	h.Push("settings")
	require.Equal(t, "#/settings", h.Fragment())
	require.Equal(t, "/settings", h.Current())
	require.Empty(t, notified, "push should not notify")

	h.SetFragment("/user/1")
	require.Equal(t, "#/user/1", h.Fragment())
	require.Equal(t, []string{"/user/1"}, notified)
}
