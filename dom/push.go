package dom

import "github.com/lestrrat-go/navi"

const (
	DefaultHiddenClass  = "hidden"
	DefaultNavigateAttr = "data-navigate"
	DefaultPathAttr     = "data-path"
)

// hashPush returns the fragment to push for path, and false when the
// current fragment already addresses it.
func hashPush(current, path string) (string, bool) {
	fragment := navi.HashFragment(navi.Normalize(path))
	if navi.Normalize(navi.PathFromFragment(current)) == navi.Normalize(path) {
		return fragment, false
	}
	return fragment, true
}

// linkTarget picks the navigation target of an intercepted link: the
// path attribute when present, the href otherwise.
func linkTarget(attr func(name string) (string, bool), pathAttr string) (string, bool) {
	if v, ok := attr(pathAttr); ok {
		return v, true
	}
	return attr("href")
}
