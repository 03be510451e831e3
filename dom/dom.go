//go:build js && wasm

package dom

import (
	"syscall/js"

	"github.com/lestrrat-go/navi"
)

// Lookup finds views by element id and hides them by toggling a class.
type Lookup struct {
	doc         js.Value
	hiddenClass string
}

// NewLookup creates a Lookup. An empty hiddenClass means
// DefaultHiddenClass.
func NewLookup(hiddenClass string) *Lookup {
	if hiddenClass == "" {
		hiddenClass = DefaultHiddenClass
	}
	return &Lookup{
		doc:         js.Global().Get("document"),
		hiddenClass: hiddenClass,
	}
}

func (l *Lookup) LookupView(id string) (navi.View, bool) {
	el := l.doc.Call("getElementById", id)
	if el.IsNull() || el.IsUndefined() {
		return nil, false
	}
	return &element{el: el, hiddenClass: l.hiddenClass}, true
}

type element struct {
	el          js.Value
	hiddenClass string
}

func (e *element) Show() {
	e.el.Get("classList").Call("remove", e.hiddenClass)
}

func (e *element) Hide() {
	e.el.Get("classList").Call("add", e.hiddenClass)
}

// Element returns the underlying DOM element.
func (e *element) Element() js.Value {
	return e.el
}

// LinkTrigger intercepts clicks on elements carrying NavigateAttr and
// navigates to the path in PathAttr, or the element's href.
type LinkTrigger struct {
	NavigateAttr string
	PathAttr     string
	// OnError receives navigation errors. It may be nil.
	OnError func(error)

	fn js.Func
}

func NewLinkTrigger() *LinkTrigger {
	return &LinkTrigger{
		NavigateAttr: DefaultNavigateAttr,
		PathAttr:     DefaultPathAttr,
	}
}

func (t *LinkTrigger) Bind(navigate navi.NavigateFunc) {
	selector := "[" + t.NavigateAttr + "]"
	t.fn = js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) == 0 {
			return nil
		}
		ev := args[0]
		target := ev.Get("target")
		if target.IsNull() || target.IsUndefined() || target.Get("closest").IsUndefined() {
			return nil
		}
		link := target.Call("closest", selector)
		if link.IsNull() {
			return nil
		}

		path, ok := linkTarget(func(name string) (string, bool) {
			v := link.Call("getAttribute", name)
			if v.IsNull() {
				return "", false
			}
			return v.String(), true
		}, t.PathAttr)
		if !ok {
			return nil
		}

		ev.Call("preventDefault")
		if err := navigate(path); err != nil && t.OnError != nil {
			t.OnError(err)
		}
		return nil
	})
	js.Global().Get("document").Call("addEventListener", "click", t.fn)
}

// Release removes the click listener.
func (t *LinkTrigger) Release() {
	if t.fn.IsUndefined() {
		return
	}
	js.Global().Get("document").Call("removeEventListener", "click", t.fn)
	t.fn.Release()
}

// History is the history-style address source backed by window.location
// and history.pushState.
type History struct {
	funcs []js.Func
}

func NewHistory() *History {
	return &History{}
}

func (h *History) Current() string {
	return js.Global().Get("location").Get("pathname").String()
}

func (h *History) Push(path string) {
	js.Global().Get("history").Call("pushState", nil, "", navi.LocationPath(navi.Normalize(path)))
}

func (h *History) Listen(fn func(string)) {
	f := js.FuncOf(func(js.Value, []js.Value) any {
		fn(h.Current())
		return nil
	})
	h.funcs = append(h.funcs, f)
	js.Global().Call("addEventListener", "popstate", f)
}

// Hash is the hash-fragment address source. Push goes through
// history.pushState so that it does not raise hashchange.
type Hash struct {
	funcs []js.Func
}

func NewHash() *Hash {
	return &Hash{}
}

func (h *Hash) Current() string {
	return navi.PathFromFragment(js.Global().Get("location").Get("hash").String())
}

// Push adds a history entry unless the fragment already addresses path.
func (h *Hash) Push(path string) {
	current := js.Global().Get("location").Get("hash").String()
	fragment, ok := hashPush(current, path)
	if !ok {
		return
	}
	js.Global().Get("history").Call("pushState", nil, "", fragment)
}

func (h *Hash) Listen(fn func(string)) {
	f := js.FuncOf(func(js.Value, []js.Value) any {
		fn(h.Current())
		return nil
	})
	h.funcs = append(h.funcs, f)
	js.Global().Call("addEventListener", "hashchange", f)
}

// Release removes the popstate listeners.
func (h *History) Release() {
	for _, f := range h.funcs {
		js.Global().Call("removeEventListener", "popstate", f)
		f.Release()
	}
	h.funcs = nil
}

// Release removes the hashchange listeners.
func (h *Hash) Release() {
	for _, f := range h.funcs {
		js.Global().Call("removeEventListener", "hashchange", f)
		f.Release()
	}
	h.funcs = nil
}
