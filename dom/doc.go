// Package dom provides the browser implementations of the navi
// capabilities: element lookup, link interception and the history and
// hash address sources. Everything touching the document is built for
// js/wasm only.
package dom
