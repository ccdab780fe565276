// Package dom manipulates HTML documents parsed with golang.org/x/net/html:
// class lists on elements and script injection into the document head.
package dom

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/net/html"
)

// Element is anything with a class attribute.
type Element interface {
	ClassName() string
	SetClassName(string)
}

type node struct {
	n *html.Node
}

// Node adapts an element node to Element.
func Node(n *html.Node) Element {
	return node{n: n}
}

func (e node) ClassName() string {
	for _, a := range e.n.Attr {
		if a.Namespace == "" && a.Key == "class" {
			return a.Val
		}
	}
	return ""
}

func (e node) SetClassName(v string) {
	for i, a := range e.n.Attr {
		if a.Namespace == "" && a.Key == "class" {
			e.n.Attr[i].Val = v
			return
		}
	}
	e.n.Attr = append(e.n.Attr, html.Attribute{Key: "class", Val: v})
}

func validClass(name string) error {
	if name == "" || strings.ContainsFunc(name, isSpace) {
		return fmt.Errorf("%w: %q", ErrInvalidClass, name)
	}
	return nil
}

// HTML whitespace as defined for class lists.
func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}

func tokens(el Element) []string {
	return strings.FieldsFunc(el.ClassName(), isSpace)
}

// HasClass reports whether name is one of the element's classes.
// An invalid name is never present.
func HasClass(el Element, name string) bool {
	if validClass(name) != nil {
		return false
	}
	return slices.Contains(tokens(el), name)
}

// AddClass appends name to the element's class list unless it is already
// present. The class attribute is rewritten single-space separated.
func AddClass(el Element, name string) error {
	if err := validClass(name); err != nil {
		return err
	}

	list := tokens(el)
	if slices.Contains(list, name) {
		return nil
	}

	el.SetClassName(strings.Join(append(list, name), " "))
	return nil
}

// RemoveClass removes every occurrence of name from the element's class
// list, leaving the other classes in order.
func RemoveClass(el Element, name string) error {
	if err := validClass(name); err != nil {
		return err
	}

	list := tokens(el)
	kept := slices.DeleteFunc(slices.Clone(list), func(c string) bool { return c == name })
	if len(kept) == len(list) {
		return nil
	}

	el.SetClassName(strings.Join(kept, " "))
	return nil
}

// ToggleClass removes name if present and adds it otherwise. It reports
// whether the class is present afterwards.
func ToggleClass(el Element, name string) (bool, error) {
	if err := validClass(name); err != nil {
		return false, err
	}

	if HasClass(el, name) {
		return false, RemoveClass(el, name)
	}
	return true, AddClass(el, name)
}
