package dom

import (
	"context"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Loader fetches and evaluates a script resource for the host document.
type Loader interface {
	Load(ctx context.Context, src string) error
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(ctx context.Context, src string) error

func (f LoaderFunc) Load(ctx context.Context, src string) error {
	return f(ctx, src)
}

// Head returns the first <head> element of doc, or nil.
func Head(doc *html.Node) *html.Node {
	if doc == nil {
		return nil
	}
	if doc.Type == html.ElementNode && doc.DataAtom == atom.Head {
		return doc
	}
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if h := Head(c); h != nil {
			return h
		}
	}
	return nil
}

// AddScript appends <script src="url"> to the head of doc and asks load to
// load it. On success onload is called with the script element. On failure
// onerror is called, or onload when onerror is nil, and the failure is also
// returned as a *LoadError. A nil load only inserts the element.
func AddScript(ctx context.Context, doc *html.Node, url string, load Loader, onload, onerror func(*html.Node)) (*html.Node, error) {
	head := Head(doc)
	if head == nil {
		return nil, ErrNoHead
	}

	script := &html.Node{
		Type:     html.ElementNode,
		Data:     atom.Script.String(),
		DataAtom: atom.Script,
		Attr:     []html.Attribute{{Key: "src", Val: url}},
	}
	head.AppendChild(script)

	if load == nil {
		return script, nil
	}

	if err := load.Load(ctx, url); err != nil {
		switch {
		case onerror != nil:
			onerror(script)
		case onload != nil:
			onload(script)
		}
		return script, &LoadError{Src: url, Err: err}
	}

	if onload != nil {
		onload(script)
	}

	return script, nil
}
