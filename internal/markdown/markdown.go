// Package markdown provides goldmark-backed analysis of rendered documents.
// This is an analysis API for validating generator output; it does not
// re-render Markdown.
package markdown

import (
	gm "github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"
)

type LinkKind string

const (
	LinkKindInline LinkKind = "inline"
	LinkKindImage  LinkKind = "image"
	LinkKindAuto   LinkKind = "auto"
)

// Link is one link-like construct found in a document.
type Link struct {
	Kind        LinkKind
	Destination string
}

// Heading is one section heading with its literal text.
type Heading struct {
	Level int
	Text  string
}

// ExtractLinks parses a Markdown body and extracts link-like constructs.
func ExtractLinks(body []byte) []Link {
	root := gm.New().Parser().Parse(gmtext.NewReader(body))

	links := make([]Link, 0)
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *gmast.AutoLink:
			links = append(links, Link{Kind: LinkKindAuto, Destination: string(node.URL(body))})
		case *gmast.Image:
			links = append(links, Link{Kind: LinkKindImage, Destination: string(node.Destination)})
		case *gmast.Link:
			links = append(links, Link{Kind: LinkKindInline, Destination: string(node.Destination)})
		}
		return gmast.WalkContinue, nil
	})
	return links
}

// ExtractHeadings parses a Markdown body and returns its headings in
// document order.
func ExtractHeadings(body []byte) []Heading {
	root := gm.New().Parser().Parse(gmtext.NewReader(body))

	headings := make([]Heading, 0)
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		if h, ok := n.(*gmast.Heading); ok {
			headings = append(headings, Heading{
				Level: h.Level,
				Text:  string(h.Text(body)),
			})
		}
		return gmast.WalkContinue, nil
	})
	return headings
}
