// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package portabletext converts Sanity Portable Text block arrays into
// sanitized HTML. It supports the block styles and marks the Stanmoor
// editors actually use: paragraphs, h2-h4 headings, blockquotes, bullet
// and numbered lists, strong/em decorators, and link annotations. Unknown
// block types are skipped rather than rendered.
package portabletext

import (
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Block is one element of a Portable Text array.
type Block struct {
	Type     string    `json:"_type"`
	Style    string    `json:"style"`
	ListItem string    `json:"listItem"`
	Level    int       `json:"level"`
	Children []Span    `json:"children"`
	MarkDefs []MarkDef `json:"markDefs"`
}

// Span is an inline run of text with zero or more marks applied.
type Span struct {
	Type  string   `json:"_type"`
	Text  string   `json:"text"`
	Marks []string `json:"marks"`
}

// MarkDef is an annotation referenced by key from a span's marks,
// currently only links.
type MarkDef struct {
	Key  string `json:"_key"`
	Type string `json:"_type"`
	Href string `json:"href"`
}

// policy strips anything the renderer should not have produced. UGCPolicy
// covers the tag set above and keeps href targets safe.
var policy = bluemonday.UGCPolicy()

// ToHTML renders a Portable Text block array as sanitized HTML.
func ToHTML(blocks []Block) string {
	var b strings.Builder
	var listTag string // open list element, "" when not inside a list

	closeList := func() {
		if listTag != "" {
			b.WriteString("</" + listTag + ">")
			listTag = ""
		}
	}

	for _, block := range blocks {
		if block.Type != "block" {
			continue
		}

		if block.ListItem != "" {
			tag := "ul"
			if block.ListItem == "number" {
				tag = "ol"
			}
			if listTag != tag {
				closeList()
				b.WriteString("<" + tag + ">")
				listTag = tag
			}
			b.WriteString("<li>" + renderSpans(block) + "</li>")
			continue
		}
		closeList()

		switch block.Style {
		case "h2", "h3", "h4":
			fmt.Fprintf(&b, "<%s>%s</%s>", block.Style, renderSpans(block), block.Style)
		case "blockquote":
			b.WriteString("<blockquote>" + renderSpans(block) + "</blockquote>")
		default:
			b.WriteString("<p>" + renderSpans(block) + "</p>")
		}
	}
	closeList()

	return policy.Sanitize(b.String())
}

// renderSpans renders a block's children with decorator and link marks.
func renderSpans(block Block) string {
	defs := make(map[string]MarkDef, len(block.MarkDefs))
	for _, d := range block.MarkDefs {
		defs[d.Key] = d
	}

	var b strings.Builder
	for _, span := range block.Children {
		text := html.EscapeString(span.Text)

		// Apply marks innermost-first so closing order mirrors opening order.
		for i := len(span.Marks) - 1; i >= 0; i-- {
			switch mark := span.Marks[i]; mark {
			case "strong":
				text = "<strong>" + text + "</strong>"
			case "em":
				text = "<em>" + text + "</em>"
			default:
				if def, ok := defs[mark]; ok && def.Type == "link" {
					text = fmt.Sprintf(`<a href="%s" rel="nofollow">%s</a>`, html.EscapeString(def.Href), text)
				}
			}
		}
		b.WriteString(text)
	}
	return b.String()
}

// PlainText flattens a block array to raw text. Used for meta descriptions
// and search matching where markup is noise.
func PlainText(blocks []Block) string {
	var parts []string
	for _, block := range blocks {
		if block.Type != "block" {
			continue
		}
		var b strings.Builder
		for _, span := range block.Children {
			b.WriteString(span.Text)
		}
		if s := strings.TrimSpace(b.String()); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}
