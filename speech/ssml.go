// Package speech converts HTML documents into speech markup (SSML).
// It is self-contained: nothing in the feed pipeline depends on it.
package speech

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
)

// Options control voice and prosody of the generated markup.
type Options struct {
	Language string
	Voice    string
	Rate     string
}

// DefaultOptions returns the markup defaults.
func DefaultOptions() Options {
	return Options{
		Language: "en-US",
		Rate:     "medium",
	}
}

// Utterance is one speakable unit of a document with its SSML fragment.
type Utterance struct {
	// Index is the utterance's position within the document.
	Index int
	// Text is the plain text spoken by the fragment.
	Text string
	// SSML is the standalone markup for this utterance.
	SSML string
	// WordCount is the number of whitespace-separated words.
	WordCount int
}

// blockSelector matches the elements treated as utterance boundaries.
const blockSelector = "h1, h2, h3, h4, h5, h6, p, li, blockquote, pre, figcaption"

var sanitizer = bluemonday.UGCPolicy()

// Convert sanitizes an HTML document and splits it into per-block
// utterances wrapped in SSML.
func Convert(html string, opts Options) ([]Utterance, error) {
	if strings.TrimSpace(html) == "" {
		return nil, fmt.Errorf("document is empty")
	}

	clean := sanitizer.Sanitize(html)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(clean))
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	var utterances []Utterance
	doc.Find(blockSelector).Each(func(_ int, s *goquery.Selection) {
		// Nested blocks (a p inside a blockquote) are spoken at the
		// innermost level only.
		if s.Find(blockSelector).Length() > 0 {
			return
		}

		text := normalizeWhitespace(s.Text())
		if text == "" {
			return
		}

		index := len(utterances)
		utterances = append(utterances, Utterance{
			Index:     index,
			Text:      text,
			SSML:      wrapSSML(text, index, opts),
			WordCount: len(strings.Fields(text)),
		})
	})

	if len(utterances) == 0 {
		return nil, fmt.Errorf("document has no speakable content")
	}

	return utterances, nil
}

// Document wraps a whole document's utterances in one <speak> envelope.
func Document(utterances []Utterance, opts Options) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<speak xml:lang=%q>`, language(opts))
	for _, u := range utterances {
		b.WriteString(u.SSML)
	}
	b.WriteString(`</speak>`)
	return b.String()
}

func wrapSSML(text string, index int, opts Options) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<mark name="%d"/>`, index)

	if opts.Voice != "" {
		fmt.Fprintf(&b, `<voice name=%q>`, opts.Voice)
	}
	if opts.Rate != "" && opts.Rate != "medium" {
		fmt.Fprintf(&b, `<prosody rate=%q>`, opts.Rate)
	}

	fmt.Fprintf(&b, "<p>%s</p>", escapeText(text))

	if opts.Rate != "" && opts.Rate != "medium" {
		b.WriteString(`</prosody>`)
	}
	if opts.Voice != "" {
		b.WriteString(`</voice>`)
	}

	return b.String()
}

func language(opts Options) string {
	if opts.Language != "" {
		return opts.Language
	}
	return DefaultOptions().Language
}

func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

func escapeText(s string) string {
	return textEscaper.Replace(s)
}
