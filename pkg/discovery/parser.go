package discovery

import (
	"bytes"
	"encoding/xml"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"

	"github.com/feedscout/feedscout/pkg/urlnorm"
)

// Parser extracts article candidates from RSS 2.0 or Atom documents.
// It is deliberately tolerant: third-party feeds are routinely malformed,
// so a document that cannot be parsed yields zero entries, never an error,
// and a single broken entry never fails the rest.
type Parser struct{}

// NewParser creates a feed parser
func NewParser() *Parser {
	return &Parser{}
}

// Parse scans data for RSS <item> elements and falls back to Atom <entry>
// elements when no items are found. Entry links are normalized against
// baseURL; entries whose link is missing or invalid are dropped.
func (p *Parser) Parse(data []byte, baseURL string) []Entry {
	items, atoms := scanFeed(data)
	raw := items
	atom := false
	if len(raw) == 0 {
		raw = atoms
		atom = true
	}

	entries := make([]Entry, 0, len(raw))
	for _, r := range raw {
		link, err := urlnorm.Normalize(r.link(atom), baseURL)
		if err != nil {
			continue
		}

		e := Entry{
			URL:     link,
			Title:   cleanText(r.title()),
			Summary: cleanText(r.summary(atom)),
		}
		// strict ISO-8601 only; anything else leaves the timestamp unset
		if ts, err := time.Parse(time.RFC3339, strings.TrimSpace(r.published(atom))); err == nil {
			e.Published = ts
		}
		entries = append(entries, e)
	}
	return entries
}

// rawItem holds the text of the recognized children of one item/entry
// element, keyed by lowercased tag name, plus a href captured from an Atom
// <link> element.
type rawItem struct {
	fields   map[string]string
	linkHref string
}

func (r rawItem) title() string { return r.fields["title"] }

func (r rawItem) link(atom bool) string {
	if atom {
		if r.linkHref != "" {
			return r.linkHref
		}
	}
	return strings.TrimSpace(r.fields["link"])
}

func (r rawItem) summary(atom bool) string {
	if !atom {
		return r.fields["description"]
	}
	if strings.TrimSpace(r.fields["summary"]) != "" {
		return r.fields["summary"]
	}
	return r.fields["content"]
}

func (r rawItem) published(atom bool) string {
	if !atom {
		return r.fields["pubdate"]
	}
	if strings.TrimSpace(r.fields["updated"]) != "" {
		return r.fields["updated"]
	}
	return r.fields["published"]
}

// scanFeed walks the token stream collecting item and entry subtrees in one
// pass. A decoding error mid-document terminates the scan but keeps whatever
// was collected before it.
func scanFeed(data []byte) (items, entries []rawItem) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Strict = false
	dec.CharsetReader = charset.NewReaderLabel

	for {
		tok, err := dec.Token()
		if err != nil {
			return items, entries
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		switch {
		case strings.EqualFold(start.Name.Local, "item"):
			item, err := collectItem(dec)
			if err != nil {
				return items, entries
			}
			items = append(items, item)
		case strings.EqualFold(start.Name.Local, "entry"):
			entry, err := collectItem(dec)
			if err != nil {
				return items, entries
			}
			entries = append(entries, entry)
		}
	}
}

// collectItem consumes tokens until the element opened just before the call
// is closed, recording the text of its direct children. Text of nested
// elements is flattened into the enclosing child, first occurrence of each
// child name wins. CDATA arrives as ordinary character data from the decoder.
func collectItem(dec *xml.Decoder) (rawItem, error) {
	item := rawItem{fields: map[string]string{}}
	depth := 0
	current := ""
	var buf strings.Builder

	for {
		tok, err := dec.Token()
		if err != nil {
			return item, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			if depth == 1 {
				current = strings.ToLower(t.Name.Local)
				buf.Reset()
				if current == "link" && item.linkHref == "" {
					for _, a := range t.Attr {
						if strings.EqualFold(a.Name.Local, "href") && a.Value != "" {
							item.linkHref = a.Value
							break
						}
					}
				}
			}
		case xml.EndElement:
			if depth == 0 {
				// the item/entry element itself closed
				return item, nil
			}
			depth--
			if depth == 0 && current != "" {
				if _, seen := item.fields[current]; !seen {
					item.fields[current] = buf.String()
				}
				current = ""
			}
		case xml.CharData:
			if current != "" {
				buf.Write(t)
			}
		}
	}
}

// cleanText unwraps markup left in feed text (escaped HTML or CDATA payloads)
// and collapses runs of whitespace to single spaces.
func cleanText(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if strings.Contains(s, "<") {
		if doc, err := goquery.NewDocumentFromReader(strings.NewReader(s)); err == nil {
			s = doc.Text()
		}
	}
	return strings.Join(strings.Fields(s), " ")
}
