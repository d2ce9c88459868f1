package ingest

import (
	"bytes"
	"net/url"
	"strings"
	"unicode/utf8"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"golang.org/x/net/html"
)

// maxSummaryRunes caps the description derived from body text.
const maxSummaryRunes = 280

// PageMeta is the subset of a page's metadata used for logged items.
type PageMeta struct {
	Title       string
	ImageURL    string
	Description string
}

// ExtractMeta reads title, preview image and description from an HTML page.
// Open Graph wins over Twitter cards, which win over plain HTML. Without any
// description meta tag the first non-empty paragraph is used, as markdown.
func ExtractMeta(body []byte, base *url.URL) PageMeta {
	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return PageMeta{}
	}

	props := make(map[string]string)
	var titleTag, firstImg string
	var firstPara *html.Node

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "meta":
				key := strings.ToLower(attr(n, "property"))
				if key == "" {
					key = strings.ToLower(attr(n, "name"))
				}
				content := strings.TrimSpace(attr(n, "content"))
				if key != "" && content != "" {
					if _, seen := props[key]; !seen {
						props[key] = content
					}
				}
			case "title":
				if titleTag == "" {
					titleTag = strings.TrimSpace(textOf(n))
				}
			case "img":
				if firstImg == "" {
					firstImg = strings.TrimSpace(attr(n, "src"))
				}
			case "p":
				if firstPara == nil && strings.TrimSpace(allText(n)) != "" {
					firstPara = n
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	meta := PageMeta{
		Title:       firstNonEmpty(props["og:title"], props["twitter:title"], titleTag),
		Description: firstNonEmpty(props["og:description"], props["description"]),
	}
	if meta.Description == "" && firstPara != nil {
		meta.Description = summarize(firstPara)
	}
	if img := firstNonEmpty(props["og:image"], props["twitter:image"], firstImg); img != "" {
		meta.ImageURL = resolve(base, img)
	}
	return meta
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}

func textOf(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}

func allText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(allText(c))
	}
	return sb.String()
}

// summarize renders a paragraph as single-line markdown, truncated.
func summarize(n *html.Node) string {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return ""
	}
	markdown, err := md.NewConverter("", true, nil).ConvertString(buf.String())
	if err != nil {
		return ""
	}
	return truncate(strings.Join(strings.Fields(markdown), " "))
}

// textSummary returns the first non-blank line of a plain-text body.
func textSummary(body []byte) string {
	for _, line := range strings.Split(string(body), "\n") {
		if text := strings.Join(strings.Fields(line), " "); text != "" {
			return truncate(text)
		}
	}
	return ""
}

func truncate(text string) string {
	if utf8.RuneCountInString(text) <= maxSummaryRunes {
		return text
	}
	runes := []rune(text)
	return strings.TrimSpace(string(runes[:maxSummaryRunes])) + "…"
}

func resolve(base *url.URL, ref string) string {
	if base == nil {
		return ref
	}
	u, err := base.Parse(ref)
	if err != nil {
		return ""
	}
	return u.String()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
