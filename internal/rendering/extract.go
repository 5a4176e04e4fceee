package rendering

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ExtractText flattens a rendered resume document into plain text, one line
// per block element. Used to feed the whole-resume evaluation prompt without
// leaking markup into it.
func ExtractText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", &RenderError{Message: "failed to parse rendered HTML", Cause: err}
	}

	doc.Find("script, style").Remove()

	var lines []string
	doc.Find("h1, h2, h3, p, li, div, span").Each(func(_ int, s *goquery.Selection) {
		// Only leaf-ish nodes; parents repeat their children's text.
		if s.Children().Length() > 0 {
			return
		}
		text := strings.TrimSpace(s.Text())
		if text != "" {
			lines = append(lines, text)
		}
	})

	return strings.Join(lines, "\n"), nil
}
