package htmlutil

import (
	"bytes"
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// GetText concatenates every text node under node.
func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

var innerWhitespace = regexp.MustCompile(`\s+`)

func removeNonPrintable(s string) string {
	newStr := strings.Builder{}
	for _, c := range s {
		if unicode.IsPrint(c) {
			newStr.WriteRune(c)
		}
	}
	return newStr.String()
}

// Clean collapses runs of whitespace (including newlines between text
// nodes) into single spaces and strips non-printable runes.
func Clean(s string) string {
	s = innerWhitespace.ReplaceAllString(s, " ")
	s = removeNonPrintable(s)
	return strings.Trim(s, " ")
}

// Text returns the cleaned text content of a selection.
func Text(sel *goquery.Selection) string {
	return Clean(sel.Text())
}

type Anchor struct {
	Name string
	Href string
}

func Anchors(sel *goquery.Selection) []Anchor {
	anchors := []Anchor{}
	for _, n := range sel.Nodes {
		href := ""
		for _, a := range n.Attr {
			if a.Key == "href" {
				href = a.Val
				break
			}
		}
		anchors = append(anchors, Anchor{
			Name: Clean(GetText(n)),
			Href: href,
		})
	}
	return anchors
}

func HasClass(node *html.Node, class string) bool {
	for _, a := range node.Attr {
		if a.Key != "class" {
			continue
		}
		for _, c := range strings.Fields(a.Val) {
			if c == class {
				return true
			}
		}
	}
	return false
}

// NextMatching walks the tree in document order starting after start and
// returns the first element for which match returns true, or nil.
func NextMatching(start *html.Node, match func(*html.Node) bool) *html.Node {
	for n := nextInDocument(start); n != nil; n = nextInDocument(n) {
		if n.Type == html.ElementNode && match(n) {
			return n
		}
	}
	return nil
}

func nextInDocument(n *html.Node) *html.Node {
	if n.FirstChild != nil {
		return n.FirstChild
	}
	for n != nil {
		if n.NextSibling != nil {
			return n.NextSibling
		}
		n = n.Parent
	}
	return nil
}
