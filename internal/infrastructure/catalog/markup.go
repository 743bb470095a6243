// internal/infrastructure/catalog/markup.go
package catalog

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/your-org/storefront/internal/domain/catalog"
	"golang.org/x/net/html"
)

var nonDigits = regexp.MustCompile(`[^\d]`)

// ParseMarkup scans an HTML document for product nodes and extracts one
// record per node, in document order. A product node carries
// class="product" with data-id / data-name / data-price attributes;
// name falls back to the nested h3 text, price to the digits of the
// nested .price text, image to the nested img src.
func ParseMarkup(data []byte) ([]catalog.Product, error) {
	doc, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("invalid catalog markup: %w", err)
	}

	var products []catalog.Product
	position := 0

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && hasClass(n, "product") {
			p := scanProduct(n, position)
			products = append(products, p)
			position++
			// Product nodes do not nest.
			return
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	return products, nil
}

func scanProduct(node *html.Node, position int) catalog.Product {
	id, _ := strconv.Atoi(attr(node, "data-id"))
	if id == 0 {
		id = position + 1
	}

	name := attr(node, "data-name")
	if name == "" {
		name = strings.TrimSpace(textOf(findElement(node, "h3")))
	}

	price, err := strconv.ParseInt(attr(node, "data-price"), 10, 64)
	if err != nil {
		if priceNode := findClass(node, "price"); priceNode != nil {
			digits := nonDigits.ReplaceAllString(textOf(priceNode), "")
			price, _ = strconv.ParseInt(digits, 10, 64)
		}
	}

	var image string
	if img := findElement(node, "img"); img != nil {
		image = attr(img, "src")
	}

	return catalog.Product{
		ID:           id,
		Name:         name,
		Price:        price,
		ImageRef:     image,
		DisplayOrder: position,
		Category:     categoryFor(id),
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func findElement(n *html.Node, tag string) *html.Node {
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.ElementNode && child.Data == tag {
			return child
		}
		if found := findElement(child, tag); found != nil {
			return found
		}
	}
	return nil
}

func findClass(n *html.Node, class string) *html.Node {
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.ElementNode && hasClass(child, class) {
			return child
		}
		if found := findClass(child, class); found != nil {
			return found
		}
	}
	return nil
}

func textOf(n *html.Node) string {
	if n == nil {
		return ""
	}
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return sb.String()
}
