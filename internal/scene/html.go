// html.go

package scene

import (
	"bufio"
	"bytes"
	"fmt"
	"html"
	"io"
)

// WriteHTML serializes the canvas and its content as an HTML fragment. An
// svg child is written inline without its XML declaration; any other child
// is written as a plain element.
func WriteHTML(w io.Writer, canvas *Node, opts ...WriteOption) error {
	bw := bufio.NewWriter(w)
	if err := writeHTMLNode(bw, canvas, opts); err != nil {
		return err
	}
	return bw.Flush()
}

func writeHTMLNode(w *bufio.Writer, n *Node, opts []WriteOption) error {
	if n.Tag == "svg" {
		var buf bytes.Buffer
		if err := WriteSVG(&buf, n, opts...); err != nil {
			return err
		}
		doc := buf.Bytes()
		if i := bytes.Index(doc, []byte("<svg")); i > 0 {
			doc = doc[i:]
		}
		_, err := w.Write(doc)
		return err
	}

	fmt.Fprintf(w, "<%s", n.Tag)
	for _, a := range attrStrings(n, nil) {
		fmt.Fprintf(w, " %s", a)
	}
	w.WriteString(">")
	if n.Text != "" {
		w.WriteString(html.EscapeString(n.Text))
	}
	if len(n.Children) > 0 {
		w.WriteString("\n")
	}
	for _, c := range n.Children {
		if err := writeHTMLNode(w, c, opts); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "</%s>\n", n.Tag)
	return err
}
