package ll

import (
	"fmt"
	"html"
	"io"
)

// TableAsHTML exports an LL(1) table in HTML-format.
func TableAsHTML(t *Table, w io.Writer) {
	if t == nil {
		tracer().Errorf("LL(1) table not yet created, cannot export to HTML")
		return
	}
	io.WriteString(w, "<html><body>\n")
	io.WriteString(w, fmt.Sprintf("LL(1) table for grammar %s, %d cells<p>",
		html.EscapeString(t.g.Name), t.Size()))
	io.WriteString(w, "<table border=1 cellspacing=0 cellpadding=5>\n")
	io.WriteString(w, "<tr bgcolor=#cccccc><td></td>\n")
	for _, a := range t.terminals {
		io.WriteString(w, fmt.Sprintf("<td>%s</td>", html.EscapeString(a.String())))
	}
	io.WriteString(w, "</tr>\n")
	var td string // table cell
	for _, V := range t.g.NonTerminals() {
		io.WriteString(w, fmt.Sprintf("<tr><td>%v</td>\n", V))
		for _, a := range t.terminals {
			if alt, ok := t.Lookup(V, a); ok {
				td = html.EscapeString(alt.Production())
			} else {
				td = "&nbsp;"
			}
			io.WriteString(w, "<td>")
			io.WriteString(w, td)
			io.WriteString(w, "</td>\n")
		}
		io.WriteString(w, "</tr>\n")
	}
	io.WriteString(w, "</table></body></html>\n")
}
