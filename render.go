package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/wildfunctions/formal_series/pkg/series"
)

// Report is the rendered prefix of one catalog series.
type Report struct {
	Name         string   `json:"name"`
	Ring         string   `json:"ring"`
	Terms        int      `json:"terms"`
	Coefficients []string `json:"coefficients"`
	Compact      string   `json:"compact"`
}

// EvalReport is a truncated evaluation of one catalog series at a point.
type EvalReport struct {
	Name  string  `json:"name"`
	Ring  string  `json:"ring"`
	At    string  `json:"at"`
	Terms int     `json:"terms"`
	Value string  `json:"value"`
	Float float64 `json:"float"`
}

// NewReport renders the first n coefficients of f.
func NewReport[T Coeff[T]](name, ring string, f series.Series[T], n int) Report {
	cs := f.Take(n)
	strs := make([]string, len(cs))
	for i, c := range cs {
		strs[i] = c.String()
	}
	return Report{
		Name:         name,
		Ring:         ring,
		Terms:        n,
		Coefficients: strs,
		Compact:      f.String(),
	}
}

// WriteCatalog lists catalog names and their descriptions.
func WriteCatalog[T Coeff[T]](w io.Writer, es []Entry[T]) {
	width := 0
	for _, e := range es {
		if len(e.Name) > width {
			width = len(e.Name)
		}
	}
	for _, e := range es {
		fmt.Fprintf(w, "  %-*s  %s\n", width, e.Name, e.Info)
	}
}

// WriteTextReport writes one series prefix in human-readable form.
func WriteTextReport(w io.Writer, r Report) {
	fmt.Fprintf(w, "%s over %s: %s\n", r.Name, r.Ring, r.Compact)
	width := 0
	for _, c := range r.Coefficients {
		if len(c) > width {
			width = len(c)
		}
	}
	for k, c := range r.Coefficients {
		fmt.Fprintf(w, "  x^%-2d %*s\n", k, width, c)
	}
}

// WriteEvalReport writes a truncated evaluation in human-readable form.
func WriteEvalReport(w io.Writer, r EvalReport) {
	fmt.Fprintf(w, "%s at x = %s over %s, %d terms\n", r.Name, r.At, r.Ring, r.Terms)
	fmt.Fprintf(w, "  value: %s\n", r.Value)
	fmt.Fprintf(w, "  float: %.15g\n", r.Float)
}

// WriteTable writes reports as aligned columns, one row per power of x.
func WriteTable(w io.Writer, rs []Report) {
	if len(rs) == 0 {
		return
	}
	rows := 0
	widths := make([]int, len(rs))
	for i, r := range rs {
		widths[i] = len(r.Name)
		for _, c := range r.Coefficients {
			if len(c) > widths[i] {
				widths[i] = len(c)
			}
		}
		if len(r.Coefficients) > rows {
			rows = len(r.Coefficients)
		}
	}
	fmt.Fprintf(w, "%4s", "k")
	for i, r := range rs {
		fmt.Fprintf(w, "  %*s", widths[i], r.Name)
	}
	fmt.Fprintln(w)
	for k := 0; k < rows; k++ {
		fmt.Fprintf(w, "%4d", k)
		for i, r := range rs {
			cell := ""
			if k < len(r.Coefficients) {
				cell = r.Coefficients[k]
			}
			fmt.Fprintf(w, "  %*s", widths[i], cell)
		}
		fmt.Fprintln(w)
	}
}

// WriteJSONReport writes any report value as indented JSON.
func WriteJSONReport(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteLaTeXReport writes a compilable LaTeX document showing the prefix
// as a truncated power series.
func WriteLaTeXReport(w io.Writer, r Report) {
	fmt.Fprintln(w, `\documentclass{article}`)
	fmt.Fprintln(w, `\usepackage{amsmath}`)
	fmt.Fprintln(w, `\begin{document}`)
	fmt.Fprintf(w, "\\section*{\\texttt{%s} over the %s ring}\n", r.Name, r.Ring)
	fmt.Fprintln(w, `\[`)
	fmt.Fprintf(w, "  %s\n", LaTeXPolynomial(r.Coefficients))
	fmt.Fprintln(w, `\]`)
	fmt.Fprintln(w, `\end{document}`)
}

// LaTeXPolynomial renders coefficient strings as a truncated power series,
// dropping zero terms and unit coefficients the way a person would write it.
func LaTeXPolynomial(cs []string) string {
	var b strings.Builder
	for k, c := range cs {
		if c == "0" {
			continue
		}
		mag, neg := strings.CutPrefix(c, "-")
		switch {
		case b.Len() == 0 && neg:
			b.WriteString("-")
		case b.Len() > 0 && neg:
			b.WriteString(" - ")
		case b.Len() > 0:
			b.WriteString(" + ")
		}
		b.WriteString(latexTerm(mag, k))
	}
	if b.Len() == 0 {
		b.WriteString("0")
	}
	b.WriteString(" + \\cdots")
	return b.String()
}

// latexTerm renders one |coefficient| * x^k term.
func latexTerm(mag string, k int) string {
	coef := latexFrac(mag)
	switch {
	case k == 0:
		return coef
	case coef == "1" && k == 1:
		return "x"
	case coef == "1":
		return fmt.Sprintf("x^{%d}", k)
	case k == 1:
		return coef + " x"
	default:
		return fmt.Sprintf("%s x^{%d}", coef, k)
	}
}

// latexFrac renders p/q coefficient strings with \frac.
func latexFrac(mag string) string {
	if p, q, ok := strings.Cut(mag, "/"); ok {
		return fmt.Sprintf("\\frac{%s}{%s}", p, q)
	}
	return mag
}
