package shoppinglist

import (
	"fmt"
	"io"
	"strings"

	"github.com/phpdave11/gofpdf"
)

const header = "Shopping list:"

func (i Item) String() string {
	return fmt.Sprintf("%s - %d %s", i.Name, i.Amount, i.MeasurementUnit)
}

// Text renders the header and one line per item.
func (r *Report) Text() string {
	var b strings.Builder
	b.WriteString(header)
	b.WriteByte('\n')
	for _, item := range r.Items {
		b.WriteString(item.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// PDF writes the same lines as a single A4 document.
func (r *Report) PDF(w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(header, true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, header)
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	for n, item := range r.Items {
		pdf.Cell(0, 8, tr(fmt.Sprintf("%d. %s", n+1, item.String())))
		pdf.Ln(8)
	}
	return pdf.Output(w)
}
