// README: Downloadable packing checklist (plain text and PDF).
package export

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/phpdave11/gofpdf"
)

// PackingListText renders one checklist item per line.
func PackingListText(items []string) []byte {
	var b bytes.Buffer
	for _, item := range items {
		if item = strings.TrimSpace(item); item == "" {
			continue
		}
		fmt.Fprintf(&b, "[ ] %s\n", item)
	}
	return b.Bytes()
}

// PackingListPDF writes an A4 checklist with a title and one checkbox per item.
func PackingListPDF(w io.Writer, title string, items []string) error {
	pdf, _ := packingListDoc(title, items)
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render packing list pdf: %w", err)
	}
	return nil
}

// packingListDoc lays out the checklist and reports how many items it wrote.
func packingListDoc(title string, items []string) (*gofpdf.Fpdf, int) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(title, true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, tr(title), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 12)
	const box = 4.0
	written := 0
	for _, item := range items {
		if item = strings.TrimSpace(item); item == "" {
			continue
		}
		x, y := pdf.GetXY()
		pdf.Rect(x, y+2, box, box, "D")
		pdf.SetX(x + box + 3)
		pdf.MultiCell(0, 8, tr(item), "", "L", false)
		written++
	}
	if written == 0 {
		pdf.CellFormat(0, 8, "No items.", "", 1, "L", false, 0, "")
	}
	return pdf, written
}

// Filename builds a download name such as "packing-list-kyoto-japan.pdf".
func Filename(location, ext string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(location) {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		return "packing-list." + ext
	}
	return "packing-list-" + slug + "." + ext
}
