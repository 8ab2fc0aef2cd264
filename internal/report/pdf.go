package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"
	"github.com/google/uuid"
)

const (
	DefaultFileName   = "psyops_results.pdf"
	DefaultFontFamily = "LiberationSans"

	coreFont   = "Helvetica"
	lineHeight = 7.0
)

// Options controls PDF rendering.
type Options struct {
	// FontDir holds {FontFamily}-Regular.ttf and {FontFamily}-Bold.ttf.
	// Empty uses the built-in Helvetica with cp1252 text.
	FontDir    string
	FontFamily string

	// ID is stamped into the document subject; generated when empty.
	ID string

	Uncompressed bool
}

// WritePDF renders doc to path. The file appears only once fully written.
func WritePDF(doc Document, path string, opts Options) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(!opts.Uncompressed)

	id := opts.ID
	if id == "" {
		id = uuid.NewString()
	}
	pdf.SetTitle(DocumentTitle, true)
	pdf.SetSubject("assessment "+id, true)
	pdf.SetCreator("psyops", true)
	pdf.SetCreationDate(doc.GeneratedAt)

	family, tr, err := loadFonts(pdf, opts)
	if err != nil {
		return err
	}

	line := func(s string) {
		pdf.CellFormat(0, lineHeight, tr(s), "", 1, "L", false, 0, "")
	}

	pdf.AddPage()
	pdf.SetFont(family, "B", 20)
	pdf.CellFormat(0, 12, tr(doc.Title), "", 1, "L", false, 0, "")
	pdf.SetFont(family, "", 12)
	line(doc.GeneratedLine())
	pdf.Ln(lineHeight)
	for _, it := range doc.Items {
		line(it.Line())
	}
	pdf.Ln(lineHeight)
	line(doc.TotalLine())
	line(doc.InterpretationLine())

	if pdf.Err() {
		return fmt.Errorf("%w: %w", ErrWrite, pdf.Error())
	}
	return writeFile(pdf, path)
}

func loadFonts(pdf *fpdf.Fpdf, opts Options) (string, func(string) string, error) {
	if opts.FontDir == "" {
		return coreFont, pdf.UnicodeTranslatorFromDescriptor(""), nil
	}
	family := opts.FontFamily
	if family == "" {
		family = DefaultFontFamily
	}
	for _, face := range []struct{ style, suffix string }{{"", "Regular"}, {"B", "Bold"}} {
		data, err := os.ReadFile(filepath.Join(opts.FontDir, family+"-"+face.suffix+".ttf"))
		if err != nil {
			return "", nil, fmt.Errorf("%w: %w", ErrFontLoad, err)
		}
		pdf.AddUTF8FontFromBytes(family, face.style, data)
		if pdf.Err() {
			return "", nil, fmt.Errorf("%w: %s %s: %w", ErrFontLoad, family, face.suffix, pdf.Error())
		}
	}
	return family, func(s string) string { return s }, nil
}

func writeFile(pdf *fpdf.Fpdf, path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".psyops-*.pdf")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	defer os.Remove(tmp.Name())

	if err := pdf.Output(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}
