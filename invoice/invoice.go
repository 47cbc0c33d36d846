// Package invoice renders one sale to the store's paginated PDF invoice:
// store header, invoice number and timestamps, customer, the product line,
// the total amount and the decorative paid stamp.
//
// Rendering failures propagate to the caller; there are no retries.
package invoice

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/kolocmil/store"
)

// Store identity printed on every invoice.
const (
	storeName = "KoloCmil Store"
	storeCity = "Yaounde, Cameroun"
)

var whitespace = regexp.MustCompile(`\s+`)

// Filename returns the deterministic artifact name for a sale:
// Invoice_<invoiceNumber>_<customerName with whitespace replaced by underscores>.pdf
func Filename(s store.Sale) string {
	customer := whitespace.ReplaceAllString(s.CustomerName, "_")
	return fmt.Sprintf("Invoice_%s_%s.pdf", s.InvoiceNumber, customer)
}

// Save renders the invoice into dir under its deterministic filename and
// returns the full path of the written file.
func Save(dir string, s store.Sale) (string, error) {
	path := filepath.Join(dir, Filename(s))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("could not create invoice file %q: %w", path, err)
	}
	if err := Render(f, s); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("could not write invoice file %q: %w", path, err)
	}
	return path, nil
}

// Render draws the invoice document for one sale and writes the PDF to w.
func Render(w io.Writer, s store.Sale) error {
	const (
		pageWidth = 210 // A4 portrait, in mm
		center    = pageWidth / 2
	)
	// Palette of the legacy invoice.
	var (
		primary   = [3]int{41, 128, 185} // blue
		secondary = [3]int{52, 73, 94}   // dark gray
		accent    = [3]int{46, 204, 113} // green
		stampRed  = [3]int{220, 80, 80}
	)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	// Header band with the store identity.
	pdf.SetFillColor(primary[0], primary[1], primary[2])
	pdf.Rect(0, 0, pageWidth, 40, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 26)
	textCentered(pdf, center, 22, storeName)
	pdf.SetFont("Helvetica", "", 11)
	textCentered(pdf, center, 32, storeCity)

	// Invoice title.
	pdf.SetTextColor(secondary[0], secondary[1], secondary[2])
	pdf.SetFont("Helvetica", "B", 20)
	pdf.Text(20, 55, "FACTURE")

	// Invoice number and timestamps box.
	pdf.SetFillColor(245, 245, 245)
	pdf.Rect(120, 45, 70, 25, "F")
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Text(125, 53, "Facture N\xb0:")
	pdf.Text(125, 60, "Date:")
	pdf.Text(125, 67, "Heure:")
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(150, 53, s.InvoiceNumber)
	pdf.Text(150, 60, s.DateFormatted)
	pdf.Text(150, 67, s.TimeFormatted)

	// Customer section.
	banner(pdf, primary, 80, "INFORMATIONS CLIENT")
	pdf.SetTextColor(secondary[0], secondary[1], secondary[2])
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Text(25, 98, "Nom du Client:")
	pdf.SetFont("Helvetica", "", 11)
	pdf.Text(70, 98, s.CustomerName)

	// Product section with a single-line table.
	banner(pdf, primary, 110, "DETAILS DU PRODUIT")
	pdf.SetFillColor(240, 240, 240)
	pdf.Rect(20, 125, 170, 10, "F")
	pdf.SetTextColor(secondary[0], secondary[1], secondary[2])
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Text(25, 131, "Nom du Produit")
	pdf.Text(80, 131, "Categorie")
	pdf.Text(120, 131, "Prix Unitaire")
	pdf.Text(165, 131, "Qte")
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(25, 143, s.ProductName)
	pdf.Text(80, 143, s.Category)
	pdf.Text(120, 143, s.UnitPrice.String())
	pdf.Text(165, 143, fmt.Sprintf("%d", s.Quantity))
	pdf.SetDrawColor(200, 200, 200)
	pdf.Line(20, 150, 190, 150)

	// Payment summary and total amount box.
	banner(pdf, accent, 160, "RESUME DU PAIEMENT")
	pdf.SetFillColor(250, 250, 250)
	pdf.Rect(120, 175, 70, 15, "F")
	pdf.SetDrawColor(accent[0], accent[1], accent[2])
	pdf.SetLineWidth(1)
	pdf.Rect(120, 175, 70, 15, "D")
	pdf.SetTextColor(secondary[0], secondary[1], secondary[2])
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Text(125, 183, "MONTANT TOTAL:")
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(accent[0], accent[1], accent[2])
	pdf.Text(125, 188, s.TotalAmount.String())

	// Translucent circular "PAYE" stamp below the total.
	const (
		stampX      = 155.0
		stampY      = 198.0
		stampRadius = 16.0
		stampAngle  = -15.0
	)
	pdf.SetAlpha(0.25, "Normal")
	pdf.SetDrawColor(stampRed[0], stampRed[1], stampRed[2])
	pdf.SetLineWidth(2.5)
	pdf.Circle(stampX, stampY, stampRadius, "D")
	pdf.SetLineWidth(1.2)
	pdf.Circle(stampX, stampY, stampRadius-3, "D")
	pdf.SetTextColor(stampRed[0], stampRed[1], stampRed[2])
	pdf.SetFont("Helvetica", "B", 16)
	pdf.TransformBegin()
	pdf.TransformRotate(stampAngle, stampX, stampY)
	textCentered(pdf, stampX, stampY+3, "PAYE")
	pdf.TransformEnd()
	pdf.SetAlpha(1, "Normal")

	// Footer.
	pdf.SetDrawColor(primary[0], primary[1], primary[2])
	pdf.SetLineWidth(0.5)
	pdf.Line(20, 210, 190, 210)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetFont("Helvetica", "I", 10)
	textCentered(pdf, center, 220, "Merci pour votre confiance!")
	pdf.SetFont("Helvetica", "", 8)
	textCentered(pdf, center, 230, storeName+" - "+storeCity)
	textCentered(pdf, center, 235, "Genere le: "+time.Now().Format("02/01/2006 15:04:05"))

	// Page border.
	pdf.SetDrawColor(primary[0], primary[1], primary[2])
	pdf.SetLineWidth(1)
	pdf.Rect(15, 15, 180, 267, "D")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("could not render invoice %s: %w", s.InvoiceNumber, err)
	}
	return nil
}

// banner draws a colored section header bar at the given y.
func banner(pdf *fpdf.Fpdf, color [3]int, y float64, title string) {
	pdf.SetFillColor(color[0], color[1], color[2])
	pdf.Rect(20, y, 170, 8, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(25, y+6, title)
}

// textCentered places text with its middle at x, baseline at y.
func textCentered(pdf *fpdf.Fpdf, x, y float64, text string) {
	pdf.Text(x-pdf.GetStringWidth(text)/2, y, text)
}
