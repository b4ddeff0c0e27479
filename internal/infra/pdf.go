package infra

// pdf.go — kitchen ticket generation using go-pdf/fpdf.
// Produces a thermal-printer-sized ticket with the table, the waiter, each
// line item (quantity, product, notes) and the running total, saved to
// storagePath/ticket_{id}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/oscarmanceraa/KitchON/internal/model"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// TicketPath returns where the ticket for an order is (or will be) stored.
func TicketPath(storagePath string, ordenID uint) string {
	return filepath.Join(storagePath, fmt.Sprintf("ticket_%d.pdf", ordenID))
}

// GenerateTicketPDF renders the kitchen ticket for an order. The orden must
// carry its resolved graph (mesa, usuario with persona, line items with
// products). Returns the absolute path to the generated file.
func GenerateTicketPDF(orden *model.Orden, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	filePath := TicketPath(storagePath, orden.ID)

	// 74mm wide — close to thermal receipt paper
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: 74, Ht: 105},
	})
	pdf.SetMargins(4, 4, 4)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 8 // total margins = 8mm

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentW, 7, "KitchON", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, "Comanda de Cocina", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	// ── Order info ───────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(contentW, 5, fmt.Sprintf("Orden N° %d", orden.ID), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	if orden.Mesa != nil {
		pdf.CellFormat(contentW, 4, "Mesa: "+orden.Mesa.Nombre, "", 1, "L", false, 0, "")
	}
	if orden.Usuario != nil && orden.Usuario.Persona != nil {
		p := orden.Usuario.Persona
		pdf.CellFormat(contentW, 4, "Atiende: "+p.PrimerNombre+" "+p.PrimerApellido, "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(contentW, 4, orden.FechaCreacion.Format("02/01/2006  15:04"), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	// ── Separator ────────────────────────────────────────────────────────────
	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	// ── Items header ─────────────────────────────────────────────────────────
	col1 := contentW * 0.16 // qty
	col2 := contentW * 0.52 // product name
	col3 := contentW * 0.32 // subtotal

	pdf.SetFont("Helvetica", "B", 7)
	pdf.CellFormat(col1, 5, "Cant", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col2, 5, "Producto", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 5, "Subtotal", "B", 1, "R", false, 0, "")

	// ── Item rows ────────────────────────────────────────────────────────────
	total := decimal.Zero
	pdf.SetFont("Helvetica", "", 7)
	for i := range orden.Productos {
		item := &orden.Productos[i]
		nombre := ""
		subtotal := decimal.Zero
		if item.Producto != nil {
			nombre = item.Producto.Nombre
			subtotal = item.Producto.Valor.Mul(decimal.NewFromInt(int64(item.Cantidad)))
		}
		total = total.Add(subtotal)
		// Truncate on runes so accented names are never sliced mid-character.
		if r := []rune(nombre); len(r) > 22 {
			nombre = string(r[:21]) + "…"
		}
		pdf.CellFormat(col1, 5, fmt.Sprintf("x%d", item.Cantidad), "", 0, "C", false, 0, "")
		pdf.CellFormat(col2, 5, nombre, "", 0, "L", false, 0, "")
		pdf.CellFormat(col3, 5, "$"+subtotal.StringFixed(2), "", 1, "R", false, 0, "")

		if item.Notas != nil && *item.Notas != "" {
			pdf.SetFont("Helvetica", "I", 6)
			pdf.CellFormat(col1, 4, "", "", 0, "C", false, 0, "")
			pdf.CellFormat(col2+col3, 4, *item.Notas, "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 7)
		}
	}

	pdf.Ln(2)
	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	// ── Total ────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1+col2, 6, "TOTAL:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col3, 6, "$"+total.StringFixed(2), "", 1, "R", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
