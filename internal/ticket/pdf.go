package ticket

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"
	qrcode "github.com/skip2/go-qrcode"

	"parking-bot/internal/models"
)

const timeLayout = "Jan 2, 2006 at 3:04 PM"

// Filename derives the download name from the booking id prefix.
func Filename(bookingID string) string {
	prefix := bookingID
	if len(prefix) > 8 {
		prefix = prefix[:8]
	}
	return "pms-ticket-" + prefix + ".pdf"
}

// Render produces the ticket document. Purely local formatting; the priced
// fields come from the fetched ticket as-is.
func Render(t models.Ticket, currency string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header band
	pdf.SetFillColor(31, 41, 55)
	pdf.Rect(0, 0, 210, 20, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "B", 16)
	pdf.SetXY(10, 7)
	pdf.CellFormat(0, 8, "PMS - PARKING TICKET", "", 1, "L", false, 0, "")

	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Arial", "", 14)
	pdf.SetXY(10, 26)
	pdf.CellFormat(0, 8, "Ticket Summary", "", 1, "L", false, 0, "")

	pdf.SetDrawColor(200, 200, 200)
	pdf.Line(10, 36, 200, 36)

	rows := []struct {
		label string
		value string
	}{
		{"Booking ID", t.BookingID},
		{"Slot Number", t.SlotNumber},
		{"Vehicle Type", string(t.VehicleType)},
		{"Location", t.Location},
		{"Start Time", t.StartTime.Format(timeLayout)},
		{"End Time", t.EndTime.Format(timeLayout)},
		{"Duration", fmt.Sprintf("%g hour(s)", t.DurationHours)},
		{"Rate (per hour)", fmt.Sprintf("%s %g", currency, t.RatePerHour)},
	}

	y := 44.0
	pdf.SetFontSize(12)
	for _, row := range rows {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetXY(10, y)
		pdf.CellFormat(60, 8, row.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 12)
		pdf.SetXY(70, y)
		pdf.CellFormat(0, 8, row.value, "", 1, "L", false, 0, "")
		y += 10
	}

	// Highlighted total
	pdf.SetFillColor(243, 244, 246)
	pdf.Rect(10, y+5, 190, 15, "F")
	pdf.SetFont("Arial", "B", 12)
	pdf.SetXY(15, y+9)
	pdf.CellFormat(50, 8, "Total Amount:", "", 0, "L", false, 0, "")
	pdf.SetTextColor(37, 99, 235)
	pdf.SetXY(70, y+9)
	pdf.CellFormat(0, 8, fmt.Sprintf("%s %g", currency, t.Total), "", 1, "L", false, 0, "")

	// QR with the booking id, for gate scanners
	if qr, err := qrcode.Encode(t.BookingID, qrcode.Medium, 128); err == nil {
		opts := gofpdf.ImageOptions{ImageType: "png"}
		pdf.RegisterImageOptionsReader("qr", opts, bytes.NewReader(qr))
		pdf.ImageOptions("qr", 160, 44, 35, 35, false, opts, 0, "")
	}

	// Footer
	pdf.SetTextColor(107, 114, 128)
	pdf.SetFont("Arial", "", 12)
	pdf.SetXY(10, y+35)
	pdf.CellFormat(0, 8, "Please keep this ticket safe and present it when needed.", "", 1, "L", false, 0, "")
	pdf.SetXY(10, y+43)
	pdf.CellFormat(0, 8, "Thank you for using PMS!", "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
