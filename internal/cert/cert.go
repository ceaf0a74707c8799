// Package cert renders the completion certificate as a PNG. The core only
// supplies a display name and completion timestamp; everything else on the
// certificate is fixed layout.
package cert

import (
	"bytes"
	"fmt"
	"image/color"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/google/uuid"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Landscape A-series proportions.
const (
	width  = 1414
	height = 1000
)

const programName = "Moonbite Bakehouse New Hire Onboarding Program"

var (
	brandInk   = color.NRGBA{R: 0x1D, G: 0x4E, B: 0xD8, A: 0xFF}
	headingInk = color.NRGBA{R: 0x47, G: 0x55, B: 0x69, A: 0xFF}
	bodyInk    = color.NRGBA{R: 0x1E, G: 0x29, B: 0x3B, A: 0xFF}
	mutedInk   = color.NRGBA{R: 0x64, G: 0x74, B: 0x8B, A: 0xFF}
)

var (
	fontOnce    sync.Once
	regularFont *truetype.Font
	boldFont    *truetype.Font
	fontErr     error
)

// faces parses the embedded Go fonts once. A single-binary tool ships its
// own faces rather than resolving font files at runtime.
func faces() (*truetype.Font, *truetype.Font, error) {
	fontOnce.Do(func() {
		regularFont, fontErr = truetype.Parse(goregular.TTF)
		if fontErr != nil {
			return
		}
		boldFont, fontErr = truetype.Parse(gobold.TTF)
	})
	return regularFont, boldFont, fontErr
}

func face(f *truetype.Font, size float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{Size: size})
}

// NewSerial returns a certificate serial number.
func NewSerial() string {
	return uuid.NewString()
}

// Render draws the certificate for name, completed at completedAt, and
// returns the encoded PNG.
func Render(name string, completedAt time.Time, serial string) ([]byte, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("certificate: empty recipient name")
	}
	regular, bold, err := faces()
	if err != nil {
		return nil, fmt.Errorf("certificate: load fonts: %w", err)
	}

	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	// Double border: a heavy outer band and a thin inner rule.
	dc.SetColor(brandInk)
	dc.SetLineWidth(24)
	dc.DrawRectangle(12, 12, width-24, height-24)
	dc.Stroke()
	dc.SetLineWidth(2)
	dc.DrawRectangle(48, 48, width-96, height-96)
	dc.Stroke()

	cx := float64(width) / 2

	dc.SetColor(brandInk)
	dc.SetFontFace(face(bold, 40))
	dc.DrawStringAnchored("MOONBITE BAKEHOUSE", cx, 170, 0.5, 0.5)

	dc.SetColor(headingInk)
	dc.SetFontFace(face(bold, 30))
	dc.DrawStringAnchored("C E R T I F I C A T E   O F   C O M P L E T I O N", cx, 260, 0.5, 0.5)

	dc.SetColor(bodyInk)
	dc.SetFontFace(face(regular, 26))
	dc.DrawStringAnchored("This certifies that", cx, 360, 0.5, 0.5)

	dc.SetColor(brandInk)
	dc.SetFontFace(face(bold, 64))
	dc.DrawStringAnchored(name, cx, 460, 0.5, 0.5)

	dc.SetColor(bodyInk)
	dc.SetFontFace(face(regular, 26))
	dc.DrawStringAnchored("has successfully completed the", cx, 560, 0.5, 0.5)

	dc.SetColor(headingInk)
	dc.SetFontFace(face(bold, 34))
	dc.DrawStringAnchored(programName, cx, 630, 0.5, 0.5)

	// Divider above the footer block.
	dc.SetColor(mutedInk)
	dc.SetLineWidth(2)
	dc.DrawLine(cx-240, 760, cx+240, 760)
	dc.Stroke()

	dc.SetFontFace(face(regular, 22))
	dc.DrawStringAnchored("Completed on "+completedAt.Format("January 2, 2006"), cx, 800, 0.5, 0.5)
	dc.SetFontFace(face(regular, 16))
	dc.DrawStringAnchored("Certificate "+serial, cx, 850, 0.5, 0.5)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("certificate: encode: %w", err)
	}
	return buf.Bytes(), nil
}

// DefaultFilename builds the artifact filename for a recipient.
func DefaultFilename(name string) string {
	safe := strings.Join(strings.Fields(name), "_")
	return safe + "_Moonbite_Certificate.png"
}

// Export renders and writes the certificate to path.
func Export(path, name string, completedAt time.Time, serial string) error {
	png, err := Render(name, completedAt, serial)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, png, 0o644); err != nil {
		return fmt.Errorf("certificate: write %s: %w", path, err)
	}
	return nil
}
