package rendering

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPDFRenderer(t *testing.T) {
	r := NewPDFRenderer("/opt/chrome")
	assert.Equal(t, "/opt/chrome", r.ChromePath)
	assert.Equal(t, DefaultPDFTimeout, r.Timeout)
}

func TestPDFRenderer_RenderPDFNilProfile(t *testing.T) {
	_, err := NewPDFRenderer("").RenderPDF(context.Background(), nil)
	var renderErr *RenderError
	assert.ErrorAs(t, err, &renderErr)
}

func TestPDFRenderer_MissingBrowser(t *testing.T) {
	r := NewPDFRenderer("/nonexistent/chrome-binary")
	_, err := r.PDF(context.Background(), "<html><body>hi</body></html>")
	var browserErr *BrowserError
	assert.ErrorAs(t, err, &browserErr)
}
