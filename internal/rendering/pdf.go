package rendering

import (
	"context"
	"log"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/jonathan/resume-parser/internal/types"
)

// DefaultPDFTimeout bounds a single PDF render.
const DefaultPDFTimeout = 30 * time.Second

// PDFRenderer prints HTML to PDF with headless Chrome.
type PDFRenderer struct {
	// ChromePath overrides the browser binary. Empty uses the chromedp lookup.
	ChromePath string
	Timeout    time.Duration
	Verbose    bool
}

// NewPDFRenderer creates a renderer using chromePath, or the default browser when empty.
func NewPDFRenderer(chromePath string) *PDFRenderer {
	return &PDFRenderer{ChromePath: chromePath, Timeout: DefaultPDFTimeout}
}

// PDF prints html on US letter paper with backgrounds.
// Requires Chrome/Chromium to be installed on the system.
func (r *PDFRenderer) PDF(ctx context.Context, html string) ([]byte, error) {
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultPDFTimeout
	}
	if r.Verbose {
		log.Printf("[render] starting headless browser for %d bytes of HTML", len(html))
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if r.ChromePath != "" {
		opts = append(opts, chromedp.ExecPath(r.ChromePath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			data, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.5).
				WithPaperHeight(11).
				WithMarginTop(0.4).
				WithMarginBottom(0.4).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = data
			return nil
		}),
	)
	if err != nil {
		return nil, &BrowserError{Message: "failed to print PDF", Cause: err}
	}

	if r.Verbose {
		log.Printf("[render] printed PDF: %d bytes", len(pdf))
	}
	return pdf, nil
}

// RenderPDF renders profile to HTML and prints it.
func (r *PDFRenderer) RenderPDF(ctx context.Context, profile *types.PortfolioProfile) ([]byte, error) {
	html, err := RenderHTML(profile)
	if err != nil {
		return nil, err
	}
	return r.PDF(ctx, html)
}
