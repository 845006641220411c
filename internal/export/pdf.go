package export

import (
	"context"
	"encoding/base64"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// DefaultPDFTimeout bounds a single print run. Chrome startup dominates.
const DefaultPDFTimeout = 30 * time.Second

// PrintPDF renders the report HTML to PDF bytes in a headless browser.
// Requires Chrome/Chromium to be installed on the system.
func PrintPDF(ctx context.Context, html string, timeout time.Duration) ([]byte, error) {
	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	// Navigating to a data URL avoids touching the filesystem for a
	// document the browser only needs once.
	dataURL := "data:text/html;base64," + base64.StdEncoding.EncodeToString([]byte(html))

	var pdf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(dataURL),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPreferCSSPageSize(true).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, &PDFError{
			Message: "headless print failed",
			Cause:   err,
		}
	}
	return pdf, nil
}

// PrintPDFSimple prints with the default timeout.
func PrintPDFSimple(ctx context.Context, html string) ([]byte, error) {
	return PrintPDF(ctx, html, DefaultPDFTimeout)
}
