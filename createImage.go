// createImage.go
package main

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image/jpeg"
	"image/png"
	"io"
	"strings"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/buffos/go-tracker/internal/logger"
)

// imageOptions controls raster export.
type imageOptions struct {
	Quality int           // JPEG quality, 1-100
	Timeout time.Duration // for the whole browser session
	Log     *logger.Logger
}

// generateImage rasterizes an SVG document with a headless browser and
// writes it as png or jpg.
func generateImage(ctx context.Context, svgDoc, format string, w io.Writer, opts imageOptions) error {
	log := opts.Log
	if log == nil {
		log = logger.Global()
	}

	// The browser loads the SVG from a data URI, no temp file needed.
	dataURI := "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svgDoc))

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:], chromedp.Headless)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		browserCtx, cancel = context.WithTimeout(browserCtx, opts.Timeout)
		defer cancel()
	}

	var shot []byte
	tasks := chromedp.Tasks{
		chromedp.Navigate(dataURI),
		chromedp.WaitVisible(`svg`, chromedp.ByQuery),
		chromedp.Screenshot(`svg`, &shot, chromedp.ByQuery),
	}
	log.Debug("running browser screenshot", logger.Fields{"bytes": len(svgDoc)})
	if err := chromedp.Run(browserCtx, tasks); err != nil {
		return fmt.Errorf("chromedp execution failed: %w", err)
	}
	if len(shot) == 0 {
		return fmt.Errorf("screenshot buffer is empty, screenshot failed")
	}

	switch format {
	case "png":
		if _, err := io.Copy(w, bytes.NewReader(shot)); err != nil {
			return fmt.Errorf("failed to write PNG screenshot data: %w", err)
		}
	case "jpg", "jpeg":
		img, err := png.Decode(bytes.NewReader(shot))
		if err != nil {
			return fmt.Errorf("failed to decode PNG screenshot: %w", err)
		}
		quality := opts.Quality
		if quality <= 0 || quality > 100 {
			quality = jpeg.DefaultQuality
		}
		if err := jpeg.Encode(w, img, &jpeg.Options{Quality: quality}); err != nil {
			return fmt.Errorf("failed to encode JPEG: %w", err)
		}
	default:
		return fmt.Errorf("internal error: unsupported image format '%s'", format)
	}

	log.Info("image encoded", logger.Fields{"format": strings.ToUpper(format), "bytes": len(shot)})
	return nil
}
