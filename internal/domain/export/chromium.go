package export

import (
	"context"
	"fmt"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"golang.org/x/exp/slog"
)

// ChromiumEngine печатает HTML в PDF через headless Chromium
// (Page.printToPDF). Каждый вызов поднимает отдельный браузерный контекст.
type ChromiumEngine struct {
	log *slog.Logger
}

func NewChromiumEngine(log *slog.Logger) *ChromiumEngine {
	return &ChromiumEngine{
		log: log.With("component", "chromium_engine"),
	}
}

func (e *ChromiumEngine) Render(ctx context.Context, html string, opts Options) ([]byte, error) {
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, chromedp.DefaultExecAllocatorOptions[:]...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

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
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPaperWidth(opts.PageWidthIn).
				WithPaperHeight(opts.PageHeightIn).
				WithLandscape(opts.Landscape).
				WithMarginTop(opts.MarginIn).
				WithMarginBottom(opts.MarginIn).
				WithMarginLeft(opts.MarginIn).
				WithMarginRight(opts.MarginIn).
				WithScale(opts.Scale).
				WithPrintBackground(true).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = buf
			return nil
		}),
	)
	if err != nil {
		e.log.Error("chromium render failed", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrEngineFailed, err)
	}

	e.log.Debug("pdf rendered", "size_bytes", len(pdf))
	return pdf, nil
}
