package bridge

import (
	"context"
	"errors"
	"fmt"
)

// CloseResult is the close_browser response.
type CloseResult struct {
	Success bool   `json:"success"`
	Result  string `json:"result"`
}

// CloseBrowser asks the Web UI to close its global browser instance.
func (b *Bridge) CloseBrowser(ctx context.Context) (CloseResult, error) {
	if _, err := b.Gradio.Predict(ctx, closeGlobalBrowser); err != nil {
		return CloseResult{}, fmt.Errorf("bridge: close browser: %w", err)
	}

	return CloseResult{Success: true, Result: "Browser closed successfully"}, nil
}

// ScreenshotResult is the get_screenshot response. The screenshot payload
// is passed through untouched in whatever shape the Web UI returns it.
type ScreenshotResult struct {
	Success    bool `json:"success"`
	Screenshot any  `json:"screenshot"`
}

// Screenshot fetches the current browser screenshot from the Web UI.
func (b *Bridge) Screenshot(ctx context.Context) (ScreenshotResult, error) {
	out, err := b.Gradio.Predict(ctx, getScreenshot)
	if err != nil {
		return ScreenshotResult{}, fmt.Errorf("bridge: get screenshot: %w", err)
	}

	if len(out) == 0 {
		return ScreenshotResult{}, errors.New("no screenshot returned")
	}

	return ScreenshotResult{Success: true, Screenshot: out[0]}, nil
}
