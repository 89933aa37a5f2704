package ingest

import (
	"context"
	"fmt"
	"log"
	"time"
)

// FromURL fetches a job posting page, extracts the posting text, and
// cleans it. When useBrowser is true and the static fetch yields too
// little content, the page is re-rendered in a headless browser.
func FromURL(ctx context.Context, urlStr string, useBrowser bool, verbose bool) (string, error) {
	result, err := FetchURL(ctx, urlStr, nil)
	if err != nil {
		return "", fmt.Errorf("failed to fetch posting: %w", err)
	}
	if verbose {
		log.Printf("[INGEST] Fetched HTML: %d bytes", len(result.HTML))
	}

	textContent, err := ExtractMainText(result.HTML, JobPostingSelectors())
	if err != nil {
		return "", fmt.Errorf("failed to extract posting text: %w", err)
	}
	if verbose {
		log.Printf("[INGEST] Extracted text: %d chars", len(textContent))
	}

	if useBrowser && ShouldUseBrowser(textContent) {
		if verbose {
			log.Printf("[INGEST] Content too short (%d chars < %d), falling back to browser rendering",
				len(textContent), MinContentLength)
		}

		browserHTML, browserErr := RenderWithBrowser(ctx, urlStr, 30*time.Second, verbose)
		if browserErr != nil {
			if verbose {
				log.Printf("[INGEST] Browser rendering failed: %v, using HTTP content", browserErr)
			}
		} else if rendered, extractErr := ExtractMainText(browserHTML, JobPostingSelectors()); extractErr == nil {
			textContent = rendered
			if verbose {
				log.Printf("[INGEST] Browser extracted text: %d chars", len(textContent))
			}
		}
	}

	cleaned := CleanText(textContent)
	if err := ValidateJobText(cleaned); err != nil {
		return "", err
	}

	return cleaned, nil
}
