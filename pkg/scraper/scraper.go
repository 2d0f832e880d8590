// Package scraper drives a headless Chrome through the catalog's
// asynchronous rendering sequence and extracts one course's sections.
package scraper

import (
	"context"
	"fmt"
	"net/url"
	"os/exec"
	"time"

	"github.com/chromedp/chromedp"
	"go.uber.org/zap"

	"CourseScout/pkg/catalog"
	"CourseScout/pkg/log"
)

var chromeExecutablePath = func() string {
	if path, _ := exec.LookPath("google-chrome"); path != "" {
		return path
	}
	if path, _ := exec.LookPath("chromium"); path != "" {
		return path
	}
	return "/Applications/Google Chrome.app/Contents/MacOS/Google Chrome"
}()

// Browser owns the process-wide Chrome instance. It is created once at
// startup and closed once at shutdown; every request opens its own session
// off it, so no DOM state is shared across requests.
type Browser struct {
	browserContext  context.Context
	browserCancel   context.CancelFunc
	allocatorCancel context.CancelFunc
}

func NewBrowser(parent context.Context, execPath string, headless bool) (*Browser, error) {
	if execPath == "" {
		execPath = chromeExecutablePath
	}
	allocatorContext, allocatorCancel := chromedp.NewExecAllocator(
		parent,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.ExecPath(execPath),
			chromedp.Flag("headless", headless),
			chromedp.Flag("disable-gpu", true),
		)...,
	)
	browserContext, browserCancel := chromedp.NewContext(allocatorContext)
	if err := chromedp.Run(browserContext); err != nil {
		browserCancel()
		allocatorCancel()
		return nil, fmt.Errorf("starting chrome: %w", err)
	}
	return &Browser{
		browserContext:  browserContext,
		browserCancel:   browserCancel,
		allocatorCancel: allocatorCancel,
	}, nil
}

func (b *Browser) Close() {
	b.browserCancel()
	b.allocatorCancel()
}

// CourseScraper runs the extraction pipeline against a shared Browser.
type CourseScraper struct {
	browser           *Browser
	searchURL         string
	navigationTimeout time.Duration
	windows           []catalog.TermWindow
}

func New(browser *Browser, searchURL string, navigationTimeout time.Duration, windows []catalog.TermWindow) *CourseScraper {
	return &CourseScraper{
		browser:           browser,
		searchURL:         searchURL,
		navigationTimeout: navigationTimeout,
		windows:           windows,
	}
}

// SearchCourse resolves one query end to end: navigate, advance the page
// through its rendering stages, disambiguate the course, scrape and
// classify its sections. The request-scoped session is released on every
// exit path, including panics, which are recovered into a generic error.
func (s *CourseScraper) SearchCourse(ctx context.Context, query string) (result catalog.Result, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			log.L().Error("search_panic", zap.Any("cause", recovered))
			err = fmt.Errorf("course extraction failed: %v", recovered)
		}
	}()

	// The session hangs off the shared browser context, not the request
	// context: a stage wait runs to completion or timeout even if the
	// client disconnects mid-wait.
	sessionContext, releaseSession := chromedp.NewContext(s.browser.browserContext)
	defer releaseSession()

	searchURL := fmt.Sprintf(s.searchURL, url.QueryEscape(query))
	log.L().Info("search_start", zap.String("query", query), zap.String("url", searchURL))

	navigationContext, navigationCancel := context.WithTimeout(sessionContext, s.navigationTimeout)
	defer navigationCancel()
	if navErr := chromedp.Run(navigationContext, chromedp.Navigate(searchURL)); navErr != nil {
		return catalog.Result{}, &catalog.RenderError{Stage: "navigate", Err: navErr}
	}

	// The search list never rendering is indistinguishable from the search
	// yielding nothing, so both land on the same outcome.
	if stageErr := stageSearchListReady().wait(sessionContext); stageErr != nil {
		log.L().Info("search_list_missing", zap.String("query", query))
		return catalog.Result{}, catalog.ErrNoResults
	}

	var resultCount int
	countScript := fmt.Sprintf(`document.querySelectorAll(%q).length`, resultRowSelector)
	if runErr := chromedp.Run(sessionContext, chromedp.Evaluate(countScript, &resultCount)); runErr != nil {
		return catalog.Result{}, runErr
	}
	if resultCount == 0 {
		return catalog.Result{}, catalog.ErrNoResults
	}

	if stageErr := stageFirstResultRendered().wait(sessionContext); stageErr != nil {
		return catalog.Result{}, stageErr
	}

	course, resolveErr := s.resolveCourse(sessionContext, query)
	if resolveErr != nil {
		return catalog.Result{}, resolveErr
	}

	// No toggle means the course has no section data. That is a complete
	// answer, not a failure: the record comes back with an empty term list.
	if stageErr := stageSectionsToggleVisible().wait(sessionContext); stageErr != nil {
		log.L().Info("sections_toggle_absent", zap.String("course", course.Name))
		return catalog.Assemble(course, nil, s.windows), nil
	}
	if clickErr := chromedp.Run(sessionContext, chromedp.Click(sectionsToggleSelector, chromedp.ByQuery)); clickErr != nil {
		return catalog.Result{}, &catalog.RenderError{Stage: "sections_toggle_click", Err: clickErr}
	}
	if stageErr := stageTermsPanelReady().wait(sessionContext); stageErr != nil {
		return catalog.Result{}, stageErr
	}
	if stageErr := stageTermHeadersRendered().wait(sessionContext); stageErr != nil {
		return catalog.Result{}, stageErr
	}

	var panelHTML string
	if runErr := chromedp.Run(sessionContext, chromedp.OuterHTML(termsPanelSelector, &panelHTML, chromedp.ByQuery)); runErr != nil {
		return catalog.Result{}, runErr
	}
	rows, extractErr := catalog.ExtractSections(panelHTML)
	if extractErr != nil {
		return catalog.Result{}, extractErr
	}
	log.L().Info("sections_extracted", zap.String("course", course.Name), zap.Int("rows", len(rows)))

	return catalog.Assemble(course, rows, s.windows), nil
}

// resolveCourse reads the top result row and checks its course code
// against the query. The search page returns a superset of fuzzy keyword
// matches, so only an exact prefix+number match counts.
func (s *CourseScraper) resolveCourse(sessionContext context.Context, query string) (catalog.CourseRecord, error) {
	var title, description string
	descriptionScript := fmt.Sprintf(
		`(() => { const el = document.querySelector(%q); return el ? el.textContent.trim() : ''; })()`,
		firstResultDescSelector,
	)
	if runErr := chromedp.Run(sessionContext,
		chromedp.Text(firstResultTitleSelector, &title, chromedp.ByQuery),
		chromedp.Evaluate(descriptionScript, &description),
	); runErr != nil {
		return catalog.CourseRecord{}, runErr
	}

	titleCode, titleOK := catalog.ParseTitleCode(title)
	queryCode, queryOK := catalog.ParseQueryCode(query)
	if !titleOK || !queryOK || !titleCode.Matches(queryCode) {
		log.L().Info("course_mismatch", zap.String("query", query), zap.String("title", title))
		return catalog.CourseRecord{}, catalog.ErrNoExactMatch
	}
	return catalog.CourseRecord{Name: title, Description: description}, nil
}
