package scraper

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"

	"CourseScout/pkg/catalog"
)

// The catalog page hydrates in discrete phases: subject list, result list,
// result rows, the collapsible sections toggle, and finally the terms
// panel. A single blanket wait cannot tell "slow network" from "no such
// course" from "course has no offerings", so each phase is its own stage
// with its own predicate and timeout, and each failure maps to its own
// outcome.
const (
	subjectListSelector      = ".subject-list"
	resultListSelector       = ".search-result-list"
	resultRowSelector        = ".search-result-list .result-row"
	firstResultTitleSelector = ".search-result-list .result-row:first-child .result-title"
	firstResultDescSelector  = ".search-result-list .result-row:first-child .result-description"
	sectionsToggleSelector   = ".search-result-list .result-row:first-child .sections-toggle"
	termsPanelSelector       = ".terms-sections-panel"
	termHeaderSelector       = ".terms-sections-panel .term-header"
)

const (
	searchListReadyTimeout     = 10 * time.Second
	firstResultRenderedTimeout = 60 * time.Second
	sectionsToggleTimeout      = 5 * time.Second
	termsPanelReadyTimeout     = 60 * time.Second
	termHeadersRenderedTimeout = 60 * time.Second
)

type stage struct {
	name    string
	timeout time.Duration
	action  chromedp.Action
}

// wait blocks until the stage's predicate holds or its budget expires.
// Failures come back as *catalog.RenderError tagged with the stage name so
// the orchestrator can map each one to a distinct outcome.
func (s stage) wait(parent context.Context) error {
	stageCtx, cancel := context.WithTimeout(parent, s.timeout)
	defer cancel()
	if err := chromedp.Run(stageCtx, s.action); err != nil {
		return &catalog.RenderError{Stage: s.name, Err: err}
	}
	return nil
}

func stageSearchListReady() stage {
	return stage{
		name:    "search_list_ready",
		timeout: searchListReadyTimeout,
		action: chromedp.Tasks{
			chromedp.WaitReady(subjectListSelector, chromedp.ByQuery),
			chromedp.WaitReady(resultListSelector, chromedp.ByQuery),
		},
	}
}

// stageFirstResultRendered guards against partially hydrated rows: the row
// element can exist before its title text does.
func stageFirstResultRendered() stage {
	return stage{
		name:    "first_result_rendered",
		timeout: firstResultRenderedTimeout,
		action:  pollNonEmptyText(firstResultTitleSelector),
	}
}

func stageSectionsToggleVisible() stage {
	return stage{
		name:    "sections_toggle_visible",
		timeout: sectionsToggleTimeout,
		action:  chromedp.WaitVisible(sectionsToggleSelector, chromedp.ByQuery),
	}
}

func stageTermsPanelReady() stage {
	return stage{
		name:    "terms_panel_ready",
		timeout: termsPanelReadyTimeout,
		action:  chromedp.WaitReady(termsPanelSelector, chromedp.ByQuery),
	}
}

func stageTermHeadersRendered() stage {
	return stage{
		name:    "term_headers_rendered",
		timeout: termHeadersRenderedTimeout,
		action:  pollAnyNonEmptyText(termHeaderSelector),
	}
}

func pollNonEmptyText(selector string) chromedp.Action {
	expression := fmt.Sprintf(
		`(() => { const el = document.querySelector(%q); return !!el && el.textContent.trim().length > 0; })()`,
		selector,
	)
	return chromedp.ActionFunc(func(ctx context.Context) error {
		var ready bool
		return chromedp.Poll(expression, &ready).Do(ctx)
	})
}

func pollAnyNonEmptyText(selector string) chromedp.Action {
	expression := fmt.Sprintf(
		`(() => [...document.querySelectorAll(%q)].some(el => el.textContent.trim().length > 0))()`,
		selector,
	)
	return chromedp.ActionFunc(func(ctx context.Context) error {
		var ready bool
		return chromedp.Poll(expression, &ready).Do(ctx)
	})
}
