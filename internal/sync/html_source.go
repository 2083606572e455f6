// Lottopick - Lotto Number Statistics and Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/lottopick

package sync

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/tomtom215/lottopick/internal/config"
	"github.com/tomtom215/lottopick/internal/models"
)

const (
	// latestRoundSelector locates the "N회" round label on the results page.
	latestRoundSelector = "div.win_result h4 strong"

	// ballSelector locates the numbered balls; six winning numbers then the bonus.
	ballSelector = "div.win_result span.ball_645"

	// roundParam selects a specific round on the results page.
	roundParam = "drwNo"
)

// digitRun matches one run of ASCII digits in the round label.
var digitRun = regexp.MustCompile(`[0-9]+`)

// maxErrorBodySize limits the amount of response body read for error reporting
const maxErrorBodySize = 4 * 1024

// readBodyForError reads a bounded prefix of the body for diagnostics.
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("\n... (truncated)")...)
	}
	return body
}

// HTTPSource scrapes the official results page.
type HTTPSource struct {
	baseURL   *url.URL
	client    *http.Client
	userAgent string
}

// NewHTTPSource creates a source for cfg.URL with cfg.Timeout applied to every request.
func NewHTTPSource(cfg *config.SourceConfig) (*HTTPSource, error) {
	u, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse source url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("source url %q must be absolute", cfg.URL)
	}

	return &HTTPSource{
		baseURL: u,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		userAgent: cfg.UserAgent,
	}, nil
}

// RoundURL returns the page URL for round.
func (s *HTTPSource) RoundURL(round int) string {
	u := *s.baseURL
	q := u.Query()
	q.Set(roundParam, strconv.Itoa(round))
	u.RawQuery = q.Encode()
	return u.String()
}

// LatestRound reads the current round label from the base page.
func (s *HTTPSource) LatestRound(ctx context.Context) (int, error) {
	doc, err := s.getDocument(ctx, s.baseURL.String())
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}

	label := strings.TrimSpace(doc.Find(latestRoundSelector).First().Text())
	return parseRoundLabel(label)
}

// parseRoundLabel extracts the round from a label such as "1102회". The label
// must hold exactly one run of digits in [1, MaxRound].
func parseRoundLabel(label string) (int, error) {
	runs := digitRun.FindAllString(label, -1)
	switch len(runs) {
	case 0:
		return 0, fmt.Errorf("%w: %w: no round number in %q", ErrSourceUnavailable, ErrMalformedPage, label)
	case 1:
	default:
		return 0, fmt.Errorf("%w: %w: ambiguous round label %q", ErrSourceUnavailable, ErrMalformedPage, label)
	}

	round, err := strconv.Atoi(runs[0])
	if err != nil || round < 1 || round > MaxRound {
		return 0, fmt.Errorf("%w: %w: invalid round label %q", ErrSourceUnavailable, ErrMalformedPage, label)
	}
	return round, nil
}

// FetchRound reads the winning numbers of round. Pages with fewer than
// models.BallCount balls are treated as missing.
func (s *HTTPSource) FetchRound(ctx context.Context, round int) (models.Draw, error) {
	doc, err := s.getDocument(ctx, s.RoundURL(round))
	if err != nil {
		return models.Draw{}, fmt.Errorf("%w: round %d: %w", ErrFetchFailed, round, err)
	}

	balls := doc.Find(ballSelector)
	if balls.Length() < models.BallCount {
		return models.Draw{}, fmt.Errorf("%w: round %d: %w: found %d balls, want %d",
			ErrFetchFailed, round, ErrMalformedPage, balls.Length(), models.BallCount)
	}

	numbers := make([]int, 0, models.DrawSize)
	var parseErr error
	balls.Slice(0, models.DrawSize).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		n, convErr := strconv.Atoi(strings.TrimSpace(sel.Text()))
		if convErr != nil {
			parseErr = fmt.Errorf("ball %q is not a number", sel.Text())
			return false
		}
		numbers = append(numbers, n)
		return true
	})
	if parseErr != nil {
		return models.Draw{}, fmt.Errorf("%w: round %d: %w: %w", ErrFetchFailed, round, ErrMalformedPage, parseErr)
	}

	draw, err := models.NewDraw(numbers)
	if err != nil {
		return models.Draw{}, fmt.Errorf("%w: round %d: %w", ErrFetchFailed, round, err)
	}
	return draw, nil
}

func (s *HTTPSource) getDocument(ctx context.Context, rawURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body := readBodyForError(resp.Body)
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}
	return doc, nil
}
