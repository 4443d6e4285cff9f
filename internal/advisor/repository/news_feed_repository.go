package repository

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"crypto-advisor/internal/advisor/config"
	"crypto-advisor/internal/advisor/dto"
	"crypto-advisor/pkg/logger"
	"crypto-advisor/pkg/metrics"
	"crypto-advisor/pkg/utils"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"github.com/mauidude/go-readability"
	"github.com/mmcdole/gofeed"
)

const (
	providerRSS = "rss"

	maxSummaryRunes = 400
	userAgent       = "Mozilla/5.0 (compatible; crypto-advisor/1.0)"
)

// rssNewsRepository is an implementation of NewsFeedRepository using gofeed.
type rssNewsRepository struct {
	client        *http.Client
	logger        *logger.Logger
	fetchArticles bool
}

// NewRSSNewsRepository creates a new instance of rssNewsRepository.
func NewRSSNewsRepository(cfg *config.Config, log *logger.Logger) NewsFeedRepository {
	return &rssNewsRepository{
		client:        &http.Client{Timeout: cfg.News.Timeout},
		logger:        log,
		fetchArticles: cfg.News.FetchArticles,
	}
}

// FetchFeed parses feedURL and returns up to limit items, newest first.
// Sentiment is left empty for the caller to fill in.
func (r *rssNewsRepository) FetchFeed(ctx context.Context, feedURL string, limit int) (news []dto.CryptoNews, err error) {
	start := time.Now()
	defer func() {
		metrics.UpstreamCalls.WithLabelValues(providerRSS, metrics.Status(err)).Inc()
		metrics.UpstreamLatency.WithLabelValues(providerRSS).Observe(time.Since(start).Seconds())
	}()

	fp := gofeed.NewParser()
	fp.Client = r.client
	fp.UserAgent = userAgent
	feed, err := fp.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		r.logger.WarnContext(ctx, "Failed to parse RSS feed", logger.ErrorField(err), logger.StringField("url", feedURL))
		return nil, fmt.Errorf("failed to parse RSS feed: %w", err)
	}

	items := feed.Items
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].PublishedParsed == nil || items[j].PublishedParsed == nil {
			return items[j].PublishedParsed == nil && items[i].PublishedParsed != nil
		}
		return items[i].PublishedParsed.After(*items[j].PublishedParsed)
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	news = make([]dto.CryptoNews, 0, len(items))
	for _, item := range items {
		news = append(news, dto.CryptoNews{
			ID:          itemID(item),
			Title:       utils.SafeText(item.Title),
			URL:         item.Link,
			Source:      utils.SafeText(feed.Title),
			PublishedAt: publishedAt(item),
			Summary:     utils.Truncate(r.summarize(ctx, item), maxSummaryRunes),
		})
	}
	return news, nil
}

func itemID(item *gofeed.Item) string {
	key := item.GUID
	if key == "" {
		key = item.Link
	}
	if key == "" {
		key = item.Title
	}
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(key)).String()
}

func publishedAt(item *gofeed.Item) time.Time {
	if item.PublishedParsed != nil {
		return item.PublishedParsed.UTC()
	}
	if item.UpdatedParsed != nil {
		return item.UpdatedParsed.UTC()
	}
	return time.Time{}
}

// summarize prefers the feed description, then the embedded content, then the linked article.
func (r *rssNewsRepository) summarize(ctx context.Context, item *gofeed.Item) string {
	if text := htmlToText(item.Description); text != "" {
		return text
	}
	if item.Content != "" {
		if text, err := extractMainContent(item.Content); err == nil && text != "" {
			return text
		}
	}
	if !r.fetchArticles || item.Link == "" {
		return ""
	}

	text, err := r.fetchArticle(ctx, item.Link)
	if err != nil {
		r.logger.DebugContext(ctx, "Failed to fetch article", logger.ErrorField(err), logger.StringField("url", item.Link))
		return ""
	}
	return text
}

func (r *rssNewsRepository) fetchArticle(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request for news item: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch news content: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to fetch news content, status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}
	return extractMainContent(string(body))
}

// extractMainContent runs readability over an HTML page and returns its main text.
func extractMainContent(html string) (string, error) {
	doc, err := readability.NewDocument(html)
	if err != nil {
		return "", fmt.Errorf("failed to parse news content: %w", err)
	}
	return htmlToText(doc.Content()), nil
}

func htmlToText(html string) string {
	if strings.TrimSpace(html) == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader([]byte(html)))
	if err != nil {
		return utils.SafeText(html)
	}
	return utils.SafeText(doc.Text())
}
