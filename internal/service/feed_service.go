//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
	"time"

	"guestbook/internal/network"
	"guestbook/internal/repository"
	"guestbook/pkg/logger"
	"guestbook/pkg/sanitizer"
)

// RSS is an RSS 2.0 document.
type RSS struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel RSSChannel `xml:"channel"`
}

type RSSChannel struct {
	Title         string    `xml:"title"`
	Link          string    `xml:"link"`
	Description   string    `xml:"description"`
	LastBuildDate string    `xml:"lastBuildDate,omitempty"`
	Image         *RSSImage `xml:"image,omitempty"`
	Items         []RSSItem `xml:"item"`
}

type RSSImage struct {
	URL   string `xml:"url"`
	Title string `xml:"title"`
	Link  string `xml:"link"`
}

type RSSItem struct {
	Title       string  `xml:"title"`
	Link        string  `xml:"link,omitempty"`
	Description string  `xml:"description"`
	PubDate     string  `xml:"pubDate"`
	GUID        RSSGUID `xml:"guid"`
}

type RSSGUID struct {
	IsPermaLink bool   `xml:"isPermaLink,attr"`
	Value       string `xml:",chardata"`
}

// FeedConfig describes the channel.
type FeedConfig struct {
	Title     string
	Permalink string
	// FaviconAPI, when set, is prefixed to the permalink host to build the
	// channel image.
	FaviconAPI string
	// Limit caps the number of items. Zero means every entry.
	Limit int
}

type FeedService interface {
	Build(ctx context.Context) (RSS, error)
}

type feedService struct {
	entries repository.EntryRepository
	cfg     FeedConfig
}

func NewFeedService(entries repository.EntryRepository, cfg FeedConfig) FeedService {
	return &feedService{entries: entries, cfg: cfg}
}

// Build renders every entry, newest first, with RFC 822 dates.
func (s *feedService) Build(ctx context.Context) (RSS, error) {
	entries, err := s.entries.Recent(ctx, s.cfg.Limit)
	if err != nil {
		logger.Error("feed list entries", "module", "service", "action", "list", "resource", "feed", "result", "failed", "error", err)
		return RSS{}, fmt.Errorf("%w: %w", ErrStore, err)
	}

	channel := RSSChannel{
		Title:       s.cfg.Title,
		Link:        s.cfg.Permalink,
		Description: s.cfg.Title,
		Items:       make([]RSSItem, 0, len(entries)),
	}
	if len(entries) > 0 {
		channel.LastBuildDate = entries[0].Date.Format(time.RFC1123Z)
	}
	if s.cfg.FaviconAPI != "" && s.cfg.Permalink != "" {
		channel.Image = &RSSImage{
			URL:   s.cfg.FaviconAPI + network.ExtractHost(s.cfg.Permalink),
			Title: s.cfg.Title,
			Link:  s.cfg.Permalink,
		}
	}

	for _, e := range entries {
		id := strconv.FormatInt(e.ID, 10)
		item := RSSItem{
			Title:       sanitizer.DisplayName(e.Name),
			Description: e.Comment,
			PubDate:     e.Date.Format(time.RFC1123Z),
			GUID:        RSSGUID{Value: id},
		}
		if s.cfg.Permalink != "" {
			item.Link = strings.TrimSuffix(s.cfg.Permalink, "/") + "/#" + id
		}
		channel.Items = append(channel.Items, item)
	}

	return RSS{Version: "2.0", Channel: channel}, nil
}
