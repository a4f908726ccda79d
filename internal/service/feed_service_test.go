package service_test

import (
	"context"
	"encoding/xml"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"guestbook/internal/model"
	"guestbook/internal/repository"
	repomock "guestbook/internal/repository/mock"
	"guestbook/internal/repository/testutil"
	"guestbook/internal/service"
)

func TestFeedService_Build(t *testing.T) {
	db := testutil.NewTestDB(t)
	older := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	newer := time.Date(2024, 3, 2, 11, 30, 0, 0, time.UTC)
	name := "Alice"
	oldID := testutil.SeedEntry(t, db, model.Entry{ID: 1, IP: "a", Comment: "first", Date: older})
	newID := testutil.SeedEntry(t, db, model.Entry{ID: 2, IP: "b", Comment: "second &amp; last", Name: &name, Date: newer})

	svc := service.NewFeedService(repository.NewEntryRepository(db), service.FeedConfig{
		Title:      "My Guestbook",
		Permalink:  "https://guestbook.example/",
		FaviconAPI: "https://icons.example/?domain=",
	})

	rss, err := svc.Build(context.Background())
	require.NoError(t, err)
	require.Equal(t, "2.0", rss.Version)
	require.Equal(t, "My Guestbook", rss.Channel.Title)
	require.Equal(t, "https://guestbook.example/", rss.Channel.Link)
	require.Equal(t, "https://icons.example/?domain=guestbook.example", rss.Channel.Image.URL)
	require.Equal(t, "Sat, 02 Mar 2024 11:30:00 +0000", rss.Channel.LastBuildDate)

	require.Len(t, rss.Channel.Items, 2)
	first := rss.Channel.Items[0]
	require.Equal(t, "Alice", first.Title)
	require.Equal(t, "second &amp; last", first.Description)
	require.Equal(t, strconv.FormatInt(newID, 10), first.GUID.Value)
	require.Equal(t, "https://guestbook.example/#2", first.Link)
	require.Equal(t, "Sat, 02 Mar 2024 11:30:00 +0000", first.PubDate)

	second := rss.Channel.Items[1]
	require.Equal(t, "anonymous", second.Title)
	require.Equal(t, strconv.FormatInt(oldID, 10), second.GUID.Value)
	require.Equal(t, "Fri, 01 Mar 2024 10:00:00 +0000", second.PubDate)

	out, err := xml.Marshal(rss)
	require.NoError(t, err)
	require.Contains(t, string(out), `<rss version="2.0">`)
}

func TestFeedService_Empty(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := service.NewFeedService(repository.NewEntryRepository(db), service.FeedConfig{Title: "Empty"})

	rss, err := svc.Build(context.Background())
	require.NoError(t, err)
	require.Empty(t, rss.Channel.Items)
	require.Nil(t, rss.Channel.Image)
	require.Empty(t, rss.Channel.LastBuildDate)
}

func TestFeedService_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	entries := repomock.NewMockEntryRepository(ctrl)
	entries.EXPECT().Recent(gomock.Any(), 20).Return(nil, errors.New("closed"))

	svc := service.NewFeedService(entries, service.FeedConfig{Limit: 20})
	_, err := svc.Build(context.Background())
	require.ErrorIs(t, err, service.ErrStore)
}
