package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/moodbite/backend/internal/types"
)

const videoCacheTTL = 24 * time.Hour

// VideoSearcher looks up one video for a query string.
type VideoSearcher interface {
	Search(ctx context.Context, query string) (types.Video, error)
}

// FallbackVideo deterministically synthesizes a search-results link for a
// query, used whenever a live lookup is unavailable or fails.
func FallbackVideo(query string) types.Video {
	return types.Video{
		Title:     query,
		URL:       "https://www.youtube.com/results?search_query=" + url.QueryEscape(query),
		Thumbnail: "",
		Channel:   "YouTube Search",
	}
}

// YouTubeClient queries the YouTube Data API for the top matching video.
type YouTubeClient struct {
	apiKey     string
	apiURL     string
	httpClient *http.Client
}

// NewYouTubeClient creates a video search client. With an empty API key the
// client never performs network calls and always returns the fallback.
func NewYouTubeClient(apiKey string) *YouTubeClient {
	return &YouTubeClient{
		apiKey:     apiKey,
		apiURL:     "https://www.googleapis.com/youtube/v3/search",
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *YouTubeClient) Search(ctx context.Context, query string) (types.Video, error) {
	if c.apiKey == "" {
		return FallbackVideo(query), nil
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("part", "snippet")
	params.Set("type", "video")
	params.Set("maxResults", "1")
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"?"+params.Encode(), nil)
	if err != nil {
		return types.Video{}, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return types.Video{}, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return types.Video{}, fmt.Errorf("youtube search failed with status %d", resp.StatusCode)
	}

	var result struct {
		Items []struct {
			ID struct {
				VideoID string `json:"videoId"`
			} `json:"id"`
			Snippet struct {
				Title      string `json:"title"`
				Thumbnails struct {
					Default struct {
						URL string `json:"url"`
					} `json:"default"`
				} `json:"thumbnails"`
				ChannelTitle string `json:"channelTitle"`
			} `json:"snippet"`
		} `json:"items"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return types.Video{}, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(result.Items) == 0 {
		return FallbackVideo(query), nil
	}

	item := result.Items[0]
	return types.Video{
		Title:     item.Snippet.Title,
		URL:       "https://www.youtube.com/watch?v=" + item.ID.VideoID,
		Thumbnail: item.Snippet.Thumbnails.Default.URL,
		Channel:   item.Snippet.ChannelTitle,
	}, nil
}

// CachedVideoSearcher decorates a VideoSearcher with a Redis cache keyed by
// query. Cache errors fall through to the live lookup.
type CachedVideoSearcher struct {
	inner VideoSearcher
	redis *redis.Client
}

func NewCachedVideoSearcher(inner VideoSearcher, redisClient *redis.Client) *CachedVideoSearcher {
	return &CachedVideoSearcher{inner: inner, redis: redisClient}
}

func (c *CachedVideoSearcher) Search(ctx context.Context, query string) (types.Video, error) {
	key := "video:search:" + query

	if data, err := c.redis.Get(ctx, key).Bytes(); err == nil {
		var video types.Video
		if err := json.Unmarshal(data, &video); err == nil {
			return video, nil
		}
	}

	video, err := c.inner.Search(ctx, query)
	if err != nil {
		return types.Video{}, err
	}

	if data, err := json.Marshal(video); err == nil {
		if err := c.redis.Set(ctx, key, data, videoCacheTTL).Err(); err != nil {
			log.Printf("failed to cache video result for %q: %v", query, err)
		}
	}

	return video, nil
}
