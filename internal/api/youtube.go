package api

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yt-topic-search/internal/config"
	"github.com/yt-topic-search/internal/models"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

const (
	// maxSearchResults caps the keyword search; no further pages are fetched
	maxSearchResults = 15
)

var (
	ErrMissingSong = errors.New("Missing ?song=")
)

// UpstreamError wraps any failure while talking to the YouTube Data API,
// including responses that do not have the expected shape.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func upstreamErr(op string, err error) error {
	return &UpstreamError{Op: op, Err: err}
}

// YouTubeAPI handles YouTube API interactions
type YouTubeAPI struct {
	service *youtube.Service
}

// NewYouTubeAPI creates a new YouTube API handler
func NewYouTubeAPI(ctx context.Context, cfg *config.Config) (*YouTubeAPI, error) {
	opts := []option.ClientOption{option.WithAPIKey(cfg.YouTubeAPIKey)}
	if cfg.YouTubeEndpoint != "" {
		opts = append(opts, option.WithEndpoint(cfg.YouTubeEndpoint))
	}

	service, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}

	return &YouTubeAPI{service: service}, nil
}

// SearchSongs handles GET /search?song=
func (y *YouTubeAPI) SearchSongs(c *gin.Context) {
	song := c.Query("song")

	tracks, err := y.SearchTopicTracks(c.Request.Context(), song)
	if errors.Is(err, ErrMissingSong) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		log.Printf("Error searching topic tracks for %q: %v", song, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, tracks)
}

// SearchTopicTracks searches videos matching song, keeps the ones published by
// topic channels and returns their details in the order the API lists them.
func (y *YouTubeAPI) SearchTopicTracks(ctx context.Context, song string) ([]models.Track, error) {
	if song == "" {
		return nil, ErrMissingSong
	}

	candidates, err := y.searchCandidates(ctx, song)
	if err != nil {
		return nil, err
	}

	var videoIDs []string
	for _, cand := range candidates {
		if cand.IsTopicChannel() {
			videoIDs = append(videoIDs, cand.VideoID)
		}
	}

	if len(videoIDs) == 0 {
		return []models.Track{}, nil
	}

	log.Printf("Found %d topic videos out of %d results for %q", len(videoIDs), len(candidates), song)
	return y.getTracks(ctx, videoIDs)
}

func (y *YouTubeAPI) searchCandidates(ctx context.Context, song string) ([]models.SearchCandidate, error) {
	call := y.service.Search.List([]string{"snippet"}).
		Q(song).
		Type("video").
		MaxResults(maxSearchResults).
		Context(ctx)

	response, err := call.Do()
	if err != nil {
		return nil, upstreamErr("search videos", err)
	}

	candidates := make([]models.SearchCandidate, 0, len(response.Items))
	for i, item := range response.Items {
		if item == nil || item.Id == nil || item.Snippet == nil {
			return nil, upstreamErr("search videos", fmt.Errorf("result %d has no id or snippet", i))
		}
		candidates = append(candidates, models.SearchCandidate{
			VideoID:      item.Id.VideoId,
			Title:        item.Snippet.Title,
			ChannelTitle: item.Snippet.ChannelTitle,
			PublishedAt:  item.Snippet.PublishedAt,
			Thumbnails:   thumbnailVariants(item.Snippet.Thumbnails),
		})
	}
	return candidates, nil
}

// getTracks fetches snippet and content details for all ids in one call
func (y *YouTubeAPI) getTracks(ctx context.Context, videoIDs []string) ([]models.Track, error) {
	call := y.service.Videos.List([]string{"snippet", "contentDetails"}).
		Id(videoIDs...).
		Context(ctx)

	response, err := call.Do()
	if err != nil {
		return nil, upstreamErr("fetch video details", err)
	}

	tracks := make([]models.Track, 0, len(response.Items))
	for _, v := range response.Items {
		track, err := trackFromVideo(v)
		if err != nil {
			return nil, upstreamErr("fetch video details", err)
		}
		tracks = append(tracks, track)
	}
	return tracks, nil
}

func trackFromVideo(v *youtube.Video) (models.Track, error) {
	if v == nil || v.Snippet == nil || v.ContentDetails == nil {
		return models.Track{}, errors.New("video is missing snippet or contentDetails")
	}

	cover, ok := thumbnailVariants(v.Snippet.Thumbnails).AlbumCover()
	if !ok {
		return models.Track{}, fmt.Errorf("video %s has no usable thumbnail", v.Id)
	}

	return models.Track{
		VideoID:      v.Id,
		Title:        v.Snippet.Title,
		Description:  v.Snippet.Description,
		ChannelTitle: v.Snippet.ChannelTitle,
		PublishedAt:  v.Snippet.PublishedAt,
		AlbumCover:   cover,
		Duration:     models.FormatISO8601Duration(v.ContentDetails.Duration),
	}, nil
}

func thumbnailVariants(details *youtube.ThumbnailDetails) models.Thumbnails {
	thumbs := models.Thumbnails{}
	if details == nil {
		return thumbs
	}

	variants := map[string]*youtube.Thumbnail{
		"default":  details.Default,
		"medium":   details.Medium,
		"high":     details.High,
		"standard": details.Standard,
		"maxres":   details.Maxres,
	}
	for label, t := range variants {
		if t != nil {
			thumbs[label] = t.Url
		}
	}
	return thumbs
}
