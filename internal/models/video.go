package models

import "strings"

// topicChannelSuffix marks auto-generated channels carrying official audio
const topicChannelSuffix = " - topic"

// thumbnailPriority is the order in which album covers are picked
var thumbnailPriority = []string{"maxres", "high", "default"}

// Thumbnails maps a quality label (default, high, maxres, ...) to its URL
type Thumbnails map[string]string

// AlbumCover returns the best available thumbnail URL
func (t Thumbnails) AlbumCover() (string, bool) {
	for _, label := range thumbnailPriority {
		if url, ok := t[label]; ok {
			return url, true
		}
	}
	return "", false
}

// SearchCandidate represents a video returned by the keyword search
type SearchCandidate struct {
	VideoID      string     `json:"videoId"`
	Title        string     `json:"title"`
	ChannelTitle string     `json:"channelTitle"`
	PublishedAt  string     `json:"publishedAt"`
	Thumbnails   Thumbnails `json:"thumbnails"`
}

// IsTopicChannel reports whether the candidate was published by a topic channel
func (s SearchCandidate) IsTopicChannel() bool {
	return strings.HasSuffix(strings.ToLower(s.ChannelTitle), topicChannelSuffix)
}

// Track represents a song returned to the caller
type Track struct {
	VideoID      string `json:"videoId"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ChannelTitle string `json:"channelTitle"`
	PublishedAt  string `json:"publishedAt"`
	AlbumCover   string `json:"albumCover"`
	Duration     string `json:"duration"`
}
