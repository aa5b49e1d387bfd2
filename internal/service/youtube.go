package service

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/kapu/youtube-growth-monitor/internal/domain"
	"go.uber.org/zap"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// VideoDetails is the Data API view of one video.
type VideoDetails struct {
	VideoID         string
	Title           string
	ChannelID       string
	PublishedAt     time.Time
	DurationSeconds int
	Counts          domain.VideoCounts
}

// YouTubeService wraps the Data API for public counters and upload
// discovery. videos.list costs 1 unit per call regardless of batch size,
// so counts are fetched in batches of 50.
type YouTubeService struct {
	service *youtube.Service
	logger  *zap.Logger
}

const videosBatchSize = 50

func NewYouTubeService(ctx context.Context, apiKey string, logger *zap.Logger) (*YouTubeService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("YouTube API key is required")
	}

	service, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service: %w", err)
	}

	logger.Info("YouTube Data service initialized")

	return &YouTubeService{
		service: service,
		logger:  logger,
	}, nil
}

// GetVideoDetails fetches snippet, statistics and duration for a batch of
// video IDs. Missing IDs (deleted or private videos) are silently absent
// from the result map.
func (ys *YouTubeService) GetVideoDetails(ctx context.Context, videoIDs []string) (map[string]*VideoDetails, error) {
	result := make(map[string]*VideoDetails, len(videoIDs))

	for i := 0; i < len(videoIDs); i += videosBatchSize {
		end := i + videosBatchSize
		if end > len(videoIDs) {
			end = len(videoIDs)
		}
		batch := videoIDs[i:end]

		response, err := ys.service.Videos.List([]string{"snippet", "statistics", "contentDetails"}).
			Id(batch...).
			Context(ctx).Do()
		if err != nil {
			return nil, fmt.Errorf("videos.list failed: %w", err)
		}

		for _, item := range response.Items {
			details := &VideoDetails{
				VideoID: item.Id,
			}
			if item.ContentDetails != nil {
				details.DurationSeconds = parseISODuration(item.ContentDetails.Duration)
			}
			if item.Snippet != nil {
				details.Title = item.Snippet.Title
				details.ChannelID = item.Snippet.ChannelId
				if published, err := time.Parse(time.RFC3339, item.Snippet.PublishedAt); err == nil {
					details.PublishedAt = published
				}
			}
			if item.Statistics != nil {
				details.Counts = domain.VideoCounts{
					Views:    int64(item.Statistics.ViewCount),
					Likes:    int64(item.Statistics.LikeCount),
					Comments: int64(item.Statistics.CommentCount),
				}
			}
			result[item.Id] = details
		}
	}

	ys.logger.Debug("Video details fetched",
		zap.Int("requested", len(videoIDs)),
		zap.Int("found", len(result)))

	return result, nil
}

// GetVideoCounts is the single-video convenience used on each checkpoint.
func (ys *YouTubeService) GetVideoCounts(ctx context.Context, videoID string) (*domain.VideoCounts, error) {
	details, err := ys.GetVideoDetails(ctx, []string{videoID})
	if err != nil {
		return nil, err
	}
	d, ok := details[videoID]
	if !ok {
		return nil, fmt.Errorf("video %s not found", videoID)
	}
	return &d.Counts, nil
}

// GetRecentUploads lists the newest uploads of a channel via search.list.
func (ys *YouTubeService) GetRecentUploads(ctx context.Context, channelID string, maxResults int64) ([]string, error) {
	response, err := ys.service.Search.List([]string{"id"}).
		ChannelId(channelID).
		Type("video").
		Order("date").
		MaxResults(maxResults).
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("search.list failed for %s: %w", channelID, err)
	}

	videoIDs := make([]string, 0, len(response.Items))
	for _, item := range response.Items {
		if item.Id != nil && item.Id.VideoId != "" {
			videoIDs = append(videoIDs, item.Id.VideoId)
		}
	}

	ys.logger.Debug("Recent uploads fetched",
		zap.String("channel", channelID),
		zap.Int("count", len(videoIDs)))

	return videoIDs, nil
}

var isoDurationRe = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// parseISODuration converts the Data API's ISO 8601 duration (PT#H#M#S)
// into seconds. Returns 0 for anything it cannot parse.
func parseISODuration(d string) int {
	m := isoDurationRe.FindStringSubmatch(d)
	if m == nil {
		return 0
	}
	seconds := 0
	if m[1] != "" {
		h, _ := strconv.Atoi(m[1])
		seconds += h * 3600
	}
	if m[2] != "" {
		min, _ := strconv.Atoi(m[2])
		seconds += min * 60
	}
	if m[3] != "" {
		s, _ := strconv.Atoi(m[3])
		seconds += s
	}
	return seconds
}
