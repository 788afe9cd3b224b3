package posts

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/KirkDiggler/starwatch/internal/models"
	"github.com/KirkDiggler/starwatch/internal/platform"
	roomRepo "github.com/KirkDiggler/starwatch/internal/repositories/room"
	"github.com/rs/zerolog/log"
)

const defaultInterval = time.Minute

// service implements the Service interface
type service struct {
	platform    platform.Client
	roomRepo    roomRepo.Repository
	subscribers []Subscriber
	interval    time.Duration
}

// New creates a new post poller
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Platform == nil {
		return nil, ErrNilPlatform
	}

	if cfg.RoomRepo == nil {
		return nil, ErrNilRoomRepo
	}

	interval := cfg.Interval
	if interval <= 0 {
		interval = defaultInterval
	}

	return &service{
		platform:    cfg.Platform,
		roomRepo:    cfg.RoomRepo,
		subscribers: cfg.Subscribers,
		interval:    interval,
	}, nil
}

// Run polls at once and then on every interval until ctx is cancelled
func (s *service) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		if err := s.Poll(ctx); err != nil {
			log.Error().Err(err).Msg("Post poll failed")
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// Poll checks every broadcaster once. A failure for one broadcaster does not stop the others.
func (s *service) Poll(ctx context.Context) error {
	var errs []error
	for _, sub := range s.subscribers {
		if ctx.Err() != nil {
			return nil
		}

		if err := s.pollOne(ctx, sub); err != nil {
			errs = append(errs, fmt.Errorf("uid %d: %w", sub.UID(), err))
		}
	}

	return errors.Join(errs...)
}

func (s *service) pollOne(ctx context.Context, sub Subscriber) error {
	uid := sub.UID()
	logger := log.With().Int64("uid", uid).Logger()

	posts, err := s.platform.GetPosts(ctx, uid)
	if err != nil {
		return fmt.Errorf("failed to get posts: %w", err)
	}

	if len(posts) == 0 {
		return nil
	}

	newest := posts[0]
	for _, post := range posts[1:] {
		if post.ID > newest.ID {
			newest = post
		}
	}

	lastID, err := s.roomRepo.GetLastPostID(ctx, &roomRepo.GetLastPostIDInput{UID: uid})
	if errors.Is(err, roomRepo.ErrPostNotFound) {
		// First sight of this broadcaster, nothing is new yet
		logger.Debug().Int64("post_id", newest.ID).Msg("Recording latest post")
		return s.roomRepo.SetLastPostID(ctx, &roomRepo.SetLastPostIDInput{UID: uid, PostID: newest.ID})
	}
	if err != nil {
		return fmt.Errorf("failed to get last post: %w", err)
	}

	var unseen []*models.Post
	for _, post := range posts {
		if post.ID > lastID {
			unseen = append(unseen, post)
		}
	}

	sort.Slice(unseen, func(i, j int) bool {
		return unseen[i].ID < unseen[j].ID
	})

	for _, post := range unseen {
		if err := sub.DispatchPost(ctx, post); err != nil {
			return fmt.Errorf("failed to dispatch post %d: %w", post.ID, err)
		}

		err := s.roomRepo.SetLastPostID(ctx, &roomRepo.SetLastPostIDInput{UID: uid, PostID: post.ID})
		if err != nil {
			return fmt.Errorf("failed to record post %d: %w", post.ID, err)
		}

		logger.Info().Int64("post_id", post.ID).Msg("Dispatched new post")
	}

	return nil
}
