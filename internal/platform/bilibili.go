package platform

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/starwatch/internal/models"
	"github.com/goccy/go-json"
	"golang.org/x/time/rate"
)

const (
	DefaultLiveBaseURL = "https://api.live.bilibili.com"
	DefaultVCBaseURL   = "https://api.vc.bilibili.com"

	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"

	// maxCardsPerRequest is the most uids the user card endpoint accepts at once
	maxCardsPerRequest = 50
)

// HTTPDoer sends HTTP requests
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// bilibiliClient implements the Client interface over the Bilibili web APIs
type bilibiliClient struct {
	liveBaseURL string
	vcBaseURL   string
	sessdata    string
	http        HTTPDoer
	limiter     *rate.Limiter
}

// NewBilibili creates a new platform client
func NewBilibili(cfg *Config) (*bilibiliClient, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	liveBaseURL := strings.TrimRight(cfg.LiveBaseURL, "/")
	if liveBaseURL == "" {
		liveBaseURL = DefaultLiveBaseURL
	}
	vcBaseURL := strings.TrimRight(cfg.VCBaseURL, "/")
	if vcBaseURL == "" {
		vcBaseURL = DefaultVCBaseURL
	}

	doer := cfg.HTTPClient
	if doer == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		doer = &http.Client{Timeout: timeout}
	}

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}

	return &bilibiliClient{
		liveBaseURL: liveBaseURL,
		vcBaseURL:   vcBaseURL,
		sessdata:    cfg.SESSDATA,
		http:        doer,
		limiter:     rate.NewLimiter(limit, 1),
	}, nil
}

// GetUserInfo returns a broadcaster's name and room
func (c *bilibiliClient) GetUserInfo(ctx context.Context, uid int64) (*UserInfo, error) {
	var data struct {
		Info struct {
			UID   int64  `json:"uid"`
			UName string `json:"uname"`
		} `json:"info"`
		RoomID int64 `json:"room_id"`
	}

	endpoint := fmt.Sprintf("%s/live_user/v1/Master/info?uid=%d", c.liveBaseURL, uid)
	if err := c.get(ctx, endpoint, &data); err != nil {
		return nil, fmt.Errorf("failed to get user info for %d: %w", uid, err)
	}

	return &UserInfo{
		UID:    uid,
		Name:   data.Info.UName,
		RoomID: data.RoomID,
	}, nil
}

// GetRoomInfo returns a room's title, cover, start time and audience counts
func (c *bilibiliClient) GetRoomInfo(ctx context.Context, roomID int64) (*models.RoomInfo, error) {
	var data struct {
		RoomInfo struct {
			UID           int64  `json:"uid"`
			RoomID        int64  `json:"room_id"`
			Title         string `json:"title"`
			Cover         string `json:"cover"`
			LiveStatus    int    `json:"live_status"`
			LiveStartTime int64  `json:"live_start_time"`
		} `json:"room_info"`
		AnchorInfo struct {
			BaseInfo struct {
				UName string `json:"uname"`
			} `json:"base_info"`
			RelationInfo struct {
				Attention int64 `json:"attention"`
			} `json:"relation_info"`
			MedalInfo *struct {
				FansClub int64 `json:"fansclub"`
			} `json:"medal_info"`
		} `json:"anchor_info"`
		GuardInfo struct {
			Count int64 `json:"count"`
		} `json:"guard_info"`
	}

	endpoint := fmt.Sprintf("%s/xlive/web-room/v1/index/getInfoByRoom?room_id=%d", c.liveBaseURL, roomID)
	if err := c.get(ctx, endpoint, &data); err != nil {
		return nil, fmt.Errorf("failed to get room info for %d: %w", roomID, err)
	}

	info := &models.RoomInfo{
		RoomID:    data.RoomInfo.RoomID,
		UID:       data.RoomInfo.UID,
		Name:      data.AnchorInfo.BaseInfo.UName,
		Title:     data.RoomInfo.Title,
		Cover:     data.RoomInfo.Cover,
		StartTime: data.RoomInfo.LiveStartTime,
		Status:    models.LiveStatus(data.RoomInfo.LiveStatus),
		Followers: data.AnchorInfo.RelationInfo.Attention,
		Guards:    data.GuardInfo.Count,
	}
	// Rooms without a fan club have no medal info
	if data.AnchorInfo.MedalInfo != nil {
		info.FanMedals = data.AnchorInfo.MedalInfo.FansClub
	}

	return info, nil
}

// GetRoomPlayStatus returns whether a room is currently on air
func (c *bilibiliClient) GetRoomPlayStatus(ctx context.Context, roomID int64) (models.LiveStatus, error) {
	var data struct {
		LiveStatus int `json:"live_status"`
	}

	endpoint := fmt.Sprintf("%s/xlive/web-room/v2/index/getRoomPlayInfo?room_id=%d&protocol=0,1&format=0,1,2&codec=0,1",
		c.liveBaseURL, roomID)
	if err := c.get(ctx, endpoint, &data); err != nil {
		return models.LiveStatusUnknown, fmt.Errorf("failed to get play status for %d: %w", roomID, err)
	}

	return models.LiveStatus(data.LiveStatus), nil
}

// GetStatusInfoByUIDs looks up the live status of many broadcasters in one call
func (c *bilibiliClient) GetStatusInfoByUIDs(ctx context.Context, uids []int64) (map[int64]*StatusInfo, error) {
	result := make(map[int64]*StatusInfo, len(uids))
	if len(uids) == 0 {
		return result, nil
	}

	body, err := json.Marshal(map[string][]int64{"uids": uids})
	if err != nil {
		return nil, fmt.Errorf("failed to encode uids: %w", err)
	}

	var data map[string]struct {
		UID        int64  `json:"uid"`
		UName      string `json:"uname"`
		RoomID     int64  `json:"room_id"`
		LiveStatus int    `json:"live_status"`
		LiveTime   int64  `json:"live_time"`
	}

	endpoint := c.liveBaseURL + "/room/v1/Room/get_status_info_by_uids"
	if err := c.do(ctx, http.MethodPost, endpoint, body, &data); err != nil {
		return nil, fmt.Errorf("failed to get status info: %w", err)
	}

	for _, entry := range data {
		result[entry.UID] = &StatusInfo{
			UID:       entry.UID,
			Name:      entry.UName,
			RoomID:    entry.RoomID,
			Status:    models.LiveStatus(entry.LiveStatus),
			StartTime: entry.LiveTime,
		}
	}

	return result, nil
}

// GetUserCards resolves display names and avatars, in the same order as uids.
// Users the platform does not return get empty strings.
func (c *bilibiliClient) GetUserCards(ctx context.Context, uids []int64) (*UserCards, error) {
	type card struct {
		Name string
		Face string
	}
	found := make(map[int64]card, len(uids))

	for start := 0; start < len(uids); start += maxCardsPerRequest {
		end := start + maxCardsPerRequest
		if end > len(uids) {
			end = len(uids)
		}

		ids := make([]string, 0, end-start)
		for _, uid := range uids[start:end] {
			ids = append(ids, strconv.FormatInt(uid, 10))
		}

		var data []struct {
			Mid  int64  `json:"mid"`
			Name string `json:"name"`
			Face string `json:"face"`
		}

		endpoint := fmt.Sprintf("%s/account/v1/user/cards?uids=%s", c.vcBaseURL, url.QueryEscape(strings.Join(ids, ",")))
		if err := c.get(ctx, endpoint, &data); err != nil {
			return nil, fmt.Errorf("failed to get user cards: %w", err)
		}

		for _, d := range data {
			found[d.Mid] = card{Name: d.Name, Face: d.Face}
		}
	}

	cards := &UserCards{
		Names: make([]string, len(uids)),
		Faces: make([]string, len(uids)),
	}
	for i, uid := range uids {
		cards.Names[i] = found[uid].Name
		cards.Faces[i] = found[uid].Face
	}

	return cards, nil
}

// GetPosts returns a broadcaster's most recent posts, newest first
func (c *bilibiliClient) GetPosts(ctx context.Context, uid int64) ([]*models.Post, error) {
	var data struct {
		Cards []struct {
			Desc struct {
				DynamicID int64  `json:"dynamic_id"`
				UID       int64  `json:"uid"`
				Type      int    `json:"type"`
				BVID      string `json:"bvid"`
				RID       int64  `json:"rid"`
			} `json:"desc"`
		} `json:"cards"`
	}

	endpoint := fmt.Sprintf("%s/dynamic_svr/v1/dynamic_svr/space_history?host_uid=%d", c.vcBaseURL, uid)
	if err := c.get(ctx, endpoint, &data); err != nil {
		return nil, fmt.Errorf("failed to get posts for %d: %w", uid, err)
	}

	posts := make([]*models.Post, 0, len(data.Cards))
	for _, card := range data.Cards {
		posts = append(posts, &models.Post{
			ID:   card.Desc.DynamicID,
			UID:  uid,
			Type: models.PostType(card.Desc.Type),
			BVID: card.Desc.BVID,
			RID:  card.Desc.RID,
		})
	}

	return posts, nil
}

func (c *bilibiliClient) get(ctx context.Context, endpoint string, out any) error {
	return c.do(ctx, http.MethodGet, endpoint, nil, out)
}

// do sends one request, unwraps the response envelope and decodes its data into out
func (c *bilibiliClient) do(ctx context.Context, method, endpoint string, body []byte, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Referer", "https://live.bilibili.com/")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.sessdata != "" {
		req.AddCookie(&http.Cookie{Name: "SESSDATA", Value: c.sessdata})
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("platform returned status %d", resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if env.Code != 0 {
		return &APIError{Code: env.Code, Message: env.Message}
	}

	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}

	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to decode data: %w", err)
	}

	return nil
}
