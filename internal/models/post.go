package models

import "fmt"

// PostType is the platform's numeric kind of a social post
type PostType int

const (
	PostTypeRepost  PostType = 1
	PostTypeImage   PostType = 2
	PostTypeText    PostType = 4
	PostTypeVideo   PostType = 8
	PostTypeArticle PostType = 64
	PostTypeAudio   PostType = 256
	PostTypeLive    PostType = 2048
)

// Post is a social post published by a broadcaster
type Post struct {
	ID   int64    `json:"dynamic_id"`
	UID  int64    `json:"uid"`
	Type PostType `json:"type"`

	// BVID is set for videos
	BVID string `json:"bvid,omitempty"`

	// RID is set for articles and audio
	RID int64 `json:"rid,omitempty"`
}

// DefaultPostAction is used for post types without a specific phrase
const DefaultPostAction = "shared a new post"

var postActions = map[PostType]string{
	PostTypeRepost:  "reposted a post",
	PostTypeImage:   DefaultPostAction,
	PostTypeText:    DefaultPostAction,
	PostTypeVideo:   "uploaded a new video",
	PostTypeArticle: "published a new article",
	PostTypeAudio:   "uploaded a new track",
	PostTypeLive:    DefaultPostAction,
}

var postTypeNames = map[string]PostType{
	"repost":  PostTypeRepost,
	"image":   PostTypeImage,
	"text":    PostTypeText,
	"video":   PostTypeVideo,
	"article": PostTypeArticle,
	"audio":   PostTypeAudio,
	"live":    PostTypeLive,
}

// ParsePostType looks up a post type by its config name, such as "video"
func ParsePostType(name string) (PostType, bool) {
	t, ok := postTypeNames[name]
	return t, ok
}

// Action returns the phrase describing what the broadcaster did
func (p *Post) Action() string {
	if action, ok := postActions[p.Type]; ok {
		return action
	}
	return DefaultPostAction
}

// PostActions replaces the built-in phrase for some post types
type PostActions map[PostType]string

// Action returns the configured phrase for the post, or its built-in one
func (a PostActions) Action(p *Post) string {
	if action := a[p.Type]; action != "" {
		return action
	}
	return p.Action()
}

// URL returns the canonical link to the post's content
func (p *Post) URL() string {
	switch p.Type {
	case PostTypeVideo:
		return fmt.Sprintf("https://www.bilibili.com/video/%s", p.BVID)
	case PostTypeArticle:
		return fmt.Sprintf("https://www.bilibili.com/read/cv%d", p.RID)
	case PostTypeAudio:
		return fmt.Sprintf("https://www.bilibili.com/audio/au%d", p.RID)
	default:
		return fmt.Sprintf("https://t.bilibili.com/%d", p.ID)
	}
}
