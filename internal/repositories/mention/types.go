package mention

import "github.com/KirkDiggler/starwatch/internal/models"

// ChangeInput contains parameters for adding or removing a mention
type ChangeInput struct {
	Kind     models.MentionKind
	TargetID string
	UserID   string
}

// ListInput contains parameters for reading a mention list
type ListInput struct {
	Kind     models.MentionKind
	TargetID string
}
