package dto

// PostBaseDTO is the create-post request body. Media and documents reference
// objects already uploaded through the media endpoint.
type PostBaseDTO struct {
	Title       string  `json:"title" binding:"required" validate:"min=1,max=255"`
	Description string  `json:"description" validate:"max=5000"`
	Type        string  `json:"type" binding:"required" validate:"oneof=normal meal meal_plan workout"`
	TierID      *uint64 `json:"tier_id"` // nil publishes as free content

	Media     []MediaBaseDTO    `json:"media" validate:"max=9,dive"`
	Documents []DocumentBaseDTO `json:"documents" validate:"max=5,dive"`

	Meal     *MealBaseDTO     `json:"meal,omitempty"`
	MealPlan *MealPlanBaseDTO `json:"meal_plan,omitempty"`
}

type MediaBaseDTO struct {
	MediaURL string `json:"media_url" binding:"required" validate:"min=1,max=512"`
	MimeType string `json:"mime_type" binding:"required" validate:"min=1,max=64"`
	Width    int    `json:"width" validate:"min=0"`
	Height   int    `json:"height" validate:"min=0"`
}

type DocumentBaseDTO struct {
	Title       string `json:"title" validate:"max=255"`
	DocumentURL string `json:"document_url" binding:"required" validate:"min=1,max=512"`
}

type MealBaseDTO struct {
	Title       string   `json:"title" binding:"required" validate:"min=1,max=255"`
	Calories    int      `json:"calories" validate:"min=0"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
}

type MealPlanBaseDTO struct {
	Title       string             `json:"title" binding:"required" validate:"min=1,max=255"`
	Description string             `json:"description" validate:"max=5000"`
	Entries     []MealPlanEntryDTO `json:"entries" validate:"dive"`
}

type MealPlanEntryDTO struct {
	Day    int    `json:"day" validate:"min=1"`
	MealID uint64 `json:"meal_id" binding:"required"`
}

// PostDTO is the full detail view of a post.
type PostDTO struct {
	ID           uint64  `json:"id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Type         string  `json:"type"`
	TierID       *uint64 `json:"tier_id"`
	AspectRatio  string  `json:"aspect_ratio"`
	LikedCount   int64   `json:"liked_count"`
	CommentCount int64   `json:"comment_count"`
	CreatedAt    string  `json:"created_at"`

	Media     []MediaDTO    `json:"media"`
	Documents []DocumentDTO `json:"documents"`
	Meal      *MealDTO      `json:"meal,omitempty"`
	MealPlan  *MealPlanDTO  `json:"meal_plan,omitempty"`

	// Creator
	UserID    uint64  `json:"user_id"`
	Handle    string  `json:"handle"`
	AvatarURL *string `json:"avatar_url,omitempty"`
	Role      string  `json:"role"`
}

type MediaDTO struct {
	MediaURL  string `json:"media_url"`
	MimeType  string `json:"mime_type"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	SortOrder int8   `json:"sort_order"`
}

type DocumentDTO struct {
	Title       string `json:"title"`
	DocumentURL string `json:"document_url"`
}

type MealDTO struct {
	ID          uint64   `json:"id"`
	Title       string   `json:"title"`
	Calories    int      `json:"calories"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
}

type MealPlanDTO struct {
	ID          uint64             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Entries     []MealPlanEntryDTO `json:"entries"`
}

// FeedEntryDTO is one feed card: a trimmed post plus the creator annotation
// copied onto the entry itself.
type FeedEntryDTO struct {
	ID           uint64        `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Type         string        `json:"type"`
	AspectRatio  string        `json:"aspect_ratio"`
	Locked       bool          `json:"locked"`
	LikedCount   int64         `json:"liked_count"`
	CommentCount int64         `json:"comment_count"`
	CreatedAt    string        `json:"created_at"`
	Media        []MediaDTO    `json:"media"`
	Documents    []DocumentDTO `json:"documents"`

	UserID    uint64  `json:"user_id"`
	Handle    string  `json:"handle"`
	AvatarURL *string `json:"avatar_url,omitempty"`
	Role      string  `json:"role"`
}
