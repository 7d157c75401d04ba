package community

import "time"

// Post field names follow the JSON shape the web client consumes.
type Post struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	Author         string    `json:"author"`
	AuthorInitials string    `json:"authorInitials"`
	Category       string    `json:"category"`
	Timestamp      string    `json:"timestamp"`
	Likes          int       `json:"likes"`
	Replies        int       `json:"replies"`
	IsLiked        bool      `json:"isLiked"`
	IsAnonymous    bool      `json:"isAnonymous"`
	Tags           []string  `json:"tags"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Stats aggregates the current board. ActiveMembers and OnlineNow are
// simulated presentation values regenerated on every call; they are not
// measurements and must never be persisted.
type Stats struct {
	TotalPosts    int `json:"totalPosts"`
	TotalLikes    int `json:"totalLikes"`
	TotalReplies  int `json:"totalReplies"`
	ActiveMembers int `json:"activeMembers"`
	OnlineNow     int `json:"onlineNow"`
}

type CreateInput struct {
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	IsAnonymous bool     `json:"isAnonymous"`
}
