package community

import (
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/maheshh3003/SAFE/internal/apperr"
	"github.com/maheshh3003/SAFE/internal/auth"

	"github.com/google/uuid"
)

const maxTags = 5

// Store holds the community posts for the life of the process. There is
// no persistence: a restart starts over from the seed posts. Every
// operation is a read-modify-write over the shared slice, so all of them
// take the mutex.
type Store struct {
	mu    sync.Mutex
	posts []*Post
	now   func() time.Time
}

func NewStore(seed []Post) *Store {
	s := &Store{now: time.Now}
	for i := range seed {
		p := seed[i]
		p.Tags = append([]string(nil), p.Tags...)
		s.posts = append(s.posts, &p)
	}
	return s
}

// List returns all posts newest-first with their relative timestamps
// recomputed, plus fresh board stats. It never fails.
func (s *Store) List() ([]Post, Stats) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	out := make([]Post, 0, len(s.posts))
	for _, p := range s.posts {
		p.Timestamp = formatRelativeTime(p.CreatedAt, now)
		out = append(out, copyPost(p))
	}
	return out, s.statsLocked()
}

func (s *Store) Create(input CreateInput, who *auth.Identity) (Post, Stats, error) {
	title := strings.TrimSpace(input.Title)
	content := strings.TrimSpace(input.Content)
	if title == "" || content == "" || input.Category == "" {
		return Post{}, Stats{}, apperr.Validation("title, content and category are required")
	}

	author, initials := deriveAuthor(input.IsAnonymous, who)

	post := &Post{
		ID:             uuid.NewString(),
		Title:          title,
		Content:        content,
		Author:         author,
		AuthorInitials: initials,
		Category:       input.Category,
		Timestamp:      "Just now",
		Tags:           normalizeTags(input.Tags),
		IsAnonymous:    input.IsAnonymous,
		CreatedAt:      s.now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = append([]*Post{post}, s.posts...)
	return copyPost(post), s.statsLocked(), nil
}

// React applies a like or unlike to the post. Likes never go below zero.
// There is no per-viewer tracking: two likes from different callers count
// twice, and repeated likes from one caller are not deduplicated.
func (s *Store) React(id, action string) (Post, Stats, error) {
	if action != "like" && action != "unlike" {
		return Post{}, Stats{}, apperr.Validation("action must be like or unlike")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	post := s.findLocked(id)
	if post == nil {
		return Post{}, Stats{}, apperr.NotFound("post not found")
	}

	if action == "like" {
		post.Likes++
	} else if post.Likes > 0 {
		post.Likes--
	}
	post.Timestamp = formatRelativeTime(post.CreatedAt, s.now())

	return copyPost(post), s.statsLocked(), nil
}

// Delete removes the post. Anonymous posts may be deleted by anyone;
// named posts only by the caller whose display name or email matches the
// stored author string.
func (s *Store) Delete(id string, who *auth.Identity) (Post, Stats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, p := range s.posts {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return Post{}, Stats{}, apperr.NotFound("post not found")
	}

	post := s.posts[idx]
	if !post.IsAnonymous {
		allowed := who != nil && ((who.Name != "" && post.Author == who.Name) || (who.Email != "" && post.Author == who.Email))
		if !allowed {
			return Post{}, Stats{}, apperr.Unauthorized("unauthorized to delete this post")
		}
	}

	s.posts = append(s.posts[:idx], s.posts[idx+1:]...)
	return copyPost(post), s.statsLocked(), nil
}

func (s *Store) findLocked(id string) *Post {
	for _, p := range s.posts {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (s *Store) statsLocked() Stats {
	stats := Stats{
		TotalPosts: len(s.posts),
		// simulated presence figures, regenerated on every call
		ActiveMembers: rand.Intn(500) + 2500,
		OnlineNow:     rand.Intn(50) + 100,
	}
	for _, p := range s.posts {
		stats.TotalLikes += p.Likes
		stats.TotalReplies += p.Replies
	}
	return stats
}

func copyPost(p *Post) Post {
	out := *p
	out.Tags = append([]string(nil), p.Tags...)
	return out
}

func deriveAuthor(anonymous bool, who *auth.Identity) (string, string) {
	if anonymous {
		return "Anonymous", "A"
	}
	name := "Anonymous User"
	if who != nil {
		switch {
		case who.Name != "":
			name = who.Name
		case who.Email != "":
			name = who.Email
		}
	}
	return name, initialsOf(name)
}

func initialsOf(name string) string {
	if name == "Anonymous" {
		return "A"
	}
	var b strings.Builder
	for _, word := range strings.Fields(name) {
		b.WriteRune([]rune(word)[0])
		if b.Len() >= 2 {
			break
		}
	}
	return strings.ToUpper(b.String())
}

func normalizeTags(tags []string) []string {
	out := []string{}
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		out = append(out, tag)
		if len(out) == maxTags {
			break
		}
	}
	return out
}

func formatRelativeTime(created, now time.Time) string {
	diff := now.Sub(created)
	switch {
	case diff < time.Hour:
		return plural(int(diff.Minutes()), "minute")
	case diff < 24*time.Hour:
		return plural(int(diff.Hours()), "hour")
	case diff < 7*24*time.Hour:
		return plural(int(diff.Hours()/24), "day")
	default:
		return created.Format("1/2/2006")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

// SeedPosts returns the sample posts every fresh process starts with.
func SeedPosts() []Post {
	now := time.Now()
	return []Post{
		{
			ID:             "1",
			Title:          "Starting therapy for the first time",
			Content:        "I've been thinking about starting therapy but I'm nervous about the process. Has anyone here had a positive first experience they could share? What should I expect?",
			Author:         "Anonymous",
			AuthorInitials: "A",
			Category:       "Therapy",
			Timestamp:      "2 hours ago",
			Likes:          12,
			Replies:        8,
			IsAnonymous:    true,
			Tags:           []string{"first-time", "therapy", "anxiety"},
			CreatedAt:      now.Add(-2 * time.Hour),
		},
		{
			ID:             "2",
			Title:          "Mindfulness practice helped me today",
			Content:        "Had a really tough morning but took 10 minutes to do some breathing exercises. Amazing how much it helped center me. Sharing some hope for anyone having a difficult day.",
			Author:         "Sarah M.",
			AuthorInitials: "SM",
			Category:       "Mindfulness",
			Timestamp:      "4 hours ago",
			Likes:          24,
			Replies:        6,
			IsLiked:        true,
			Tags:           []string{"mindfulness", "success", "breathing"},
			CreatedAt:      now.Add(-4 * time.Hour),
		},
		{
			ID:             "3",
			Title:          "Supporting a friend through depression",
			Content:        "My close friend has been struggling with depression and I want to be there for them. What are some ways I can offer support without overstepping boundaries?",
			Author:         "Anonymous",
			AuthorInitials: "A",
			Category:       "Support",
			Timestamp:      "6 hours ago",
			Likes:          18,
			Replies:        12,
			IsAnonymous:    true,
			Tags:           []string{"friendship", "depression", "support"},
			CreatedAt:      now.Add(-6 * time.Hour),
		},
		{
			ID:             "4",
			Title:          "Celebrating small wins",
			Content:        "Got out of bed, took a shower, and made breakfast this morning. Might seem small but it's been hard lately. Celebrating the little victories!",
			Author:         "Alex R.",
			AuthorInitials: "AR",
			Category:       "Progress",
			Timestamp:      "1 day ago",
			Likes:          45,
			Replies:        15,
			IsLiked:        true,
			Tags:           []string{"progress", "self-care", "victory"},
			CreatedAt:      now.Add(-24 * time.Hour),
		},
	}
}
