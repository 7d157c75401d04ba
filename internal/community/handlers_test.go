package community

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/maheshh3003/SAFE/internal/auth"
	"github.com/maheshh3003/SAFE/internal/stream"

	"github.com/gofiber/fiber/v2"
)

func testApp(store *Store, hub *stream.Hub, who *auth.Identity) *fiber.App {
	app := fiber.New()
	identity := func(c *fiber.Ctx) error {
		if who != nil {
			c.Locals(auth.IdentityKey, who)
		}
		return c.Next()
	}
	RegisterRoutes(app.Group("/community"), store, hub, identity)
	return app
}

type postsResponse struct {
	Posts []Post `json:"posts"`
	Stats Stats  `json:"stats"`
}

type mutationResponse struct {
	Message     string `json:"message"`
	Post        Post   `json:"post"`
	DeletedPost Post   `json:"deletedPost"`
	Stats       Stats  `json:"stats"`
}

func TestListPostsHandler(t *testing.T) {
	app := testApp(NewStore(SeedPosts()), nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/community/posts", nil)
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("list status: %v", err)
	}

	var body postsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Posts) != 4 || body.Stats.TotalPosts != 4 {
		t.Fatalf("unexpected list body")
	}
}

func TestCreatePostHandler(t *testing.T) {
	hub := stream.NewHub(nil)
	sub := hub.Register(FeedTopic)
	defer hub.Unregister(sub)

	app := testApp(NewStore(nil), hub, &auth.Identity{Name: "Alex R."})

	payload, _ := json.Marshal(CreateInput{Title: "Hi", Content: "Hello world", Category: "Support"})
	req := httptest.NewRequest(http.MethodPost, "/community/posts", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("create status: %v", err)
	}

	var body mutationResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Post.Author != "Alex R." || body.Post.AuthorInitials != "AR" {
		t.Fatalf("unexpected author: %+v", body.Post)
	}

	select {
	case msg := <-sub.Send:
		var event struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(msg, &event); err != nil || event.Type != "post_created" {
			t.Fatalf("unexpected event: %s", msg)
		}
	case <-time.After(100 * time.Millisecond):
		t.Fatalf("expected feed event")
	}
}

func TestCreatePostHandlerMissingFields(t *testing.T) {
	app := testApp(NewStore(nil), nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/community/posts", bytes.NewReader([]byte(`{"title":"only"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, _ := app.Test(req)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected bad request")
	}
}

func TestReactHandler(t *testing.T) {
	store := NewStore(nil)
	post, _, _ := store.Create(CreateInput{Title: "t", Content: "c", Category: "Support"}, nil)
	app := testApp(store, nil, nil)

	req := httptest.NewRequest(http.MethodPatch, "/community/posts?id="+post.ID+"&action=like", nil)
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("react status: %v", err)
	}

	var body mutationResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Post.Likes != 1 {
		t.Fatalf("expected 1 like, got %d", body.Post.Likes)
	}
}

func TestReactHandlerErrors(t *testing.T) {
	app := testApp(NewStore(nil), nil, nil)

	req := httptest.NewRequest(http.MethodPatch, "/community/posts?id=abc", nil)
	resp, _ := app.Test(req)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing action")
	}

	req = httptest.NewRequest(http.MethodPatch, "/community/posts?id=abc&action=like", nil)
	resp, _ = app.Test(req)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown post")
	}
}

func TestDeleteHandler(t *testing.T) {
	store := NewStore(nil)
	post, _, _ := store.Create(CreateInput{Title: "t", Content: "c", Category: "Support"}, &auth.Identity{Name: "Jane Doe"})

	app := testApp(store, nil, &auth.Identity{Name: "John Smith"})
	req := httptest.NewRequest(http.MethodDelete, "/community/posts?id="+post.ID, nil)
	resp, _ := app.Test(req)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 for non-author, got %d", resp.StatusCode)
	}

	app = testApp(store, nil, &auth.Identity{Name: "Jane Doe"})
	req = httptest.NewRequest(http.MethodDelete, "/community/posts?id="+post.ID, nil)
	resp, err := app.Test(req)
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("expected author delete to succeed")
	}

	var body mutationResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.DeletedPost.ID != post.ID {
		t.Fatalf("unexpected deleted post")
	}

	req = httptest.NewRequest(http.MethodDelete, "/community/posts", nil)
	resp, _ = app.Test(req)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing id")
	}
}
