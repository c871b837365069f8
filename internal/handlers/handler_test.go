package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"

	"github.com/hako/branca"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerkit/internal/ai"
	"careerkit/internal/config"
	"careerkit/internal/services"
	"careerkit/internal/storage"
)

func testServer(t *testing.T) (*httptest.Server, *http.Client) {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	codec := branca.NewBranca("abcd1234abcd1234abcd1234abcd1234")
	codec.SetTTL(uint32(services.TokenLifeSpan.Seconds()))

	gen := ai.NewGenerator(config.Config{}, log)
	s := services.New(storage.NewMemoryStorage(), codec, gen, log, "http://localhost:3000")

	srv := httptest.NewServer(New(s))
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return srv, &http.Client{Jar: jar}
}

func doJSON(t *testing.T, client *http.Client, method, url string, body interface{}) (*http.Response, map[string]json.RawMessage) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	out := map[string]json.RawMessage{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return resp, out
}

func registerAndLogin(t *testing.T, client *http.Client, base, username string) {
	t.Helper()

	resp, _ := doJSON(t, client, "POST", base+"/api/register", map[string]string{
		"username": username,
		"email":    username + "@example.com",
		"password": "hunter22",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = doJSON(t, client, "POST", base+"/api/login", map[string]string{
		"email":    username + "@example.com",
		"password": "hunter22",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	srv, client := testServer(t)

	resp, err := client.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthFlow(t *testing.T) {
	srv, client := testServer(t)

	// anonymous
	resp, _ := doJSON(t, client, "GET", srv.URL+"/api/auth_user", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	registerAndLogin(t, client, srv.URL, "alice")

	// the login cookie carries the session
	resp, body := doJSON(t, client, "GET", srv.URL+"/api/auth_user", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var user struct {
		Username string `json:"username"`
	}
	require.NoError(t, json.Unmarshal(body["user"], &user))
	assert.Equal(t, "alice", user.Username)

	// logout clears it
	resp, _ = doJSON(t, client, "POST", srv.URL+"/api/logout", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, client, "GET", srv.URL+"/api/auth_user", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLoginRejectsBadPassword(t *testing.T) {
	srv, client := testServer(t)

	resp, _ := doJSON(t, client, "POST", srv.URL+"/api/register", map[string]string{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "hunter22",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = doJSON(t, client, "POST", srv.URL+"/api/login", map[string]string{
		"email":    "alice@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestPostLifecycle(t *testing.T) {
	srv, client := testServer(t)

	// creating a post requires a session
	resp, _ := doJSON(t, client, "POST", srv.URL+"/api/posts", map[string]interface{}{
		"title": "t", "content": "c", "category": "General",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	registerAndLogin(t, client, srv.URL, "alice")

	resp, body := doJSON(t, client, "POST", srv.URL+"/api/posts", map[string]interface{}{
		"title":    "Interview prep",
		"content":  "How should I prepare?",
		"category": "Interview Tips",
		"tags":     []string{"interviews"},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var post struct {
		ID       string `json:"id"`
		Title    string `json:"title"`
		Category string `json:"category"`
	}
	require.NoError(t, json.Unmarshal(body["post"], &post))
	assert.Equal(t, "Interview prep", post.Title)
	require.NotEmpty(t, post.ID)

	// reading is public
	anon := &http.Client{}
	resp, body = doJSON(t, anon, "GET", srv.URL+"/api/posts/"+post.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body = doJSON(t, anon, "GET", srv.URL+"/api/posts?category=Interview+Tips", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var pg struct {
		Total int `json:"total"`
		Pages int `json:"pages"`
	}
	require.NoError(t, json.Unmarshal(body["pagination"], &pg))
	assert.Equal(t, 1, pg.Total)
	assert.Equal(t, 1, pg.Pages)

	// like, then unlike
	resp, body = doJSON(t, client, "POST", srv.URL+"/api/likes", map[string]string{"postId": post.ID})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var likes []string
	require.NoError(t, json.Unmarshal(body["likes"], &likes))
	assert.Len(t, likes, 1)

	resp, body = doJSON(t, client, "POST", srv.URL+"/api/likes", map[string]string{"postId": post.ID})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body["likes"], &likes))
	assert.Empty(t, likes)

	// delete
	resp, _ = doJSON(t, client, "DELETE", srv.URL+"/api/posts/"+post.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, anon, "GET", srv.URL+"/api/posts/"+post.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPostForbiddenForOtherUser(t *testing.T) {
	srv, alice := testServer(t)
	registerAndLogin(t, alice, srv.URL, "alice")

	resp, body := doJSON(t, alice, "POST", srv.URL+"/api/posts", map[string]interface{}{
		"title": "mine", "content": "c", "category": "General",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var post struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(body["post"], &post))

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	bob := &http.Client{Jar: jar}
	registerAndLogin(t, bob, srv.URL, "bob")

	resp, _ = doJSON(t, bob, "PUT", srv.URL+"/api/posts/"+post.ID, map[string]interface{}{
		"title": "hijacked", "content": "c", "category": "General",
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = doJSON(t, bob, "DELETE", srv.URL+"/api/posts/"+post.ID, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestCommentFlow(t *testing.T) {
	srv, client := testServer(t)
	registerAndLogin(t, client, srv.URL, "alice")

	resp, body := doJSON(t, client, "POST", srv.URL+"/api/posts", map[string]interface{}{
		"title": "t", "content": "c", "category": "General",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var post struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(body["post"], &post))

	resp, body = doJSON(t, client, "POST", srv.URL+"/api/comments", map[string]string{
		"postId": post.ID, "content": "first!",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var comment struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(body["comment"], &comment))

	resp, _ = doJSON(t, client, "POST", srv.URL+"/api/comments", map[string]string{
		"postId": post.ID, "content": "a reply", "parentCommentId": comment.ID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body = doJSON(t, &http.Client{}, "GET", srv.URL+"/api/comments?postId="+post.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var threads []struct {
		Content string `json:"content"`
		Replies []struct {
			Content string `json:"content"`
		} `json:"replies"`
	}
	require.NoError(t, json.Unmarshal(body["threads"], &threads))
	require.Len(t, threads, 1)
	assert.Equal(t, "first!", threads[0].Content)
	require.Len(t, threads[0].Replies, 1)
	assert.Equal(t, "a reply", threads[0].Replies[0].Content)
}

func TestRoadmapEndpoints(t *testing.T) {
	srv, client := testServer(t)
	registerAndLogin(t, client, srv.URL, "alice")

	resp, body := doJSON(t, client, "POST", srv.URL+"/api/roadmaps", map[string]string{
		"jobTitle":       "Backend Developer",
		"level":          "BEGINNER",
		"timeRange":      "1-YEAR",
		"roadmapContent": "<div>plan</div>",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var roadmap struct {
		ID      string `json:"id"`
		IsOwner bool   `json:"isOwner"`
	}
	require.NoError(t, json.Unmarshal(body["roadmap"], &roadmap))
	assert.True(t, roadmap.IsOwner)

	// public read
	resp, _ = doJSON(t, &http.Client{}, "GET", srv.URL+"/api/roadmaps/"+roadmap.ID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, _ = doJSON(t, &http.Client{}, "GET", srv.URL+"/api/roadmaps", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// the Mine filter needs a session
	resp, _ = doJSON(t, &http.Client{}, "GET", srv.URL+"/api/roadmaps?myRoadmaps=true", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, _ = doJSON(t, client, "DELETE", srv.URL+"/api/roadmaps/"+roadmap.ID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestResumeEndpoints(t *testing.T) {
	srv, client := testServer(t)

	resp, _ := doJSON(t, client, "GET", srv.URL+"/api/resumes", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	registerAndLogin(t, client, srv.URL, "alice")

	resp, body := doJSON(t, client, "POST", srv.URL+"/api/resumes", map[string]interface{}{
		"personalInfo":     map[string]string{"name": "Alice"},
		"generatedContent": map[string]interface{}{"summary": "Engineer.", "sections": []interface{}{}},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var resume struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(body["resume"], &resume))

	resp, body = doJSON(t, client, "GET", srv.URL+"/api/resumes", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var resumes []json.RawMessage
	require.NoError(t, json.Unmarshal(body["resumes"], &resumes))
	assert.Len(t, resumes, 1)

	resp, _ = doJSON(t, client, "DELETE", srv.URL+"/api/resumes/"+resume.ID, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAssistantRequiresMessage(t *testing.T) {
	srv, client := testServer(t)

	resp, _ := doJSON(t, client, "POST", srv.URL+"/api/assistant", map[string]string{"message": ""})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, client, "POST", srv.URL+"/api/practice", map[string]string{"topic": ""})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
