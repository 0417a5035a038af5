package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/blinky-z/PostsAPI/models"
	"github.com/blinky-z/PostsAPI/service/postService"
	"github.com/sirupsen/logrus"
	"gotest.tools/v3/assert"
)

// helpful API for testing

// startTestServer - runs the API over a store seeded with the default posts
func startTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	ts := httptest.NewServer(NewRouter(postService.NewStore(postService.DefaultPosts()...), []string{"*"}, log))
	t.Cleanup(ts.Close)
	return ts
}

func sendMessage(t *testing.T, method, address string, body io.Reader) *http.Response {
	t.Helper()

	request, err := http.NewRequest(method, address, body)
	assert.NilError(t, err)
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := http.DefaultClient.Do(request)
	assert.NilError(t, err)
	t.Cleanup(func() { _ = response.Body.Close() })
	return response
}

// API for encoding and decoding messages into/from JSON
func encodeMessage(t *testing.T, message interface{}) io.Reader {
	t.Helper()

	encodedMessage, err := json.Marshal(message)
	assert.NilError(t, err)
	return bytes.NewReader(encodedMessage)
}

func decodeResponse(t *testing.T, response *http.Response, v interface{}) {
	t.Helper()

	assert.NilError(t, json.NewDecoder(response.Body).Decode(v))
}

// checkErrorResponse - check response that should return error message in response body
func checkErrorResponse(t *testing.T, response *http.Response, expectedStatusCode int, expectedErrorMessage string) {
	t.Helper()

	var body models.ErrorResponse
	decodeResponse(t, response, &body)
	assert.Equal(t, response.StatusCode, expectedStatusCode)
	assert.Equal(t, body.Error, expectedErrorMessage)
}

// Helpful API for sending posts handling http requests

func getPosts(t *testing.T, ts *httptest.Server) []models.Post {
	t.Helper()

	response := sendMessage(t, "GET", ts.URL+"/api/posts", nil)
	assert.Equal(t, response.StatusCode, http.StatusOK)

	var posts []models.Post
	decodeResponse(t, response, &posts)
	return posts
}

func searchPosts(t *testing.T, ts *httptest.Server, title, content string) []models.Post {
	t.Helper()

	query := url.Values{}
	if title != "" {
		query.Set("title", title)
	}
	if content != "" {
		query.Set("content", content)
	}
	response := sendMessage(t, "GET", ts.URL+"/api/posts/search?"+query.Encode(), nil)
	assert.Equal(t, response.StatusCode, http.StatusOK)

	var posts []models.Post
	decodeResponse(t, response, &posts)
	return posts
}

func getPost(t *testing.T, ts *httptest.Server, postID int) *http.Response {
	return sendMessage(t, "GET", fmt.Sprintf("%s/api/posts/%d", ts.URL, postID), nil)
}

func createPost(t *testing.T, ts *httptest.Server, message interface{}) *http.Response {
	return sendMessage(t, "POST", ts.URL+"/api/posts", encodeMessage(t, message))
}

func createRawPost(t *testing.T, ts *httptest.Server, body string) *http.Response {
	return sendMessage(t, "POST", ts.URL+"/api/posts", strings.NewReader(body))
}

func updatePost(t *testing.T, ts *httptest.Server, postID int, message interface{}) *http.Response {
	return sendMessage(t, "PUT", fmt.Sprintf("%s/api/posts/%d", ts.URL, postID), encodeMessage(t, message))
}

func updateRawPost(t *testing.T, ts *httptest.Server, postID int, body string) *http.Response {
	return sendMessage(t, "PUT", fmt.Sprintf("%s/api/posts/%d", ts.URL, postID), strings.NewReader(body))
}

func deletePost(t *testing.T, ts *httptest.Server, postID int) *http.Response {
	return sendMessage(t, "DELETE", fmt.Sprintf("%s/api/posts/%d", ts.URL, postID), nil)
}

func postIDs(posts []models.Post) []int {
	ids := make([]int, 0, len(posts))
	for _, post := range posts {
		ids = append(ids, post.ID)
	}
	return ids
}

func TestHealthCheck(t *testing.T) {
	ts := startTestServer(t)

	response := sendMessage(t, "GET", ts.URL+"/api/hc", nil)
	assert.Equal(t, response.StatusCode, http.StatusOK)
	assert.Assert(t, response.Header.Get("X-Request-ID") != "")
}

func TestCORSAllowsAnyOrigin(t *testing.T) {
	ts := startTestServer(t)

	request, err := http.NewRequest("GET", ts.URL+"/api/posts", nil)
	assert.NilError(t, err)
	request.Header.Set("Origin", "http://example.com")

	response, err := http.DefaultClient.Do(request)
	assert.NilError(t, err)
	defer response.Body.Close()

	assert.Equal(t, response.StatusCode, http.StatusOK)
	assert.Equal(t, response.Header.Get("Access-Control-Allow-Origin"), "*")
}

func TestUnknownRoute(t *testing.T) {
	ts := startTestServer(t)

	response := sendMessage(t, "GET", ts.URL+"/api/posts/abc", nil)
	checkErrorResponse(t, response, http.StatusNotFound, "Not found")

	response = sendMessage(t, "PATCH", ts.URL+"/api/posts/1", nil)
	checkErrorResponse(t, response, http.StatusMethodNotAllowed, "Method not allowed")
}
