package restapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/blinky-z/PostsAPI/models"
	"github.com/blinky-z/PostsAPI/service/postService"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// PostAPIHandler - used for dependency injection
type PostAPIHandler struct {
	store *postService.Store
	log   *logrus.Entry
}

func NewPostAPIHandler(store *postService.Store, log *logrus.Entry) *PostAPIHandler {
	return &PostAPIHandler{
		store: store,
		log:   log,
	}
}

// SearchPostsRequestQueryParams - query params of search request
type SearchPostsRequestQueryParams struct {
	Title   string
	Content string
}

// missingCreatePostFields - names of required fields that are absent or empty
func missingCreatePostFields(request *models.CreatePostRequest) []string {
	var missingFields []string
	if request.Title == nil || *request.Title == "" {
		missingFields = append(missingFields, "title")
	}
	if request.Content == nil || *request.Content == "" {
		missingFields = append(missingFields, "content")
	}
	return missingFields
}

// parsePostID - route only matches digits, so the only possible error is overflow
func parsePostID(r *http.Request) (string, int, bool) {
	postID := mux.Vars(r)["id"]
	id, err := strconv.Atoi(postID)
	if err != nil || id <= 0 {
		return postID, 0, false
	}
	return postID, id, true
}

// GetPostsHandler - this handler serves GET request for all posts
func (api *PostAPIHandler) GetPostsHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		posts := api.store.List()
		RespondWithBody(w, http.StatusOK, posts)
	})
}

// SearchPostsHandler - this handler serves post search requests
func (api *PostAPIHandler) SearchPostsHandler() http.Handler {
	log := api.log
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		queryParams := &SearchPostsRequestQueryParams{
			Title:   r.URL.Query().Get("title"),
			Content: r.URL.Query().Get("content"),
		}

		posts := api.store.Search(&postService.SearchRequest{
			Title:   queryParams.Title,
			Content: queryParams.Content,
		})

		log.WithFields(logrus.Fields{
			"title":   queryParams.Title,
			"content": queryParams.Content,
			"found":   len(posts),
		}).Debug("Posts searched")
		RespondWithBody(w, http.StatusOK, posts)
	})
}

// GetCertainPostHandler - this handler serves GET request for single post
func (api *PostAPIHandler) GetCertainPostHandler() http.Handler {
	log := api.log
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		postID, id, ok := parsePostID(r)
		if !ok {
			RespondWithError(w, http.StatusNotFound, NoSuchPostMessage(postID))
			return
		}

		post, err := api.store.GetByID(id)
		if err != nil {
			log.WithField("post_id", id).Debug("Can't retrieve post: no such post")
			RespondWithError(w, http.StatusNotFound, NoSuchPostMessage(postID))
			return
		}

		RespondWithBody(w, http.StatusOK, post)
	})
}

// CreatePostHandler - this handler serves post creation requests
func (api *PostAPIHandler) CreatePostHandler() http.Handler {
	log := api.log
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		request := models.CreatePostRequest{}
		if _, err := decodeJSONObject(w, r, &request); err != nil {
			log.WithError(err).Warn("Can't create post: invalid body")
			RespondWithError(w, http.StatusBadRequest, BadRequestBody)
			return
		}

		if missingFields := missingCreatePostFields(&request); len(missingFields) != 0 {
			log.WithField("fields", missingFields).Warn("Can't create post: missing required fields")
			RespondWithError(w, http.StatusBadRequest, MissingFieldsMessage(missingFields))
			return
		}

		createdPost := api.store.Save(&postService.SaveRequest{
			Title:   *request.Title,
			Content: *request.Content,
		})

		log.WithField("post_id", createdPost.ID).Info("Post saved")
		RespondWithBody(w, http.StatusCreated, createdPost)
	})
}

// UpdatePostHandler - this handler serves post update requests
func (api *PostAPIHandler) UpdatePostHandler() http.Handler {
	log := api.log
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		postID, id, ok := parsePostID(r)
		if !ok || !api.store.ExistsByID(id) {
			log.WithField("post_id", postID).Warn("Can't update post: no such post")
			RespondWithError(w, http.StatusNotFound, NoSuchPostMessage(postID))
			return
		}

		request := models.UpdatePostRequest{}
		fieldsCount, err := decodeJSONObject(w, r, &request)
		if err == nil && fieldsCount == 0 {
			err = errors.New("body is an empty JSON object")
		}
		if err != nil {
			log.WithError(err).WithField("post_id", id).Warn("Can't update post: invalid body")
			RespondWithError(w, http.StatusBadRequest, BadRequestBody)
			return
		}

		updatedPost, err := api.store.Update(&postService.UpdateRequest{
			ID:      id,
			Title:   request.Title,
			Content: request.Content,
		})
		// post may have been deleted after the existence check
		if err != nil {
			log.WithField("post_id", id).Warn("Can't update post: no such post")
			RespondWithError(w, http.StatusNotFound, NoSuchPostMessage(postID))
			return
		}

		log.WithField("post_id", id).Info("Post updated")
		RespondWithBody(w, http.StatusOK, updatedPost)
	})
}

// DeletePostHandler - this handler serves post deletion requests
func (api *PostAPIHandler) DeletePostHandler() http.Handler {
	log := api.log
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		postID, id, ok := parsePostID(r)
		if !ok {
			RespondWithError(w, http.StatusNotFound, NoSuchPostMessage(postID))
			return
		}

		if err := api.store.DeleteByID(id); err != nil {
			log.WithError(err).Warn("Can't delete post: no such post")
			RespondWithError(w, http.StatusNotFound, NoSuchPostMessage(postID))
			return
		}

		log.WithField("post_id", id).Info("Post deleted")
		RespondWithBody(w, http.StatusOK, &models.MessageResponse{Message: PostDeletedMessage(id)})
	})
}
