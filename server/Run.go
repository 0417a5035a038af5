package server

import (
	"net/http"

	"github.com/blinky-z/PostsAPI/handler/restapi"
	"github.com/blinky-z/PostsAPI/service/postService"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// NewRouter - builds the HTTP handler serving the posts API on top of the given store
func NewRouter(store *postService.Store, allowedOrigins []string, log *logrus.Logger) http.Handler {
	postAPIHandler := restapi.NewPostAPIHandler(store, log.WithField("component", "restApi.post"))

	router := mux.NewRouter()
	router.NotFoundHandler = restapi.NotFoundHandler()
	router.MethodNotAllowedHandler = restapi.MethodNotAllowedHandler()

	router.HandleFunc("/api/hc", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("GET")

	router.Handle("/api/posts", postAPIHandler.GetPostsHandler()).Methods("GET")
	router.Handle("/api/posts/search", postAPIHandler.SearchPostsHandler()).Methods("GET")
	router.Handle("/api/posts", postAPIHandler.CreatePostHandler()).Methods("POST")
	router.Handle("/api/posts/{id:[0-9]+}", postAPIHandler.GetCertainPostHandler()).Methods("GET")
	router.Handle("/api/posts/{id:[0-9]+}", postAPIHandler.UpdatePostHandler()).Methods("PUT")
	router.Handle("/api/posts/{id:[0-9]+}", postAPIHandler.DeletePostHandler()).Methods("DELETE")

	cors := handlers.CORS(
		handlers.AllowedOrigins(allowedOrigins),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", restapi.RequestIDHeader}),
		handlers.ExposedHeaders([]string{restapi.RequestIDHeader}),
	)
	recovery := handlers.RecoveryHandler(
		handlers.RecoveryLogger(restapi.RecoveryLogger{Log: log.WithField("component", "recovery")}),
	)
	accessLog := restapi.AccessLog(log.WithField("component", "http"))

	return restapi.RequestID(accessLog(cors(recovery(router))))
}

// RunServer - runs server until the listener fails
func RunServer(config *Config, log *logrus.Logger) error {
	var store *postService.Store
	if config.SeedPosts {
		store = postService.NewStore(postService.DefaultPosts()...)
	} else {
		store = postService.NewStore()
	}

	router := NewRouter(store, config.CORSAllowedOrigins, log)

	log.WithField("address", config.Address()).Info("Starting server")
	return http.ListenAndServe(config.Address(), router)
}
