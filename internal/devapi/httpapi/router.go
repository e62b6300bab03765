// Package httpapi exposes the development backend over the REST contract the
// scribe client speaks.
package httpapi

import (
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/scribe/internal/devapi/service"
	"github.com/dmitrijs2005/scribe/internal/logging"
	"github.com/gorilla/mux"
)

type Handler struct {
	users  *service.Users
	posts  *service.Posts
	secret []byte
	logger logging.Logger
}

func NewRouter(users *service.Users, posts *service.Posts, secret []byte, l logging.Logger) *mux.Router {
	if l == nil {
		l = logging.Nop{}
	}
	h := &Handler{users: users, posts: posts, secret: secret, logger: l}

	r := mux.NewRouter()
	r.Use(h.requestID, h.accessLog)

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "OK")
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/user/signup", h.signup).Methods(http.MethodPost)
	api.HandleFunc("/user/verify", h.verify).Methods(http.MethodPost)
	api.HandleFunc("/user/signin", h.signin).Methods(http.MethodPost)
	api.Handle("/user/me", h.authenticated(h.me)).Methods(http.MethodGet)
	api.Handle("/user/update/{id}", h.authenticated(h.updateUser)).Methods(http.MethodPut)

	api.HandleFunc("/posts", h.listPosts).Methods(http.MethodGet)
	api.Handle("/posts", h.authenticated(h.createPost)).Methods(http.MethodPost)
	api.Handle("/posts/{id}", h.authenticated(h.deletePost)).Methods(http.MethodDelete)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Not found", nil)
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed", nil)
	})
	return r
}
