package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/dmitrijs2005/scribe/internal/devapi/service"
	"github.com/dmitrijs2005/scribe/internal/devapi/store"
	"github.com/gorilla/mux"
)

const defaultPageSize = 6

type userJSON struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	Twitter   string `json:"twitter,omitempty"`
	Github    string `json:"github,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
}

type authorJSON struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type postJSON struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Author      authorJSON `json:"author"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func toUserJSON(u store.User) userJSON {
	return userJSON{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		Twitter:   u.Twitter,
		Github:    u.Github,
		Linkedin:  u.Linkedin,
		Portfolio: u.Portfolio,
	}
}

func toPostJSON(v service.PostView) postJSON {
	return postJSON{
		ID:          v.ID,
		Title:       v.Title,
		Description: v.Description,
		Author:      authorJSON{ID: v.AuthorID, Username: v.AuthorUsername},
		CreatedAt:   v.CreatedAt,
	}
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	id, err := h.users.Signup(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		h.writeServiceError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"user": map[string]string{"id": id}})
}

func (h *Handler) verify(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID   string `json:"userId"`
		OTP      int    `json:"otp"`
		Username string `json:"username"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", map[string]string{"otp": "OTP must be a number"})
		return
	}

	token, err := h.users.Verify(r.Context(), req.UserID, req.OTP)
	if err != nil {
		h.writeServiceError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (h *Handler) signin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	token, err := h.users.Signin(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeServiceError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	u, err := h.users.Get(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		h.writeServiceError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": toUserJSON(u)})
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email     string `json:"email"`
		Username  string `json:"username"`
		Twitter   string `json:"twitter"`
		Github    string `json:"github"`
		Linkedin  string `json:"linkedin"`
		Portfolio string `json:"portfolio"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	err := h.users.Update(r.Context(), userIDFrom(r.Context()), mux.Vars(r)["id"], service.Profile{
		Email:     req.Email,
		Username:  req.Username,
		Twitter:   req.Twitter,
		Github:    req.Github,
		Linkedin:  req.Linkedin,
		Portfolio: req.Portfolio,
	})
	if err != nil {
		h.writeServiceError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Profile updated successfully"})
}

func (h *Handler) listPosts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	fields := map[string]string{}

	page, err := intParam(q.Get("page"), 1)
	if err != nil {
		fields["page"] = "Page must be a number"
	}
	pageSize, err := intParam(q.Get("pageSize"), defaultPageSize)
	if err != nil {
		fields["pageSize"] = "Page size must be a number"
	}
	if len(fields) > 0 {
		writeError(w, http.StatusBadRequest, "Invalid page request", fields)
		return
	}

	views, err := h.posts.List(r.Context(), page, pageSize)
	if err != nil {
		h.writeServiceError(r.Context(), w, err)
		return
	}

	posts := make([]postJSON, 0, len(views))
	for _, v := range views {
		posts = append(posts, toPostJSON(v))
	}
	writeJSON(w, http.StatusOK, map[string]any{"posts": posts, "page": page})
}

func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	callerID := userIDFrom(r.Context())
	p, err := h.posts.Create(r.Context(), callerID, req.Title, req.Description)
	if err != nil {
		h.writeServiceError(r.Context(), w, err)
		return
	}

	view := service.PostView{Post: p}
	if u, err := h.users.Get(r.Context(), callerID); err == nil {
		view.AuthorUsername = u.Username
	}
	writeJSON(w, http.StatusCreated, map[string]any{"post": toPostJSON(view)})
}

func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	err := h.posts.Delete(r.Context(), userIDFrom(r.Context()), mux.Vars(r)["id"])
	if err != nil {
		h.writeServiceError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Post deleted successfully"})
}

func intParam(s string, def int) (int, error) {
	if s == "" {
		return def, nil
	}
	return strconv.Atoi(s)
}
