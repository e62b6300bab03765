package api

import "time"

// User is the profile record exchanged with the backend.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	Twitter   string `json:"twitter,omitempty"`
	Github    string `json:"github,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
}

type Author struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type Post struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Author      Author    `json:"author"`
	CreatedAt   time.Time `json:"createdAt"`
}

// PostPage is one page of the post listing, in the order the server sent it.
type PostPage struct {
	Posts []Post `json:"posts"`
	Page  int    `json:"page"`
}

type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type VerifyRequest struct {
	UserID   string `json:"userId"`
	OTP      int    `json:"otp"`
	Username string `json:"username"`
}

type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateUserRequest always carries every field, including untouched
// optional URLs, so no omitempty here.
type UpdateUserRequest struct {
	Email     string `json:"email"`
	Username  string `json:"username"`
	Twitter   string `json:"twitter"`
	Github    string `json:"github"`
	Linkedin  string `json:"linkedin"`
	Portfolio string `json:"portfolio"`
}

type signupResponse struct {
	User struct {
		ID string `json:"id"`
	} `json:"user"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type userResponse struct {
	User User `json:"user"`
}
