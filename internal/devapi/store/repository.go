// Package store keeps the development backend's users, pending signup codes
// and posts.
package store

import "context"

type Repository interface {
	AddUser(ctx context.Context, u User) error
	UpdateUser(ctx context.Context, u User) error
	DeleteUser(ctx context.Context, id string) error
	UserByID(ctx context.Context, id string) (User, error)
	UserByEmail(ctx context.Context, email string) (User, error)
	UserByUsername(ctx context.Context, username string) (User, error)

	SaveOTP(ctx context.Context, userID string, otp OTP) error
	OTP(ctx context.Context, userID string) (OTP, error)
	DeleteOTP(ctx context.Context, userID string) error

	AddPost(ctx context.Context, p Post) error
	Post(ctx context.Context, id string) (Post, error)
	// Posts returns every post ordered by creation time, newest last.
	Posts(ctx context.Context) ([]Post, error)
	DeletePost(ctx context.Context, id string) error
}
