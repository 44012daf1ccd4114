package model

import "errors"

var (
	// ErrBlogNotFound covers both a genuinely absent record and, on the
	// public view path, an unpublished one. The two are indistinguishable
	// to callers so draft existence never leaks.
	ErrBlogNotFound = errors.New("blog not found")

	// ErrTitleAlreadyExists is the store's unique-title conflict, surfaced
	// by insert and by title-changing updates.
	ErrTitleAlreadyExists = errors.New("blog title already exists")

	// ErrNotBlogOwner means the caller is authenticated but is not the
	// record's author. Kept distinct from ErrBlogNotFound at this layer;
	// the boundary may mask it if hiding existence is desired.
	ErrNotBlogOwner = errors.New("caller is not the blog owner")
)
