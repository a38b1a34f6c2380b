package subscription

import "errors"

var (
	ErrSelfFollow       = errors.New("cannot subscribe to yourself")
	ErrAlreadyFollowing = errors.New("already subscribed to this author")
	ErrNotFollowing     = errors.New("not subscribed to this author")
	ErrAuthorNotFound   = errors.New("author not found")
)
