package users

import "errors"

var (
	ErrSelfSubscription  = errors.New("cannot subscribe to yourself")
	ErrAlreadySubscribed = errors.New("subscription already exists")
	ErrNotSubscribed     = errors.New("subscription does not exist")
)
