package usecase

import "errors"

// ErrNoUsersMatched is returned when a non-blank handle query matches
// nobody.
var ErrNoUsersMatched = errors.New("no users matched the search")
