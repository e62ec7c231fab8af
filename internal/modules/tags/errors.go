package tags

import "errors"

var (
	ErrInvalidColor = errors.New("color must be a HEX value like #FF0000 or #F00")
	ErrSlugTaken    = errors.New("slug is already in use")
)
