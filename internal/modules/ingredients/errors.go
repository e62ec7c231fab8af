package ingredients

import "errors"

var ErrMalformedRow = errors.New("malformed CSV row")
