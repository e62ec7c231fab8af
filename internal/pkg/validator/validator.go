package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var usernameRe = regexp.MustCompile(`^[\w.@+-]+$`)

// RegisterBindings adds the custom rules to gin's binding engine. The
// "username" tag rejects "me" (reserved for the profile shortcut route) and
// anything outside letters, digits and .@+- characters.
func RegisterBindings() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s != "me" && usernameRe.MatchString(s)
	})
}
