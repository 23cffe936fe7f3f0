package validator

import (
	"errors"
	"regexp"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	usernameRe = regexp.MustCompile(`^[\w.@+-]+$`)
	slugRe     = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)
)

var (
	validate *validator.Validate
	ginOnce  sync.Once
)

func init() {
	validate = validator.New()
	mustRegister(validate)
}

// RegisterGin adds the custom tags to gin's binding validator so
// `binding:"username"` works in request DTOs.
func RegisterGin() {
	ginOnce.Do(func() {
		if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
			mustRegister(v)
		}
	})
}

func mustRegister(v *validator.Validate) {
	if err := v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernameRe.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugRe.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
}

// Validate struct fields
func Validate(v interface{}) map[string]string {
	return Fields(validate.Struct(v))
}

// Fields flattens validator errors into field -> failed tag. Errors of any
// other type come back under the "body" key.
func Fields(err error) map[string]string {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"body": "invalid"}
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = fe.Tag()
	}
	return out
}
