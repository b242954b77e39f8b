package validation

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/devconnect/devconnect-api/pkg/response"
)

// Init configures the global validator used by Gin's binding to report field
// names from json tags. Must run once before the engine serves requests.
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// labels maps json field names to the human label used in error messages when
// simple capitalization is not enough.
var labels = map[string]string{
	"fieldofstudy": "Field of study",
}

func labelFor(field string) string {
	if l, ok := labels[field]; ok {
		return l
	}
	if field == "" {
		return "Field"
	}
	return strings.ToUpper(field[:1]) + field[1:]
}

// ToFieldErrors converts binding errors into the ordered {msg, param} list of
// the error envelope. Order follows struct field declaration order, which is
// the rule declaration order of each endpoint.
func ToFieldErrors(err error) []response.ErrorItem {
	if err == nil {
		return nil
	}

	var se *json.SyntaxError
	var ute *json.UnmarshalTypeError
	if errors.As(err, &se) || errors.As(err, &ute) {
		return []response.ErrorItem{{Msg: "Invalid JSON payload"}}
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]response.ErrorItem, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, response.ErrorItem{
				Msg:   messageFor(fe),
				Param: fe.Field(),
			})
		}
		return out
	}

	return []response.ErrorItem{{Msg: "Invalid payload"}}
}

func messageFor(fe validator.FieldError) string {
	label := labelFor(fe.Field())
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "email":
		return "Please include a valid email"
	case "min":
		return "Please enter a " + strings.ToLower(label) + " with " + fe.Param() + " or more characters"
	case "max":
		return label + " must be at most " + fe.Param() + " characters"
	default:
		return label + " is invalid"
	}
}
