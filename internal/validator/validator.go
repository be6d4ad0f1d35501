package validator

import (
	"errors"
	"reflect"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/id"
	ut "github.com/go-playground/universal-translator"
	govalidator "github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	id_translations "github.com/go-playground/validator/v10/translations/id"
)

// Translation keys for rules checked against the database rather than by tags.
const (
	// TagExists: a submitted ID does not point at an existing row.
	TagExists = "exists"
	// TagTaken: a value that must be unique is already stored.
	TagTaken = "taken"
)

var (
	// trans is the singleton translator for validation errors.
	trans ut.Translator
	// validate checks form input structs tagged with `validate`.
	validate *govalidator.Validate
)

// ValidationError maps field names to human-readable messages.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return "validation failed: " + strings.Join(names, ", ")
}

// Add records msg for field unless the field already has a message.
func (e *ValidationError) Add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, ok := e.Fields[field]; !ok {
		e.Fields[field] = msg
	}
}

// Setup builds the validator and the translator for locale ("id" or "en").
// Request structs carry `validate` tags only, so Gin's own binding validation is a
// no-op and every rule runs here. Call once during application startup.
func Setup(locale string) {
	enLocale := en.New()
	uni := ut.New(enLocale, enLocale, id.New())

	var found bool
	trans, found = uni.GetTranslator(locale)
	if !found {
		locale = "en"
	}

	validate = govalidator.New(govalidator.WithRequiredStructEnabled())
	configure(validate, locale)
}

func configure(v *govalidator.Validate, locale string) {
	// Use the form (or JSON) tag name for field names in error messages.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"form", "json"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	if locale == "id" {
		_ = id_translations.RegisterDefaultTranslations(v, trans)
		_ = trans.Add(TagExists, "{0} yang dipilih tidak valid", true)
		_ = trans.Add(TagTaken, "{0} sudah digunakan", true)
		return
	}
	_ = en_translations.RegisterDefaultTranslations(v, trans)
	_ = trans.Add(TagExists, "The selected {0} is invalid", true)
	_ = trans.Add(TagTaken, "The {0} has already been taken", true)
}

// Struct validates a form input struct. It returns nil when every rule passes.
func Struct(s interface{}) *ValidationError {
	if err := validate.Struct(s); err != nil {
		return &ValidationError{Fields: TranslateErrors(err)}
	}
	return nil
}

// Message returns the translated message for a custom rule key such as TagExists.
func Message(key, field string) string {
	msg, err := trans.T(key, field)
	if err != nil {
		return field + " is invalid"
	}
	return msg
}

// TranslateErrors takes a binding/validation error and returns a map of
// field name → human-readable error message. If the error is not a
// validation error, it returns a single-key map with "detail".
func TranslateErrors(err error) map[string]string {
	fields := make(map[string]string)

	var ve govalidator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			fields[fe.Field()] = fe.Translate(trans)
		}
		return fields
	}

	// Not a validation error (e.g., JSON syntax error).
	fields["detail"] = err.Error()
	return fields
}

// Bind decodes the request body (JSON or form, by Content-Type) into dst and validates it.
// Returns nil on success or a translated field error map on failure.
func Bind(c *gin.Context, dst interface{}) map[string]string {
	if err := c.ShouldBind(dst); err != nil {
		return TranslateErrors(err)
	}
	if verr := Struct(dst); verr != nil {
		return verr.Fields
	}
	return nil
}
