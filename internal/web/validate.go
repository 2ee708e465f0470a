package web

import (
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/adamwoolhether/plaid/internal/web/errs"
)

var validate *validator.Validate
var translator ut.Translator

func init() {
	validate = validator.New()
	var ok bool
	translator, ok = ut.New(en.New(), en.New()).GetTranslator("en")
	if !ok {
		panic("web: failed to get 'en' translator")
	}

	if err := en_translations.RegisterDefaultTranslations(validate, translator); err != nil {
		panic(err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})
}

// Validate checks the provided model against its declared tags.
func Validate(val any) error {
	if err := validate.Struct(val); err != nil {
		verrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}

		var fields errs.FieldErrors
		for _, verror := range verrors {
			fields = append(fields, errs.FieldError{
				Field: fieldPath(verror),
				Err:   customErrForTag(verror.Tag(), verror),
				Tag:   verror.Tag(),
			})
		}
		return fields
	}

	return nil
}

// Required reports every named key of payload that is absent or empty.
func Required(payload map[string]any, keys ...string) error {
	var missing []string
	for _, k := range keys {
		v, ok := payload[k]
		if list, isList := v.([]any); isList && len(list) == 0 {
			missing = append(missing, k)
			continue
		}
		if !ok || v == nil || validate.Var(v, "required") != nil {
			missing = append(missing, k)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	return errs.Missing(missing...)
}

// fieldPath drops the top-level struct name from the namespace, leaving
// e.g. "options.count".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func customErrForTag(tag string, verror validator.FieldError) string {
	switch tag {
	case "required":
		return "This field is required"
	case "datetime":
		return "must be a date in YYYY-MM-DD format"
	default:
		return verror.Translate(translator)
	}
}
