package api

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// language codes of wikipedia editions, e.g. "en", "als", "zh-min-nan"
var wikiLangRe = regexp.MustCompile(`^[a-z]{2,3}(-[a-z]{1,8})*$`)

var validWikiLang validator.Func = func(fl validator.FieldLevel) bool {
	lang, ok := fl.Field().Interface().(string)
	return ok && wikiLangRe.MatchString(lang)
}

// jsonTagName makes validation errors refer to fields by their json names.
func jsonTagName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// RegisterValidators configures gin's validator engine, must be called before serving.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected validator engine")
	}

	v.RegisterTagNameFunc(jsonTagName)

	return v.RegisterValidation("wiki_lang", validWikiLang)
}
