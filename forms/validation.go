// Package forms defines the request bodies the HTTP surface accepts and how they are validated.
// File: forms/validation.go
package forms

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"go-ultimate-hub/logger"
	"go-ultimate-hub/models"
)

var registerOnce sync.Once

// Register installs the custom validators on gin's binding engine. It is safe to call more
// than once.
func Register() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			logger.Error.Println("[forms.Register] binding engine is not go-playground/validator")
			return
		}
		if err := RegisterOn(v); err != nil {
			logger.Error.Printf("[forms.Register] %v", err)
		}
	})
}

// RegisterOn installs the custom validators and json field naming on v.
func RegisterOn(v *validator.Validate) error {
	v.RegisterTagNameFunc(jsonFieldName)

	custom := map[string]validator.Func{
		"eventtype":      validEventType,
		"role":           validRole,
		"assessmenttype": validAssessmentType,
		"isodate":        validISODate,
	}
	for tag, fn := range custom {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s: %w", tag, err)
		}
	}
	return nil
}

func jsonFieldName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

func validEventType(fl validator.FieldLevel) bool {
	_, err := models.ParseEventType(fl.Field().String())
	return err == nil
}

func validRole(fl validator.FieldLevel) bool {
	_, err := models.ParseRole(fl.Field().String())
	return err == nil
}

func validAssessmentType(fl validator.FieldLevel) bool {
	_, err := models.ParseAssessmentType(fl.Field().String())
	return err == nil
}

func validISODate(fl validator.FieldLevel) bool {
	_, err := models.ParseDate(fl.Field().String())
	return err == nil
}

// FieldErrors turns a binding error into per-field messages. Errors that are not about a
// specific field are reported under "body".
func FieldErrors(err error) map[string]string {
	out := map[string]string{}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["body"] = "request body is malformed"
		return out
	}
	for _, fe := range verrs {
		out[fieldPath(fe)] = message(fe)
	}
	return out
}

// fieldPath drops the top-level struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "min":
		switch fe.Kind() {
		case reflect.String:
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		case reflect.Slice:
			return fmt.Sprintf("must have at least %s entries", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be less than or equal to %s", fe.Param())
	case "eventtype":
		return "must be one of Tournament, Workshop, Meetup"
	case "role":
		return "must be one of Admin, Organizer, Participant, Coach"
	case "assessmenttype":
		return "must be Baseline or Endline"
	case "isodate":
		return "must be an ISO date (YYYY-MM-DD)"
	}
	return fmt.Sprintf("failed %s validation", fe.Tag())
}
