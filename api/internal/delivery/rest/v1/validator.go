package v1

import (
	"fmt"
	"net/http"
	"reflect"

	"qrisgw/api/internal/domain"
	"qrisgw/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// binds query params into data and validates the struct tags.
// returns false if there is an error (response already written)
func filterQuery(c *gin.Context, data any) bool {
	if err := c.ShouldBindQuery(data); err != nil {
		responseErr(c, http.StatusBadRequest, domain.ErrMsgInternalServerError)
		return false
	}

	v := validator.New()

	err := v.Struct(data)
	if err == nil {
		return true
	}

	validationErrs, castErr := utils.SafeCast[validator.ValidationErrors](err)
	if castErr != nil || len(validationErrs) == 0 {
		responseErr(c, http.StatusBadRequest, domain.ErrMsgInternalServerError)
		return false
	}

	responseErr(c, http.StatusBadRequest, formatValidationErr(data, validationErrs[0]))
	return false
}

func formatValidationErr(data any, err validator.FieldError) string {
	formTag := getFormTag(data, err.Field())

	switch err.Tag() {
	case "required":
		return domain.FmtParamsRequired(formTag)
	case "max":
		return fmt.Sprintf("parameter '%s' must be at most %s characters long", formTag, err.Param())
	case "numeric":
		return domain.ErrMsgMinAmount
	default:
		return fmt.Sprintf("invalid parameter '%s'", formTag)
	}
}

func getFormTag(structType any, fieldName string) string {
	typ := reflect.TypeOf(structType)
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	field, _ := typ.FieldByName(fieldName)
	tag := field.Tag.Get("form")
	if tag == "" {
		return fieldName
	}
	return tag
}
