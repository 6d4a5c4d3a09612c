package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/yungbote/claimline-backend/internal/http/response"
)

// Issue is one itemized shape violation.
type Issue struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Param string `json:"param,omitempty"`
}

var validatorOnce sync.Once

// ConfigureValidator makes gin's validator report json field names and
// accept ids exactly as parseID does, in any letter case.
func ConfigureValidator() {
	validatorOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("uuid", func(fl validator.FieldLevel) bool {
			_, err := parseID(fl.Field().String())
			return err == nil
		})
		_ = v.RegisterValidation("uniqueids", uniqueIDs)
	})
}

// parseID accepts the 36 character hyphenated form in any case.
func parseID(raw string) (uuid.UUID, error) {
	if len(raw) != 36 {
		return uuid.Nil, fmt.Errorf("invalid id length %d", len(raw))
	}
	return uuid.Parse(raw)
}

// uniqueIDs fails when two entries name the same id, ignoring case.
// Entries that do not parse are left to the per-element uuid tag.
func uniqueIDs(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.Slice {
		return false
	}
	seen := make(map[uuid.UUID]struct{}, field.Len())
	for i := 0; i < field.Len(); i++ {
		id, err := parseID(field.Index(i).String())
		if err != nil {
			continue
		}
		if _, dup := seen[id]; dup {
			return false
		}
		seen[id] = struct{}{}
	}
	return true
}

// bindJSON decodes and validates the body, writing a 400 on failure.
func bindJSON(c *gin.Context, dst any) bool {
	ConfigureValidator()
	if err := c.ShouldBindJSON(dst); err != nil {
		respondInvalid(c, err)
		return false
	}
	return true
}

func respondInvalid(c *gin.Context, err error) {
	_ = c.Error(err)
	response.RespondAPIError(c, http.StatusBadRequest, response.APIError{
		Code:    response.CodeInvalidPayload,
		Message: "request payload failed validation",
		Details: gin.H{"issues": issuesFrom(err)},
	})
}

func issuesFrom(err error) []Issue {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]Issue, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, Issue{
				Field: trimRoot(fe.Namespace()),
				Tag:   fe.Tag(),
				Param: fe.Param(),
			})
		}
		return out
	}
	return []Issue{{Field: "", Tag: "json", Param: err.Error()}}
}

// trimRoot drops the struct name validator prefixes to every namespace.
func trimRoot(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	raw := c.Param("id")
	id, err := parseID(raw)
	if err != nil {
		_ = c.Error(err)
		response.RespondAPIError(c, http.StatusBadRequest, response.APIError{
			Code:    response.CodeInvalidPayload,
			Message: fmt.Sprintf("invalid id %q", raw),
			Details: gin.H{"issues": []Issue{{Field: "id", Tag: "uuid"}}},
		})
		return uuid.Nil, false
	}
	return id, true
}

// parseUUIDs converts already-validated uuid strings.
func parseUUIDs(raw []string) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		out = append(out, uuid.MustParse(s))
	}
	return out
}
