package http

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// forbiddenIDFragments may not appear in sender or message identifiers
var forbiddenIDFragments = []string{"<", ">", "\"", "'", ";", "--"}

var registerOnce sync.Once

// RegisterValidators installs the custom binding rules used by request models.
// It is safe to call more than once.
func RegisterValidators() error {
	var err error
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			err = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}
		err = v.RegisterValidation("safeid", validateSafeID)
	})
	return err
}

func validateSafeID(fl validator.FieldLevel) bool {
	return isSafeID(fl.Field().String())
}

// isSafeID reports whether id contains none of the forbidden fragments
func isSafeID(id string) bool {
	for _, fragment := range forbiddenIDFragments {
		if strings.Contains(id, fragment) {
			return false
		}
	}
	return true
}
