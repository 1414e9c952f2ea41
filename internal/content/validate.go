package content

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	itemIDPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)
	linkSchemes   = map[string]struct{}{"http": {}, "https": {}, "mailto": {}}
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})

		_ = v.RegisterValidation("item_id", func(fl validator.FieldLevel) bool {
			return itemIDPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("link_url", func(fl validator.FieldLevel) bool {
			return validLinkURL(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

func validLinkURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	if _, ok := linkSchemes[strings.ToLower(u.Scheme)]; !ok {
		return false
	}
	if u.Scheme == "mailto" {
		return u.Opaque != ""
	}
	return u.Host != ""
}

// Validate checks field rules on the whole catalog and that item IDs are
// unique within each collection.
func Validate(c *Catalog) error {
	if c == nil {
		return NewValidationError("catalog", "catalog is nil", nil)
	}

	if err := validatorInstance().Struct(c); err != nil {
		return convertValidationError(err)
	}

	all := c.Collections()
	for _, name := range CollectionOrder {
		if err := uniqueIDs(name, all[name]); err != nil {
			return err
		}
	}

	return nil
}

// ValidateItem checks a single item independent of its collection.
func ValidateItem(it Item) error {
	if err := validatorInstance().Struct(it); err != nil {
		return convertValidationError(err)
	}
	return nil
}

func uniqueIDs(collection string, items []Item) error {
	seen := make(map[string]int, len(items))
	for i, it := range items {
		if first, ok := seen[it.ID]; ok {
			field := fmt.Sprintf("%s[%d].id", collection, i)
			return NewValidationError(field, fmt.Sprintf("duplicate id %q (first used at %s[%d])", it.ID, collection, first), nil)
		}
		seen[it.ID] = i
	}
	return nil
}

func convertValidationError(err error) error {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		field := fieldName(fe)
		return NewValidationError(field, fmt.Sprintf("%s failed validation for tag '%s'", field, fe.Tag()), err)
	}
	return NewValidationError("catalog", err.Error(), err)
}

func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}
