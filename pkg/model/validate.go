package model

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/goliatone/go-formaria/pkg/aria"
)

// ErrInvalidForm is wrapped by every ValidationError.
var ErrInvalidForm = errors.New("model: invalid form")

// Issue is one validation failure.
type Issue struct {
	Path    string
	Rule    string
	Message string
}

// ValidationError collects every issue found in a form.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Issues) == 0 {
		return ErrInvalidForm.Error()
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, issue.Path+": "+issue.Message)
	}
	return ErrInvalidForm.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidForm
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("field_id", func(fl validator.FieldLevel) bool {
			return aria.CheckFieldID(fl.Field().String()) == nil
		})
		_ = v.RegisterValidation("option_value", func(fl validator.FieldLevel) bool {
			return aria.CheckOptionValue(fl.Field().String()) == nil
		})
		_ = v.RegisterValidation("validation_mode", func(fl validator.FieldLevel) bool {
			_, err := aria.ParseValidationMode(fl.Field().String())
			return err == nil
		})

		v.RegisterStructValidation(blockStructLevel, Block{})

		validateInst = v
	})
	return validateInst
}

func blockStructLevel(sl validator.StructLevel) {
	block, ok := sl.Current().Interface().(Block)
	if !ok {
		return
	}
	if block.NeedsOptions() && len(block.Options) == 0 {
		sl.ReportError(block.Options, "options", "Options", "options_required", string(block.ControlKind()))
	}
	if !block.NeedsOptions() && len(block.Options) > 0 {
		sl.ReportError(block.Options, "options", "Options", "options_unexpected", string(block.ControlKind()))
	}
	if block.Role == string(aria.RoleRadioGroup) && block.ControlKind() != ControlRadioGroup {
		sl.ReportError(block.Role, "role", "Role", "role_control", string(block.ControlKind()))
	}
}

// Validate checks a form definition: struct rules, then document-wide id
// uniqueness across every derived id and the form's own id, then unique
// submission names.
func Validate(form Form) error {
	var issues []Issue

	if err := validatorInstance().Struct(form); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("model: validate: %w", err)
		}
		for _, fe := range fieldErrs {
			issues = append(issues, issueFromFieldError(fe))
		}
	}

	issues = append(issues, idCollisions(form)...)
	issues = append(issues, nameCollisions(form)...)

	if len(issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: issues}
}

func issueFromFieldError(fe validator.FieldError) Issue {
	path := fe.Namespace()
	if idx := strings.IndexByte(path, '.'); idx >= 0 {
		path = path[idx+1:]
	}
	return Issue{
		Path:    path,
		Rule:    fe.Tag(),
		Message: describeRule(fe),
	}
}

func describeRule(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "field_id":
		if err := aria.CheckFieldID(fmt.Sprint(fe.Value())); err != nil {
			return err.Error()
		}
		return "is not a valid field id"
	case "option_value":
		if err := aria.CheckOptionValue(fmt.Sprint(fe.Value())); err != nil {
			return err.Error()
		}
		return "is not a valid option value"
	case "validation_mode":
		return fmt.Sprintf("unknown validation mode %q", fe.Value())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "unique":
		return fmt.Sprintf("must not repeat %s", fe.Param())
	case "min":
		return fmt.Sprintf("needs at least %s entries", fe.Param())
	case "options_required":
		return fmt.Sprintf("control %q needs at least one option", fe.Param())
	case "options_unexpected":
		return fmt.Sprintf("control %q does not take options", fe.Param())
	case "role_control":
		return fmt.Sprintf("role radiogroup needs a radio-group control, got %q", fe.Param())
	default:
		return fmt.Sprintf("failed %q", fe.Tag())
	}
}

// idCollisions reports derived ids shared by two blocks, for example a block
// whose id equals another block's option id, or ids that clash with the id of
// the form element itself.
func idCollisions(form Form) []Issue {
	const formOwner = "form"

	owners := make(map[string]string)
	if formID := strings.TrimSpace(form.ID); formID != "" {
		owners[formID] = formOwner
	}

	var issues []Issue
	for _, block := range form.Blocks {
		if block.ID == "" {
			continue
		}
		for _, id := range aria.DerivedIDs(block.ID, block.OptionValues()...) {
			owner, exists := owners[id]
			if !exists {
				owners[id] = block.ID
				continue
			}
			if owner == block.ID {
				continue
			}
			message := fmt.Sprintf("derived id %q already used by block %q", id, owner)
			if owner == formOwner {
				message = fmt.Sprintf("derived id %q already used by the form", id)
			}
			issues = append(issues, Issue{
				Path:    "blocks." + block.ID,
				Rule:    "id_collision",
				Message: message,
			})
		}
	}
	sort.SliceStable(issues, func(i, j int) bool { return issues[i].Path < issues[j].Path })
	return issues
}

// nameCollisions reports blocks submitting under the same name. Server errors
// are keyed by name, so a shared name would route them to one block only.
func nameCollisions(form Form) []Issue {
	owners := make(map[string]string)
	var issues []Issue
	for _, block := range form.Blocks {
		name := block.FieldName()
		if name == "" {
			continue
		}
		owner, exists := owners[name]
		if !exists {
			owners[name] = block.ID
			continue
		}
		issues = append(issues, Issue{
			Path:    "blocks." + block.ID + ".name",
			Rule:    "name_collision",
			Message: fmt.Sprintf("name %q already used by block %q", name, owner),
		})
	}
	return issues
}
