package dictionary

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

// wordPattern accepts a letter followed by letters, whitespace, hyphens or apostrophes.
var wordPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z\s\-']*$`)

// Validator checks words and entries before they reach a Store.
// It is safe for concurrent use.
type Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

type wordInput struct {
	Word string `yaml:"word" validate:"required,dictword"`
}

// NewValidator creates a Validator with English messages.
func NewValidator() (*Validator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := validate.RegisterValidation("dictword", isDictionaryWord); err != nil {
		return nil, fmt.Errorf("failed to register dictword validation: %w", err)
	}
	if err := validate.RegisterTranslation("dictword", trans, func(ut ut.Translator) error {
		return ut.Add("dictword", "{0} must start with a letter and contain only letters, spaces, hyphens, and apostrophes", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("dictword", fe.Field())
		return t
	}); err != nil {
		return nil, fmt.Errorf("failed to register dictword translation: %w", err)
	}

	return &Validator{
		validate:   validate,
		translator: trans,
	}, nil
}

func isDictionaryWord(fl validator.FieldLevel) bool {
	return IsValidWord(fl.Field().String())
}

// IsValidWord reports whether the trimmed word is non-empty and has the shape of a dictionary word.
func IsValidWord(word string) bool {
	return wordPattern.MatchString(strings.TrimSpace(word))
}

// ValidateWord checks a word used for lookup. The word is trimmed before checking.
func (v *Validator) ValidateWord(word string) error {
	return v.check(wordInput{Word: strings.TrimSpace(word)})
}

// ValidateEntry checks a word and definition pair. Both are trimmed before checking.
func (v *Validator) ValidateEntry(entry Entry) error {
	return v.check(entry.Trimmed())
}

func (v *Validator) check(input any) error {
	err := v.validate.Struct(input)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("validate.Struct > %w", err)
	}
	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, e.Translate(v.translator))
	}
	return &ValidationError{Messages: messages}
}
