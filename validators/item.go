package validators

import "errors"

var (
	ErrTitleEmpty         = errors.New("no title provided")
	ErrTitleTooLong       = errors.New("title is too long")
	ErrDescriptionTooLong = errors.New("description is too long")
	ErrNameEmpty          = errors.New("no name provided")
	ErrNameTooLong        = errors.New("name is too long")
)

func ItemValidator(title, description string) error {
	if title == "" {
		return ErrTitleEmpty
	}

	if len(title) > 200 {
		return ErrTitleTooLong
	}

	if len(description) > 1000 {
		return ErrDescriptionTooLong
	}

	return nil
}

func NameValidator(n string) error {
	if n == "" {
		return ErrNameEmpty
	}

	if len(n) > 100 {
		return ErrNameTooLong
	}

	return nil
}
