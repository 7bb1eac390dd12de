package pkg

import "fmt"

type ErrSubmission struct {
	Cause  string
	Status int
	Err    error
}

func (e ErrSubmission) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s; got error: %s", e.Cause, e.Err)
	}
	return fmt.Sprintf("%s; status: %d", e.Cause, e.Status)
}

func (e ErrSubmission) Unwrap() error {
	return e.Err
}
