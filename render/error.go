package render

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// GLError is returned when OpenGL reports an error code after an operation.
type GLError struct {
	Op   string // Operation that was checked.
	Code uint32 // Value returned by glGetError.
}

func (e *GLError) Error() string {
	return fmt.Sprintf("glGetError(%s): %s (%#x)", e.Op, glErrorName(e.Code), e.Code)
}

// checkError returns a *GLError if OpenGL has an error flag set.
func checkError(op string) error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		return &GLError{Op: op, Code: code}
	}
	return nil
}

func glErrorName(code uint32) string {
	switch code {
	case gl.INVALID_ENUM:
		return "GL_INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "GL_INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "GL_INVALID_OPERATION"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "GL_OUT_OF_MEMORY"
	default:
		return "unknown error"
	}
}

// ErrorSet defines a list of one or more errors and is itself an error.
type ErrorSet []error

func (e ErrorSet) Len() int {
	return len(e)
}

func (e *ErrorSet) Append(args ...error) {
	for _, err := range args {
		if err != nil {
			*e = append(*e, err)
		}
	}
}

func (e ErrorSet) Error() string {
	var sb strings.Builder
	for _, err := range e {
		sb.WriteString(err.Error() + "\n")
	}
	return sb.String()
}
