// Package diag surfaces shader compile and program link diagnostics.
//
// It does not import GL itself; callers hand in a Querier bound to the
// GL entry points, which keeps the helpers usable without a context.
package diag

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
)

// GL enum values used by the helpers. They are fixed by the OpenGL
// specification and identical across every binding version.
const (
	glFalse       = 0
	compileStatus = 0x8B81
	linkStatus    = 0x8B82
	infoLogLength = 0x8B84
)

// Querier is one GL object kind's pair of status and info-log calls,
// e.g. glGetShaderiv/glGetShaderInfoLog.
type Querier interface {
	Iv(object uint32, pname uint32, params *int32)
	InfoLog(object uint32, bufSize int32, length *int32, infoLog *uint8)
}

// Report is the outcome of inspecting one shader or program object.
type Report struct {
	Object uint32
	Where  string
	OK     bool
	Log    string
}

func (r Report) Error() string {
	if r.Log == "" {
		return fmt.Sprintf("%s failed", r.Where)
	}
	return fmt.Sprintf("%s failed: %s", r.Where, r.Log)
}

// Err returns nil for a successful report.
func (r Report) Err() error {
	if r.OK {
		return nil
	}
	return r
}

// ShaderInfoLog reports the compile result of shader. where names the
// stage in the "Compile Error in ..." message.
func ShaderInfoLog(q Querier, logger *slog.Logger, shader uint32, where string) Report {
	r := inspect(q, shader, compileStatus)
	r.Where = where
	if !r.OK {
		logger.Error("Compile Error in " + where)
	}
	if r.Log != "" {
		logger.Warn(r.Log, "stage", where)
	}
	return r
}

// ProgramInfoLog reports the link result of program.
func ProgramInfoLog(q Querier, logger *slog.Logger, program uint32) Report {
	r := inspect(q, program, linkStatus)
	r.Where = "link"
	if !r.OK {
		logger.Error("Link Error.")
	}
	if r.Log != "" {
		logger.Warn(r.Log, "stage", "link")
	}
	return r
}

func inspect(q Querier, object uint32, statusEnum uint32) Report {
	r := Report{Object: object}

	var status int32
	q.Iv(object, statusEnum, &status)
	r.OK = status != glFalse

	var bufSize int32
	q.Iv(object, infoLogLength, &bufSize)

	// a length of 1 is just the terminating NUL
	if bufSize > 1 {
		buf := make([]uint8, bufSize)
		var length int32
		q.InfoLog(object, bufSize, &length, &buf[0])
		r.Log = trimLog(buf, length)
	}
	return r
}

func trimLog(buf []uint8, length int32) string {
	if length > 0 && int(length) <= len(buf) {
		buf = buf[:length]
	}
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	return string(bytes.TrimRight(buf, "\r\n"))
}

// Reports returns the failed Reports carried by err, which may be a single
// Report or several joined with errors.Join.
func Reports(err error) []Report {
	switch e := err.(type) {
	case nil:
		return nil
	case Report:
		return []Report{e}
	case interface{ Unwrap() []error }:
		var reports []Report
		for _, inner := range e.Unwrap() {
			reports = append(reports, Reports(inner)...)
		}
		return reports
	}
	var r Report
	if errors.As(err, &r) {
		return []Report{r}
	}
	return nil
}
