package report

import "errors"

var (
	ErrReportNotFound     = errors.New("report not found")
	ErrReportAccessDenied = errors.New("no access to this report")
	ErrTooManyImages      = errors.New("too many images")
)
