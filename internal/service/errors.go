package service

// ValidationError 业务校验失败
// Message 是对外契约：前端按状态码判断，测试按文本比对，不要随手改措辞
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	ErrNegativeAmount  = &ValidationError{Message: "Amount cannot be negative."}
	ErrInvalidCategory = &ValidationError{Message: "Invalid category."}
	ErrDateTooOld      = &ValidationError{Message: "Date cannot be more than 1 year ago."}
	ErrDateInFuture    = &ValidationError{Message: "Date cannot be in the future."}
	ErrIncompleteRange = &ValidationError{Message: "Both startDate and endDate are required for date range search."}
	ErrRangeInverted   = &ValidationError{Message: "startDate cannot be later than endDate."}
	ErrRangeTooWide    = &ValidationError{Message: "Date range cannot exceed 30 days."}
	ErrInvalidDate     = &ValidationError{Message: "Invalid date format."}
)
