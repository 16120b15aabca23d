package booking

// Requester is the verified principal on whose behalf an operation runs.
// The boundary layer builds it once from the bearer token; services never
// read ambient user state.
type Requester struct {
	ID   int64
	Name string
}

type CreateBookingRequest struct {
	LabID        int64  `json:"lab_id" binding:"required"`
	Date         string `json:"date" binding:"required"`
	StartTime    string `json:"start_time" binding:"required"`
	EndTime      string `json:"end_time" binding:"required"`
	Title        string `json:"title" binding:"required"`
	Purpose      string `json:"purpose"`
	StudentCount int    `json:"student_count"`
	Equipment    string `json:"equipment"`
	YearGroup    int    `json:"year_group" binding:"required"`
	IsExam       bool   `json:"is_exam"`
}

// UpdateBookingRequest merges over the existing record; nil means "leave
// as is". Status is whatever the caller wants the record to end up as —
// the workflow does not reset it automatically.
type UpdateBookingRequest struct {
	LabID        *int64  `json:"lab_id"`
	Date         *string `json:"date"`
	StartTime    *string `json:"start_time"`
	EndTime      *string `json:"end_time"`
	Title        *string `json:"title"`
	Purpose      *string `json:"purpose"`
	StudentCount *int    `json:"student_count"`
	Equipment    *string `json:"equipment"`
	YearGroup    *int    `json:"year_group"`
	IsExam       *bool   `json:"is_exam"`
	Status       *string `json:"status"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
