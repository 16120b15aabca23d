package examperiod

type CreateExamPeriodRequest struct {
	Name         string  `json:"name" binding:"required"`
	StartDate    string  `json:"start_date" binding:"required"`
	EndDate      string  `json:"end_date" binding:"required"`
	YearGroup    int     `json:"year_group" binding:"required"`
	AffectedLabs []int64 `json:"affected_labs" binding:"required"`
}

type ToggleActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}
