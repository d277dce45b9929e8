package dto

// ExportScheduleRequest renders one schedule option in a downloadable format.
type ExportScheduleRequest struct {
	Format string         `json:"format" validate:"required,oneof=csv pdf"`
	Title  string         `json:"title" validate:"omitempty,max=120"`
	Option ScheduleOption `json:"option" validate:"required"`
}
