package report

// SubmitReportRequest carries the multipart form fields of a new report.
// The optional image file travels separately as a *multipart.FileHeader.
type SubmitReportRequest struct {
	Name        string `form:"name" validate:"required"`
	Course      string `form:"course" validate:"required"`
	Contact     string `form:"contact" validate:"required"`
	Category    string `form:"category" validate:"required"`
	Description string `form:"description" validate:"required"`
	Status      string `form:"status"`
}

// ReportResponse is the outbound representation. Image is an absolute URL
// (scheme and host of the serving request) or null.
type ReportResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Course      string  `json:"course"`
	Contact     string  `json:"contact"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	Image       *string `json:"image"`
	Date        string  `json:"date"`
}

// Render shapes a stored Report for the wire, rewriting a relative image
// path against the request's base URL ("http://host").
func Render(r *Report, baseURL string) ReportResponse {
	resp := ReportResponse{
		ID:          r.ID,
		Name:        r.Name,
		Course:      r.Course,
		Contact:     r.Contact,
		Category:    r.Category,
		Description: r.Description,
		Status:      r.Status,
		Date:        r.Date,
	}
	if r.Image.Valid {
		u := baseURL + r.Image.String
		resp.Image = &u
	}
	return resp
}

// RenderList shapes a stored sequence in order.
func RenderList(reports []Report, baseURL string) []ReportResponse {
	out := make([]ReportResponse, 0, len(reports))
	for i := range reports {
		out = append(out, Render(&reports[i], baseURL))
	}
	return out
}
