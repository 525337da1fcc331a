package tenant

import (
	"time"

	"github.com/rentcredit/rentcredit/internal/tenant"
)

type tenantResponse struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Rent      int64         `json:"rent"`
	DueDate   string        `json:"due_date"`
	Status    tenant.Status `json:"status"`
	Reporting bool          `json:"reporting"`
	CreatedAt time.Time     `json:"created_at"`
}

func toResponse(t *tenant.Tenant) tenantResponse {
	return tenantResponse{
		ID:        t.ID,
		Name:      t.Name,
		Rent:      t.Rent,
		DueDate:   t.DueDate.Format(time.DateOnly),
		Status:    t.Status,
		Reporting: t.Reporting,
		CreatedAt: t.CreatedAt,
	}
}

func toResponseList(tenants []*tenant.Tenant) []tenantResponse {
	resp := make([]tenantResponse, len(tenants))
	for i, t := range tenants {
		resp[i] = toResponse(t)
	}

	return resp
}
