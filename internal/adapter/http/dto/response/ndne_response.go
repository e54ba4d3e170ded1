package response

import (
	"time"

	"outorga_monitor/internal/domain/entities"
)

type NDNERecordResponse struct {
	ID              string     `json:"id"`
	ContractID      string     `json:"contract_id"`
	Period          string     `json:"period"`
	StaticLevel     string     `json:"static_level"`
	DynamicLevel    string     `json:"dynamic_level"`
	MeasuredOn      string     `json:"measured_on"`
	TechnicianID    string     `json:"technician_id"`
	ResponsibleName string     `json:"responsible_name"`
	Origin          string     `json:"origin"`
	OriginalOrigin  *string    `json:"original_origin"`
	Provenance      string     `json:"provenance"`
	CreatedAt       time.Time  `json:"created_at"`
	CreatedBy       string     `json:"created_by"`
	EditedAt        *time.Time `json:"edited_at,omitempty"`
	EditedBy        string     `json:"edited_by,omitempty"`
}

type NDNEListResponse struct {
	Items []NDNERecordResponse `json:"items"`
	Total int                  `json:"total"`
}

// NDNEValidationResponse is returned by the validation preview; Fields is empty when valid.
type NDNEValidationResponse struct {
	Valid  bool              `json:"valid"`
	Fields map[string]string `json:"fields,omitempty"`
}

func FromNDNERecord(r entities.NDNERecord) NDNERecordResponse {
	resp := NDNERecordResponse{
		ID:              r.ID,
		ContractID:      r.ContractID,
		Period:          string(r.Period),
		StaticLevel:     r.StaticLevel.String(),
		DynamicLevel:    r.DynamicLevel.String(),
		MeasuredOn:      r.MeasuredOn.Format("2006-01-02"),
		TechnicianID:    r.TechnicianID,
		ResponsibleName: r.ResponsibleName,
		Origin:          string(r.Origin),
		Provenance:      r.Provenance(),
		CreatedAt:       r.CreatedAt,
		CreatedBy:       r.CreatedBy,
		EditedAt:        r.EditedAt,
		EditedBy:        r.EditedBy,
	}
	if r.OriginalOrigin != nil {
		o := string(*r.OriginalOrigin)
		resp.OriginalOrigin = &o
	}
	return resp
}

func FromNDNERecords(records []entities.NDNERecord) NDNEListResponse {
	items := make([]NDNERecordResponse, 0, len(records))
	for _, r := range records {
		items = append(items, FromNDNERecord(r))
	}
	return NDNEListResponse{Items: items, Total: len(items)}
}
