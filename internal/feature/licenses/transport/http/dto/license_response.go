package dto

import "store_backend/internal/feature/licenses/domain/entity"

// LicensesResponse wraps a list of licenses, matching the persisted document
// shape clients already consume.
type LicensesResponse struct {
	Message  string           `json:"message,omitempty"`
	Licenses []entity.License `json:"licenses"`
}
