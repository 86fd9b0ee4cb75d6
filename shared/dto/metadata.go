package dto

import (
	"homestay/shared/constant"
	"homestay/shared/model"
	"homestay/shared/timezone"
)

// Metadata is the audit block of a response. The modified pair is left out for rows that were
// never changed after insert.
type Metadata struct {
	CreatedAt  string `json:"created_at"`
	CreatedBy  string `json:"created_by"`
	ModifiedAt string `json:"modified_at,omitempty"`
	ModifiedBy string `json:"modified_by,omitempty"`
}

func (m *Metadata) FromModel(metadata model.Metadata) {
	m.CreatedAt = timezone.Format(metadata.CreatedAt, constant.DateFormat)
	m.CreatedBy = metadata.CreatedBy

	if metadata.Modified() {
		m.ModifiedAt = timezone.Format(metadata.ModifiedAt, constant.DateFormat)
		m.ModifiedBy = metadata.ModifiedBy
	}
}
