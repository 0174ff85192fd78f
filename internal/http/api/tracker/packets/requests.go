package packets

import "github.com/nur-collective/siyam/internal/model"

// UpdateRecordRequest replaces one day's record wholesale. Absent salah
// flags unmarshal to false and an absent page count to 0, matching the
// zeroed defaults.
type UpdateRecordRequest struct {
	Fasting    bool              `json:"fasting"`
	Salah      model.SalahRecord `json:"salah"`
	QuranPages int               `json:"quranPages" binding:"gte=0"`
}
