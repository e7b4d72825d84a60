package export

// Options - геометрия страницы и настройки растеризации. Значения
// передаются движку как есть, без пересчётов.
type Options struct {
	PageWidthIn  float64 `json:"page_width_in"`
	PageHeightIn float64 `json:"page_height_in"`
	Landscape    bool    `json:"landscape"`
	MarginIn     float64 `json:"margin_in"`
	Scale        float64 `json:"scale"`
	Compress     bool    `json:"compress"`
}

// DefaultOptions - A4, портретная ориентация, фиксированные поля.
func DefaultOptions() Options {
	return Options{
		PageWidthIn:  8.27,
		PageHeightIn: 11.69,
		Landscape:    false,
		MarginIn:     0.4,
		Scale:        1.0,
		Compress:     true,
	}
}
