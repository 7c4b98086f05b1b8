// Package country implements the Anti-Corruption Layer translators for the
// reference registry's state resources, which map to domain countries.
package country

// StateDTO matches the registry State schema.
type StateDTO struct {
	ISOCode       string `json:"iso_code"`
	CommonName    string `json:"common_name"`
	Emoji         string `json:"emoji"`
	Locale        string `json:"locale"`
	ProtocolOrder *int   `json:"protocol_order"`
	UNAdmission   string `json:"un_admission"`
}

// StateListResponseDTO matches the registry StateListResponse schema.
type StateListResponseDTO struct {
	States []StateDTO `json:"states"`
	Count  int64      `json:"count"`
}
