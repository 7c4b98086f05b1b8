package country

import (
	"fmt"
	"time"

	"github.com/protocolo-ceremonial/flagplan/internal/domain/country"
)

// unAdmissionLayout is the registry's date format for UN admission.
const unAdmissionLayout = "2006-01-02"

// ToDomainCountry converts a registry StateDTO to a domain Country. A missing
// protocol order becomes rank zero ("not in the table"); a missing admission
// date becomes the zero time.
func ToDomainCountry(dto StateDTO) (country.Country, error) {
	c := country.Country{
		Code:   dto.ISOCode,
		Name:   dto.CommonName,
		Flag:   dto.Emoji,
		Locale: dto.Locale,
	}
	if dto.ProtocolOrder != nil {
		c.PrecedenceRank = *dto.ProtocolOrder
	}
	if dto.UNAdmission != "" {
		since, err := time.Parse(unAdmissionLayout, dto.UNAdmission)
		if err != nil {
			return country.Country{}, fmt.Errorf("state %q: un_admission %q: %w", dto.ISOCode, dto.UNAdmission, err)
		}
		c.Seniority = since
	}
	return c, nil
}

// ToDomainCountryList converts a registry StateListResponseDTO to domain
// countries, preserving order. The first malformed entry aborts the
// conversion.
func ToDomainCountryList(dto StateListResponseDTO) ([]country.Country, error) {
	countries := make([]country.Country, len(dto.States))
	for i := range dto.States {
		c, err := ToDomainCountry(dto.States[i])
		if err != nil {
			return nil, err
		}
		countries[i] = c
	}
	return countries, nil
}
