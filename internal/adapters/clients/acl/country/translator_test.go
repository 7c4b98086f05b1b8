package country

import (
	"testing"
	"time"
)

func intPtr(v int) *int { return &v }

func TestToDomainCountry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		dto      StateDTO
		wantRank int
		wantDate time.Time
		wantErr  bool
	}{
		{
			name: "full record",
			dto: StateDTO{
				ISOCode: "ES", CommonName: "España", Emoji: "🇪🇸", Locale: "es-ES",
				ProtocolOrder: intPtr(9), UNAdmission: "1955-12-14",
			},
			wantRank: 9,
			wantDate: time.Date(1955, time.December, 14, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "no protocol order",
			dto:      StateDTO{ISOCode: "US", CommonName: "Estados Unidos", UNAdmission: "1945-10-24"},
			wantRank: 0,
			wantDate: time.Date(1945, time.October, 24, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "no admission date",
			dto:  StateDTO{ISOCode: "VA", CommonName: "Santa Sede"},
		},
		{
			name:    "malformed admission date",
			dto:     StateDTO{ISOCode: "XX", CommonName: "Nowhere", UNAdmission: "24/10/1945"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ToDomainCountry(tt.dto)
			if tt.wantErr {
				if err == nil {
					t.Fatal("ToDomainCountry() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ToDomainCountry() unexpected error: %v", err)
			}
			if got.Code != tt.dto.ISOCode || got.Name != tt.dto.CommonName {
				t.Errorf("identity = %q/%q, want %q/%q", got.Code, got.Name, tt.dto.ISOCode, tt.dto.CommonName)
			}
			if got.PrecedenceRank != tt.wantRank {
				t.Errorf("PrecedenceRank = %d, want %d", got.PrecedenceRank, tt.wantRank)
			}
			if !got.Seniority.Equal(tt.wantDate) {
				t.Errorf("Seniority = %v, want %v", got.Seniority, tt.wantDate)
			}
		})
	}
}

func TestToDomainCountryList(t *testing.T) {
	t.Parallel()

	got, err := ToDomainCountryList(StateListResponseDTO{
		States: []StateDTO{
			{ISOCode: "FR", CommonName: "Francia"},
			{ISOCode: "DE", CommonName: "Alemania"},
		},
		Count: 2,
	})
	if err != nil {
		t.Fatalf("ToDomainCountryList() unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].Code != "FR" || got[1].Code != "DE" {
		t.Errorf("ToDomainCountryList() = %+v, want FR then DE", got)
	}

	_, err = ToDomainCountryList(StateListResponseDTO{
		States: []StateDTO{{ISOCode: "FR", CommonName: "Francia", UNAdmission: "bad"}},
	})
	if err == nil {
		t.Error("ToDomainCountryList() error = nil, want error for malformed entry")
	}
}

func TestToDomainCountryList_Empty(t *testing.T) {
	t.Parallel()

	got, err := ToDomainCountryList(StateListResponseDTO{})
	if err != nil {
		t.Fatalf("ToDomainCountryList() unexpected error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("ToDomainCountryList() = %v, want empty non-nil slice", got)
	}
}
