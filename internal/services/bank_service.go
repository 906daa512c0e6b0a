package services

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/swiftalliance/backend/internal/models"
)

// Bank is one entry in the static correspondent directory. The list covers
// the institutions operators route to most, not the full BIC directory;
// unknown BICs are still accepted on payments.
type Bank struct {
	BIC     string `json:"bic"`
	Name    string `json:"name"`
	Country string `json:"country"`
	City    string `json:"city"`
}

var correspondentBanks = []Bank{
	{BIC: "SWALGB2L", Name: "Swift Alliance Bank", Country: "GB", City: "London"},
	{BIC: "BARCGB22", Name: "Barclays Bank", Country: "GB", City: "London"},
	{BIC: "MIDLGB22", Name: "HSBC UK Bank", Country: "GB", City: "London"},
	{BIC: "NWBKGB2L", Name: "National Westminster Bank", Country: "GB", City: "London"},
	{BIC: "DEUTDEFF", Name: "Deutsche Bank", Country: "DE", City: "Frankfurt am Main"},
	{BIC: "COBADEFF", Name: "Commerzbank", Country: "DE", City: "Frankfurt am Main"},
	{BIC: "BNPAFRPP", Name: "BNP Paribas", Country: "FR", City: "Paris"},
	{BIC: "SOGEFRPP", Name: "Societe Generale", Country: "FR", City: "Paris"},
	{BIC: "INGBNL2A", Name: "ING Bank", Country: "NL", City: "Amsterdam"},
	{BIC: "ABNANL2A", Name: "ABN AMRO Bank", Country: "NL", City: "Amsterdam"},
	{BIC: "RABONL2U", Name: "Rabobank", Country: "NL", City: "Utrecht"},
	{BIC: "UBSWCHZH", Name: "UBS Switzerland", Country: "CH", City: "Zurich"},
	{BIC: "CRESCHZZ", Name: "Credit Suisse", Country: "CH", City: "Zurich"},
	{BIC: "UNCRITMM", Name: "UniCredit", Country: "IT", City: "Milan"},
	{BIC: "BCITITMM", Name: "Intesa Sanpaolo", Country: "IT", City: "Milan"},
	{BIC: "BBVAESMM", Name: "Banco Bilbao Vizcaya Argentaria", Country: "ES", City: "Madrid"},
	{BIC: "BSCHESMM", Name: "Banco Santander", Country: "ES", City: "Madrid"},
	{BIC: "CAIXESBB", Name: "CaixaBank", Country: "ES", City: "Barcelona"},
	{BIC: "KREDBEBB", Name: "KBC Bank", Country: "BE", City: "Brussels"},
	{BIC: "GEBABEBB", Name: "BNP Paribas Fortis", Country: "BE", City: "Brussels"},
	{BIC: "NDEAFIHH", Name: "Nordea Bank", Country: "FI", City: "Helsinki"},
	{BIC: "DABADKKK", Name: "Danske Bank", Country: "DK", City: "Copenhagen"},
	{BIC: "ESSESESS", Name: "Skandinaviska Enskilda Banken", Country: "SE", City: "Stockholm"},
	{BIC: "HANDSESS", Name: "Svenska Handelsbanken", Country: "SE", City: "Stockholm"},
	{BIC: "DNBANOKK", Name: "DNB Bank", Country: "NO", City: "Oslo"},
	{BIC: "CHASUS33", Name: "JPMorgan Chase Bank", Country: "US", City: "New York"},
	{BIC: "CITIUS33", Name: "Citibank", Country: "US", City: "New York"},
	{BIC: "BOFAUS3N", Name: "Bank of America", Country: "US", City: "New York"},
	{BIC: "BOTKJPJT", Name: "MUFG Bank", Country: "JP", City: "Tokyo"},
	{BIC: "SMBCJPJT", Name: "Sumitomo Mitsui Banking Corporation", Country: "JP", City: "Tokyo"},
	{BIC: "HSBCHKHH", Name: "HSBC Hong Kong", Country: "HK", City: "Hong Kong"},
	{BIC: "DBSSSGSG", Name: "DBS Bank", Country: "SG", City: "Singapore"},
	{BIC: "ANZBAU3M", Name: "Australia and New Zealand Banking Group", Country: "AU", City: "Melbourne"},
}

type BankService struct{}

func NewBankService() *BankService {
	return &BankService{}
}

// GetAllBanks lists the correspondent directory
// @Summary List banks
// @Description List the correspondent bank directory, optionally filtered by ISO country code
// @Tags banks
// @Produce json
// @Param country query string false "ISO 3166 alpha-2 country code"
// @Success 200 {array} Bank "Banks"
// @Router /banks [get]
func (bs *BankService) GetAllBanks(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, max-age=86400")

	country := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("country")))
	if country == "" {
		json.NewEncoder(w).Encode(correspondentBanks)
		return
	}

	matches := make([]Bank, 0)
	for _, bank := range correspondentBanks {
		if bank.Country == country {
			matches = append(matches, bank)
		}
	}
	json.NewEncoder(w).Encode(matches)
}

// GetBank looks up one bank by BIC
// @Summary Look up bank
// @Description Resolve a BIC against the correspondent directory; an 11-character BIC matches its head office entry
// @Tags banks
// @Produce json
// @Param bic path string true "8 or 11 character BIC"
// @Success 200 {object} Bank "Bank"
// @Failure 404 {object} ErrorResponse "Bank not found"
// @Router /banks/{bic} [get]
func (bs *BankService) GetBank(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	bic := strings.ToUpper(strings.TrimSpace(chi.URLParam(r, "bic")))
	for _, bank := range correspondentBanks {
		if bank.BIC == bic || (len(bic) == 11 && strings.HasPrefix(bic, bank.BIC)) {
			json.NewEncoder(w).Encode(bank)
			return
		}
	}

	SendDomainError(w, models.NewNotFoundError("bank", bic))
}
