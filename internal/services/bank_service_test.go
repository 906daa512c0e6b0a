package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBankService_GetAllBanks(t *testing.T) {
	service := NewBankService()

	t.Run("lists the full directory", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/banks", nil)
		w := httptest.NewRecorder()
		service.GetAllBanks(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "public, max-age=86400", w.Header().Get("Cache-Control"))

		var banks []Bank
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &banks))
		assert.NotEmpty(t, banks)
	})

	t.Run("filters by country", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/banks?country=de", nil)
		w := httptest.NewRecorder()
		service.GetAllBanks(w, r)

		var banks []Bank
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &banks))
		require.NotEmpty(t, banks)
		for _, bank := range banks {
			assert.Equal(t, "DE", bank.Country)
		}
	})

	t.Run("unknown country yields an empty list", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/banks?country=ZZ", nil)
		w := httptest.NewRecorder()
		service.GetAllBanks(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})
}

func TestBankService_GetBank(t *testing.T) {
	service := NewBankService()
	router := chi.NewRouter()
	router.Get("/banks/{bic}", service.GetBank)

	lookup := func(bic string) *httptest.ResponseRecorder {
		r := httptest.NewRequest("GET", "/banks/"+bic, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)
		return w
	}

	t.Run("resolves an 8 character BIC", func(t *testing.T) {
		w := lookup("BNPAFRPP")

		assert.Equal(t, http.StatusOK, w.Code)
		var bank Bank
		json.Unmarshal(w.Body.Bytes(), &bank)
		assert.Equal(t, "BNP Paribas", bank.Name)
	})

	t.Run("an 11 character BIC matches its head office", func(t *testing.T) {
		w := lookup("DEUTDEFF500")

		assert.Equal(t, http.StatusOK, w.Code)
		var bank Bank
		json.Unmarshal(w.Body.Bytes(), &bank)
		assert.Equal(t, "DEUTDEFF", bank.BIC)
	})

	t.Run("lookup is case insensitive", func(t *testing.T) {
		w := lookup("chasus33")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown BIC", func(t *testing.T) {
		w := lookup("AAAAXX99")

		assert.Equal(t, http.StatusNotFound, w.Code)
		var response ErrorResponse
		json.Unmarshal(w.Body.Bytes(), &response)
		assert.Contains(t, response.Error, "not found")
	})
}
