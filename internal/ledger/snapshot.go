package ledger

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/swiftalliance/backend/internal/models"
)

// snapshot is the whole-store on-disk form. Money fields ride on decimal's
// quoted-string JSON encoding, never native floating point, so balances
// round-trip exactly.
type snapshot struct {
	Customers        []models.Customer               `json:"customers"`
	Accounts         []models.Account                `json:"accounts"`
	Transactions     map[string][]models.Transaction `json:"transactions"`
	Loans            []models.Loan                   `json:"loans"`
	LastInterestDate string                          `json:"last_interest_date"`
}

// load replaces the store's state with the snapshot on disk. An absent file
// means a fresh store and is silent; an unreadable or corrupt file is logged
// loudly and the store starts empty rather than failing.
func (s *Store) load() {
	data, err := os.ReadFile(s.snapshotPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return
		}
		log.Printf("[STORE] Snapshot %s exists but is unreadable, starting empty: %v", s.snapshotPath, err)
		return
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		log.Printf("[STORE] Snapshot %s is corrupt, starting empty: %v", s.snapshotPath, err)
		return
	}

	for i := range snap.Customers {
		c := snap.Customers[i]
		s.customers[c.ID] = &c
	}
	for i := range snap.Accounts {
		a := snap.Accounts[i]
		s.accounts[a.AccountNumber] = &a
	}
	for number, txs := range snap.Transactions {
		s.transactions[number] = txs
	}
	for i := range snap.Loans {
		l := snap.Loans[i]
		s.loans = append(s.loans, &l)
	}
	s.lastInterestDate = snap.LastInterestDate

	log.Printf("[STORE] Loaded snapshot %s: %d customer(s), %d account(s)", s.snapshotPath, len(s.customers), len(s.accounts))
}

// persist writes the whole state to the snapshot path via a temp file and
// rename. Failures are logged and never fail the calling operation. Caller
// must hold the write lock.
func (s *Store) persist() {
	if s.snapshotPath == "" {
		return
	}

	snap := snapshot{
		Customers:        make([]models.Customer, 0, len(s.customers)),
		Accounts:         make([]models.Account, 0, len(s.accounts)),
		Transactions:     s.transactions,
		Loans:            make([]models.Loan, 0, len(s.loans)),
		LastInterestDate: s.lastInterestDate,
	}
	for _, c := range s.customers {
		snap.Customers = append(snap.Customers, *c)
	}
	for _, a := range s.accounts {
		snap.Accounts = append(snap.Accounts, *a)
	}
	for _, l := range s.loans {
		snap.Loans = append(snap.Loans, *l)
	}
	sortCustomers(snap.Customers)
	sortAccounts(snap.Accounts)

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		log.Printf("[STORE] Snapshot encode failed: %v", err)
		return
	}

	if err := os.MkdirAll(filepath.Dir(s.snapshotPath), 0o755); err != nil {
		log.Printf("[STORE] Snapshot dir create failed: %v", err)
		return
	}
	tmp := s.snapshotPath + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		log.Printf("[STORE] Snapshot write failed: %v", err)
		return
	}
	if err := os.Rename(tmp, s.snapshotPath); err != nil {
		log.Printf("[STORE] Snapshot rename failed: %v", err)
	}
}

func sortCustomers(cs []models.Customer) {
	sort.Slice(cs, func(i, j int) bool { return cs[i].ID < cs[j].ID })
}

func sortAccounts(as []models.Account) {
	sort.Slice(as, func(i, j int) bool { return as[i].AccountNumber < as[j].AccountNumber })
}
