package state

import "github.com/atomicstack/livery-popup-control/internal/game"

type CompanyStore interface {
	Entries() []game.Company
	SetEntries([]game.Company)
	Company(game.CompanyID) (game.Company, bool)
	Local() game.CompanyID
	SetLocal(game.CompanyID)
}

type companyStore struct {
	entries []game.Company
	local   game.CompanyID
}

func NewCompanyStore() CompanyStore {
	return &companyStore{local: game.InvalidCompany}
}

func (s *companyStore) Entries() []game.Company {
	return cloneCompanies(s.entries)
}

func (s *companyStore) SetEntries(entries []game.Company) {
	s.entries = cloneCompanies(entries)
}

func (s *companyStore) Company(id game.CompanyID) (game.Company, bool) {
	for _, c := range s.entries {
		if c.ID == id {
			return c, true
		}
	}
	return game.Company{}, false
}

func (s *companyStore) Local() game.CompanyID {
	return s.local
}

func (s *companyStore) SetLocal(id game.CompanyID) {
	s.local = id
}

func cloneCompanies(entries []game.Company) []game.Company {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]game.Company, len(entries))
	copy(dup, entries)
	return dup
}
