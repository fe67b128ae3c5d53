package commands

import (
	"errors"

	"obsidex/internal/domain"
)

type fakeLister struct {
	vaults []*domain.Vault
	notes  []*domain.Note
}

func (l *fakeLister) Vaults() []*domain.Vault { return l.vaults }
func (l *fakeLister) Notes() []*domain.Note   { return l.notes }

type fakeIndex struct {
	entries []domain.IndexEntry
}

func (i *fakeIndex) Entries() []domain.IndexEntry { return i.entries }

func (i *fakeIndex) Lookup(id string) (domain.Item, bool) {
	for _, e := range i.entries {
		if e.Item.ID() == id {
			return e.Item, true
		}
	}
	return nil, false
}

type fakeOpener struct {
	ran []domain.Action
	err error
}

func (o *fakeOpener) URI(a domain.Action) (string, error) {
	if a.Kind == domain.ActionReveal {
		return "", errors.New("no uri")
	}
	return "obsidian://" + a.Kind.String() + "?vault=" + a.VaultID + "&file=" + a.File, nil
}

func (o *fakeOpener) Run(a domain.Action) error {
	o.ran = append(o.ran, a)
	return o.err
}

// twoVaults returns work (a.md, notes/b.md) and home (todo.md)
func twoVaults() (*fakeLister, *fakeIndex) {
	work := domain.NewVault("w1", "/home/u/work")
	home := domain.NewVault("h2", "/home/u/home")
	notes := []*domain.Note{
		domain.NewNote(work, "a.md"),
		domain.NewNote(work, "notes/b.md"),
		domain.NewNote(home, "todo.md"),
	}
	vaults := []*domain.Vault{work, home}

	return &fakeLister{vaults: vaults, notes: notes},
		&fakeIndex{entries: domain.BuildIndex(vaults, notes)}
}
