package navigation

import "testing"

func TestNavigate_ReplacesPage_KeepsEntityUnlessGiven(t *testing.T) {
	s := Initial()
	if s.CurrentPage != PageDashboard || s.SelectedEntityID != "" {
		t.Fatalf("unexpected initial state %#v", s)
	}

	s = Navigate(s, RoleUser, PagePetProfile, "PET123456")
	if s.CurrentPage != PagePetProfile || s.SelectedEntityID != "PET123456" {
		t.Fatalf("expected pet-profile/PET123456, got %#v", s)
	}

	for _, entry := range Menu(RoleUser) {
		next := Navigate(s, RoleUser, entry.ID, "")
		if next.CurrentPage != entry.ID {
			t.Fatalf("navigate %s: got page %s", entry.ID, next.CurrentPage)
		}
		if next.SelectedEntityID != "PET123456" {
			t.Fatalf("navigate %s: entity should be unchanged, got %q", entry.ID, next.SelectedEntityID)
		}
	}

	s = Navigate(s, RoleUser, PagePetProfile, "PET789012")
	if s.SelectedEntityID != "PET789012" {
		t.Fatalf("explicit entity should replace, got %q", s.SelectedEntityID)
	}
}

func TestNavigate_AdminGate(t *testing.T) {
	for _, role := range []Role{RoleVeterinarian, RoleUser} {
		s := Navigate(Initial(), role, PageAdmin, "")
		if s.CurrentPage != PageDashboard {
			t.Fatalf("role %s: expected dashboard fallback, got %s", role, s.CurrentPage)
		}
	}
	s := Navigate(Initial(), RoleAdmin, PageAdmin, "")
	if s.CurrentPage != PageAdmin {
		t.Fatalf("admin should reach admin page, got %s", s.CurrentPage)
	}
}

func TestMenu_AdminGetsExtraEntryLast(t *testing.T) {
	user := Menu(RoleUser)
	vet := Menu(RoleVeterinarian)
	admin := Menu(RoleAdmin)

	if len(user) != 8 || len(vet) != 8 {
		t.Fatalf("non-admin menus should have 8 entries, got %d/%d", len(user), len(vet))
	}
	if len(admin) != 9 || admin[8].ID != PageAdmin {
		t.Fatalf("admin menu should end with admin entry, got %#v", admin)
	}
	for i := range user {
		if user[i] != vet[i] || user[i] != admin[i] {
			t.Fatalf("base entries must match across roles at %d", i)
		}
	}

	// Mutar el resultado no debe afectar llamadas siguientes.
	user[0].Label = "changed"
	if Menu(RoleUser)[0].Label != "Dashboard" {
		t.Fatalf("Menu must return a fresh slice")
	}
}

func TestQuickActions(t *testing.T) {
	if n := len(QuickActions(RoleVeterinarian)); n != 6 {
		t.Fatalf("expected 6 quick actions, got %d", n)
	}
	qa := QuickActions(RoleAdmin)
	if len(qa) != 7 || qa[6].ID != PageAdmin {
		t.Fatalf("admin quick actions should end with admin, got %#v", qa)
	}
}

func TestParse(t *testing.T) {
	if p, err := ParsePage(" Pet-Profile "); err != nil || p != PagePetProfile {
		t.Fatalf("ParsePage: got %q, %v", p, err)
	}
	if _, err := ParsePage("settings"); err != ErrUnknownPage {
		t.Fatalf("expected ErrUnknownPage, got %v", err)
	}
	if len(Pages()) != 10 {
		t.Fatalf("expected 10 pages")
	}
	if _, err := ParseRole("vaccinator"); err == nil {
		t.Fatalf("expected unknown role error")
	}
	for _, r := range []Role{RoleAdmin, RoleVeterinarian, RoleUser} {
		if r.Label() == "" {
			t.Fatalf("missing label for %s", r)
		}
	}
}
